package controllers

import (
	"net/http"
	"time"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/api/validators"
	"github.com/fitnexus/fitnexus-backend/internal/gatekeeper"
	"github.com/fitnexus/fitnexus-backend/internal/profile"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	pkgAuth "github.com/fitnexus/fitnexus-backend/pkg/auth"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

type loginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type loginResponse struct {
	AccessToken   string        `json:"access_token"`
	User          *session.User `json:"user"`
	EffectiveView string        `json:"effective_view"`
}

// AuthLogin exchanges a sign-in credential for an access token and the
// freshly created session user. The effective view tells the client where
// the session lands, which for a new user is the onboarding screen.
func AuthLogin(svc *profile.Service, store *session.Store, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Login(r.Context(), req.Credential)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
			UserID: user.ID,
			Tier:   user.Tier,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token"))
			return
		}

		snap := store.Snapshot()
		effective := gatekeeper.Resolve(snap.RequestedView, snap)

		responses.WriteSuccess(w, loginResponse{
			AccessToken:   token,
			User:          user,
			EffectiveView: effective.String(),
		})
	}
}

// AuthLogout discards the session.
func AuthLogout(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}
