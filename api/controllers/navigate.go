package controllers

import (
	"net/http"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/api/validators"
	"github.com/fitnexus/fitnexus-backend/internal/gatekeeper"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type navigateResponse struct {
	RequestedView string `json:"requested_view"`
	EffectiveView string `json:"effective_view"`
	Walled        bool   `json:"walled"`
}

// Navigate records the requested screen and resolves what the client should
// actually render given the current session.
func Navigate(store *session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := enums.ParseView(req.View)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown view"))
			return
		}

		if err := store.RequestView(view); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap := store.Snapshot()
		effective := gatekeeper.Resolve(snap.RequestedView, snap)

		if logg != nil {
			logg.Info(logg.WithView(r.Context(), effective.String()), "navigation resolved")
		}

		responses.WriteSuccess(w, navigateResponse{
			RequestedView: view.String(),
			EffectiveView: effective.String(),
			Walled:        effective.IsWall(),
		})
	}
}
