package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	pkgAuth "github.com/fitnexus/fitnexus-backend/pkg/auth"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// Auth validates a bearer token, checks it belongs to the live session user,
// and seeds the request context with the claims.
func Auth(cfg config.JWTConfig, store *session.Store, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			// The token must match the user currently logged in; a stale
			// token from a previous session is rejected.
			snap := store.Snapshot()
			if snap.User == nil || snap.User.ID != claims.UserID {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxTier, string(snap.User.Tier))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id": claims.UserID,
					"tier":    string(snap.User.Tier),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
