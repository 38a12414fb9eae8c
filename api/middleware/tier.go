package middleware

import (
	"net/http"

	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// RequireTier rejects requests whose session tier does not cover the
// required tier. Must run after Auth, which seeds the tier into the
// request context.
func RequireTier(required enums.Tier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tier, err := enums.ParseTier(TierFromContext(r.Context()))
			if err != nil || !tier.AtLeast(required) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "tier upgrade required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
