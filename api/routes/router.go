package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitnexus/fitnexus-backend/api/controllers"
	"github.com/fitnexus/fitnexus-backend/api/middleware"
	"github.com/fitnexus/fitnexus-backend/internal/assistant"
	"github.com/fitnexus/fitnexus-backend/internal/catalog"
	"github.com/fitnexus/fitnexus-backend/internal/profile"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	"github.com/fitnexus/fitnexus-backend/pkg/db"
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
	"github.com/fitnexus/fitnexus-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	store *session.Store,
	profileService *profile.Service,
	assistantManager *assistant.Manager,
	catalogService catalog.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(profileService, store, cfg.JWT, logg))
		r.Post("/logout", controllers.AuthLogout(profileService, logg))
	})

	// Navigation and the catalog read paths are public: the gatekeeper
	// decides per request what an anonymous session may see.
	r.Post("/api/v1/navigate", controllers.Navigate(store, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.Products(catalogService, logg))
		r.Get("/gyms", controllers.Gyms(catalogService, logg))
		r.Get("/packages", controllers.Packages(catalogService, logg))
	})

	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, store, logg))

		r.Post("/complete", controllers.ProfileComplete(profileService, logg))
		r.Post("/upgrade", controllers.ProfileUpgrade(profileService, logg))
		r.Route("/otp", func(r chi.Router) {
			r.Post("/request", controllers.OtpRequest(profileService, logg))
			r.Post("/verify", controllers.OtpVerify(profileService, logg))
		})
	})

	r.Route("/api/v1/assistant", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, store, logg))
		r.Use(middleware.RequireTier(enums.TierPro, logg))

		r.Get("/messages", controllers.AssistantMessages(assistantManager, logg))
		r.Post("/messages", controllers.AssistantPostMessage(assistantManager, logg))
		r.Post("/reset", controllers.AssistantReset(assistantManager, logg))
	})

	r.With(middleware.Auth(cfg.JWT, store, logg)).
		With(middleware.RequireTier(enums.TierPro, logg)).
		Get("/api/v1/dashboard", controllers.Dashboard(catalogService, logg))

	return r
}
