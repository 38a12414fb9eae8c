package controllers

import (
	"net/http"

	"github.com/fitnexus/fitnexus-backend/api/middleware"
	"github.com/fitnexus/fitnexus-backend/api/responses"
	"github.com/fitnexus/fitnexus-backend/internal/catalog"
	"github.com/fitnexus/fitnexus-backend/pkg/db/models"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// Products lists marketplace products, optionally filtered by category.
func Products(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		if category == "" {
			category = catalog.CategoryAll
		}

		products, err := svc.Products(r.Context(), category)
		if err != nil {
			// Listing pages render an empty catalog rather than an error.
			logg.Error(r.Context(), "failed to list products", err)
			responses.WriteSuccess(w, []models.Product{})
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// Gyms lists bookable facilities matching the search term.
func Gyms(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gyms, err := svc.Gyms(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			logg.Error(r.Context(), "failed to list gyms", err)
			responses.WriteSuccess(w, []models.Gym{})
			return
		}
		responses.WriteSuccess(w, gyms)
	}
}

// Packages lists the home-gym equipment bundles.
func Packages(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := svc.Packages(r.Context())
		if err != nil {
			logg.Error(r.Context(), "failed to list packages", err)
			responses.WriteSuccess(w, []models.Package{})
			return
		}
		responses.WriteSuccess(w, packages)
	}
}

// Dashboard returns the recent workout sessions for the signed-in user.
func Dashboard(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.Dashboard(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			logg.Error(r.Context(), "failed to list workout sessions", err)
			responses.WriteSuccess(w, []models.WorkoutSession{})
			return
		}
		responses.WriteSuccess(w, sessions)
	}
}
