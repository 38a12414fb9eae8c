// Package catalog serves the read-only marketplace data: products, gyms,
// equipment packages, and the dashboard workout history.
package catalog

import (
	"context"
	"strings"

	"github.com/fitnexus/fitnexus-backend/pkg/db/models"
	"gorm.io/gorm"
)

// CategoryAll disables the product category filter.
const CategoryAll = "All"

// dashboardWindow is how many recent workout sessions the dashboard charts.
const dashboardWindow = 7

// Repository wires together catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListProducts returns products, optionally narrowed to one category.
func (r *Repository) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if category != "" && category != CategoryAll {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListGyms returns gym listings whose name or location contains the search
// term, or every listing when the term is empty.
func (r *Repository) ListGyms(ctx context.Context, search string) ([]models.Gym, error) {
	query := r.db.WithContext(ctx).Order("rating DESC")
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}

	var gyms []models.Gym
	if err := query.Find(&gyms).Error; err != nil {
		return nil, err
	}
	return gyms, nil
}

// ListPackages returns every equipment bundle.
func (r *Repository) ListPackages(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	if err := r.db.WithContext(ctx).Order("price ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// ListRecentWorkouts returns the newest dashboard window of sessions for the
// user, oldest first so the chart reads left to right.
func (r *Repository) ListRecentWorkouts(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(dashboardWindow)
	if userID != "" {
		query = query.Where("user_id = ? OR user_id IS NULL", userID)
	}

	var sessions []models.WorkoutSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}
