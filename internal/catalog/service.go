package catalog

import (
	"context"

	"github.com/fitnexus/fitnexus-backend/pkg/db/models"
	pkgerrors "github.com/fitnexus/fitnexus-backend/pkg/errors"
)

// Service exposes the marketplace read paths.
type Service interface {
	Products(ctx context.Context, category string) ([]models.Product, error)
	Gyms(ctx context.Context, search string) ([]models.Gym, error)
	Packages(ctx context.Context) ([]models.Package, error)
	Dashboard(ctx context.Context, userID string) ([]models.WorkoutSession, error)
}

type service struct {
	repo *Repository
}

// NewService validates and wires the catalog service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Products(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

func (s *service) Gyms(ctx context.Context, search string) ([]models.Gym, error) {
	gyms, err := s.repo.ListGyms(ctx, search)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gyms")
	}
	return gyms, nil
}

func (s *service) Packages(ctx context.Context) ([]models.Package, error) {
	packages, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list packages")
	}
	return packages, nil
}

func (s *service) Dashboard(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	sessions, err := s.repo.ListRecentWorkouts(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list workout sessions")
	}
	return sessions, nil
}
