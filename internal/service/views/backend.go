// Package views holds the per-screen state logic of the admin panel: each
// view calls the backend, composes enrichment data and reports one error.
package views

import (
	"context"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// Backend is the subset of the cattle client used by the views.
type Backend interface {
	GetFarm(ctx context.Context, id string) (*models.Farm, error)
	ListFarms(ctx context.Context, q cattle.OffsetQuery, f cattle.FarmFilter) (models.Page[models.Farm], error)
	CreateFarm(ctx context.Context, in models.FarmInput) (*models.Farm, error)
	UpdateFarm(ctx context.Context, id string, in models.FarmInput) (*models.Farm, error)
	DeleteFarm(ctx context.Context, id string) error

	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, q cattle.OffsetQuery, f cattle.UserFilter) (models.Page[models.User], error)

	GetRole(ctx context.Context, id string) (*models.Role, error)
	ListRoles(ctx context.Context, q cattle.OffsetQuery) (models.Page[models.Role], error)

	ListAnimals(ctx context.Context, q cattle.PageQuery, f cattle.AnimalFilter) (models.Page[models.Animal], error)

	ListAlerts(ctx context.Context, q cattle.OffsetQuery, f cattle.AlertFilter) (models.Page[models.Alert], error)
}

// Estimations is the cached estimation source.
type Estimations interface {
	All(ctx context.Context) ([]models.WeightEstimation, error)
	Delete(ctx context.Context, id string) error
}
