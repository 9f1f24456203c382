package views

import (
	"context"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/pagination"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// Service implements the admin panel views.
type Service struct {
	api         Backend
	estimations Estimations
	logger      *zap.Logger
}

// NewService wires a new view service instance.
func NewService(api Backend, estimations Estimations, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, estimations: estimations, logger: logger}
}

func (s *Service) allAnimals(ctx context.Context, f cattle.AnimalFilter) ([]models.Animal, error) {
	res, err := pagination.FetchAll(ctx, func(ctx context.Context, page, size int) (models.Page[models.Animal], error) {
		return s.api.ListAnimals(ctx, cattle.PageQuery{Page: page, PageSize: size}, f)
	}, pagination.Options{})
	return res.Items, err
}

func (s *Service) allUsers(ctx context.Context, f cattle.UserFilter) ([]models.User, error) {
	res, err := pagination.FetchAll(ctx, func(ctx context.Context, page, size int) (models.Page[models.User], error) {
		return s.api.ListUsers(ctx, cattle.OffsetFromPage(page, size), f)
	}, pagination.Options{})
	return res.Items, err
}

func (s *Service) allFarms(ctx context.Context, f cattle.FarmFilter) ([]models.Farm, error) {
	res, err := pagination.FetchAll(ctx, func(ctx context.Context, page, size int) (models.Page[models.Farm], error) {
		return s.api.ListFarms(ctx, cattle.OffsetFromPage(page, size), f)
	}, pagination.Options{})
	return res.Items, err
}
