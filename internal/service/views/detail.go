package views

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/stats"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// FarmDetail loads a farm with its owner's name and statistics. Only the farm
// fetch can fail the view; owner and statistics degrade to empty values.
func (s *Service) FarmDetail(ctx context.Context, id string) (*models.FarmDetail, error) {
	farm, err := s.api.GetFarm(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.FarmDetail{Farm: *farm}

	// Enrichment goroutines log failures and always return nil.
	var g errgroup.Group
	g.Go(func() error {
		if farm.OwnerID == "" {
			return nil
		}
		owner, err := s.api.GetUser(ctx, farm.OwnerID)
		if err != nil {
			s.logger.Warn("farm owner lookup failed", zap.String("farm_id", id), zap.String("owner_id", farm.OwnerID), zap.Error(err))
			return nil
		}
		detail.OwnerName = owner.Username
		return nil
	})
	g.Go(func() error {
		farmStats, err := s.farmStats(ctx, id)
		if err != nil {
			s.logger.Warn("farm statistics failed", zap.String("farm_id", id), zap.Error(err))
			return nil
		}
		detail.Stats = farmStats
		return nil
	})
	_ = g.Wait()

	return detail, nil
}

func (s *Service) farmStats(ctx context.Context, farmID string) (models.FarmStats, error) {
	animals, err := s.allAnimals(ctx, cattle.AnimalFilter{FarmID: farmID})
	if err != nil {
		return models.FarmStats{}, err
	}
	estimations, err := s.estimations.All(ctx)
	if err != nil {
		return models.FarmStats{}, err
	}
	return stats.Farm(animals, estimations), nil
}

// RoleDetail loads a role with the number of users holding it.
func (s *Service) RoleDetail(ctx context.Context, id string) (*models.RoleDetail, error) {
	role, err := s.api.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.RoleDetail{Role: *role}

	users, err := s.allUsers(ctx, cattle.UserFilter{RoleID: id})
	if err != nil {
		s.logger.Warn("role user count failed", zap.String("role_id", id), zap.Error(err))
		return detail, nil
	}
	detail.Stats = stats.Role(id, users)
	return detail, nil
}

// UserDetail loads a user with role name, farm name and owned farm count.
func (s *Service) UserDetail(ctx context.Context, id string) (*models.UserDetail, error) {
	user, err := s.api.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.UserDetail{User: *user}

	var g errgroup.Group
	g.Go(func() error {
		if user.RoleID == "" {
			return nil
		}
		role, err := s.api.GetRole(ctx, user.RoleID)
		if err != nil {
			s.logger.Warn("user role lookup failed", zap.String("user_id", id), zap.Error(err))
			return nil
		}
		detail.RoleName = role.Name
		return nil
	})
	g.Go(func() error {
		if user.FarmID == nil || *user.FarmID == "" {
			return nil
		}
		farm, err := s.api.GetFarm(ctx, *user.FarmID)
		if err != nil {
			s.logger.Warn("user farm lookup failed", zap.String("user_id", id), zap.Error(err))
			return nil
		}
		detail.FarmName = farm.Name
		return nil
	})
	g.Go(func() error {
		farms, err := s.allFarms(ctx, cattle.FarmFilter{OwnerID: id})
		if err != nil {
			s.logger.Warn("user farm count failed", zap.String("user_id", id), zap.Error(err))
			return nil
		}
		detail.Farms = stats.OwnedFarms(id, farms)
		return nil
	})
	_ = g.Wait()

	return detail, nil
}
