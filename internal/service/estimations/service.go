package estimations

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/cache"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/pagination"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// Source is the slice of the backend client this service needs.
type Source interface {
	ListWeightEstimations(ctx context.Context, q cattle.PageQuery, f cattle.EstimationFilter) (models.Page[models.WeightEstimation], error)
	DeleteWeightEstimation(ctx context.Context, id string) error
}

// Service serves the complete weight-estimation list, from cache when fresh
// and from the pagination aggregator otherwise.
type Service struct {
	api        Source
	cache      *cache.EstimationCache
	ttlMinutes int
	logger     *zap.Logger
}

// NewService wires a new estimation service instance.
func NewService(api Source, c *cache.EstimationCache, ttlMinutes int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: c, ttlMinutes: ttlMinutes, logger: logger}
}

// All returns every estimation. On a failed page it returns the items
// gathered so far together with the error; partial results are not cached.
func (s *Service) All(ctx context.Context) ([]models.WeightEstimation, error) {
	if data, ok := s.cache.Get(ctx); ok {
		s.logger.Debug("estimations served from cache", zap.Int("count", len(data)))
		return data, nil
	}
	return s.Refresh(ctx)
}

// Refresh bypasses the cache, refetches every page and stores the result.
func (s *Service) Refresh(ctx context.Context) ([]models.WeightEstimation, error) {
	res, err := pagination.FetchAll(ctx, s.fetchPage, pagination.Options{})
	if err != nil {
		s.logger.Error("failed to aggregate estimations",
			zap.Int("partial_count", len(res.Items)),
			zap.Int("calls", res.Calls),
			zap.Error(err))
		return res.Items, fmt.Errorf("load weight estimations: %w", err)
	}

	s.logger.Info("estimations aggregated",
		zap.Int("count", len(res.Items)),
		zap.Int("calls", res.Calls),
		zap.Bool("complete", res.Complete))

	if err := s.cache.Set(ctx, res.Items, s.ttlMinutes); err != nil {
		s.logger.Warn("failed to cache estimations", zap.Error(err))
	}
	return res.Items, nil
}

// Delete removes an estimation on the backend, then drops it from the cached
// list without invalidating the rest of the entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteWeightEstimation(ctx, id); err != nil {
		return err
	}
	if _, err := s.cache.RemoveOne(ctx, id); err != nil {
		s.logger.Warn("failed to update cached estimations, clearing", zap.String("id", id), zap.Error(err))
		if err := s.cache.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear estimation cache", zap.Error(err))
		}
	}
	return nil
}

// Clear drops the cached list.
func (s *Service) Clear(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

func (s *Service) fetchPage(ctx context.Context, page, pageSize int) (models.Page[models.WeightEstimation], error) {
	return s.api.ListWeightEstimations(ctx, cattle.PageQuery{Page: page, PageSize: pageSize}, cattle.EstimationFilter{})
}
