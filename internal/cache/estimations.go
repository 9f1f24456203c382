package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// EstimationsKey is the store key of the weight-estimation entry.
const EstimationsKey = "weight_estimations_cache"

// EstimationCache is a TTL cache over the full weight-estimation list.
// It is only an accelerator: a missing, expired or unreadable entry is
// reported as absent and callers must refetch.
type EstimationCache struct {
	store  Store
	key    string
	now    func() time.Time
	logger *zap.Logger
}

// NewEstimationCache wraps store.
func NewEstimationCache(store Store, logger *zap.Logger) *EstimationCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimationCache{
		store:  store,
		key:    EstimationsKey,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *EstimationCache) WithClock(now func() time.Time) *EstimationCache {
	c.now = now
	return c
}

// Get returns the cached list while now - timestamp < ttl.
func (c *EstimationCache) Get(ctx context.Context) ([]models.WeightEstimation, bool) {
	entry, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if !entry.Valid(c.now()) {
		c.logger.Debug("cache entry expired",
			zap.Time("timestamp", entry.Timestamp),
			zap.Int("ttl_minutes", entry.TTLMinutes))
		return nil, false
	}
	return entry.Data, true
}

// Set stores data stamped with the current time.
func (c *EstimationCache) Set(ctx context.Context, data []models.WeightEstimation, ttlMinutes int) error {
	entry := models.CacheEntry{
		Data:       data,
		Timestamp:  c.now(),
		TTLMinutes: ttlMinutes,
	}
	if err := c.store.Save(ctx, c.key, entry); err != nil {
		return fmt.Errorf("save cache entry: %w", err)
	}
	return nil
}

// Clear drops the entry.
func (c *EstimationCache) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("clear cache entry: %w", err)
	}
	return nil
}

// RemoveOne deletes the estimation with id from a valid entry, keeping its
// timestamp and TTL. It reports whether an element was removed.
func (c *EstimationCache) RemoveOne(ctx context.Context, id string) (bool, error) {
	entry, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("load cache entry: %w", err)
	}
	if !ok || !entry.Valid(c.now()) {
		return false, nil
	}

	kept := make([]models.WeightEstimation, 0, len(entry.Data))
	for _, item := range entry.Data {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(entry.Data) {
		return false, nil
	}

	entry.Data = kept
	if err := c.store.Save(ctx, c.key, entry); err != nil {
		return false, fmt.Errorf("save cache entry: %w", err)
	}
	return true, nil
}
