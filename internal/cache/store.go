// Package cache keeps the full weight-estimation list between requests so the
// pagination aggregator does not run on every view.
package cache

import (
	"context"
	"sync"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// Store is a bare key/value backend for cache entries. It offers no
// compare-and-swap: concurrent writers to one key are last-write-wins.
type Store interface {
	Load(ctx context.Context, key string) (models.CacheEntry, bool, error)
	Save(ctx context.Context, key string, entry models.CacheEntry) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	entries map[string]models.CacheEntry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]models.CacheEntry)}
}

// Load returns a copy of the entry under key.
func (s *MemoryStore) Load(_ context.Context, key string) (models.CacheEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok {
		return models.CacheEntry{}, false, nil
	}
	entry.Data = cloneData(entry.Data)
	return entry, true, nil
}

// Save stores a copy of entry under key.
func (s *MemoryStore) Save(_ context.Context, key string, entry models.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.Data = cloneData(entry.Data)
	s.entries[key] = entry
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// cloneData copies data, keeping nil and empty lists distinct.
func cloneData(data []models.WeightEstimation) []models.WeightEstimation {
	if data == nil {
		return nil
	}
	out := make([]models.WeightEstimation, len(data))
	copy(out, data)
	return out
}
