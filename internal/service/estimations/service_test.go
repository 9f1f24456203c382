package estimations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/cache"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

type fakeSource struct {
	mu        sync.Mutex
	items     []models.WeightEstimation
	failPage  int
	calls     int
	deleted   []string
	deleteErr error
}

func (f *fakeSource) ListWeightEstimations(_ context.Context, q cattle.PageQuery, _ cattle.EstimationFilter) (models.Page[models.WeightEstimation], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failPage == q.Page {
		return models.Page[models.WeightEstimation]{}, errors.New("backend down")
	}
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > len(f.items) {
		start = len(f.items)
	}
	if end > len(f.items) {
		end = len(f.items)
	}
	return models.Page[models.WeightEstimation]{
		Total:    len(f.items),
		Items:    append([]models.WeightEstimation{}, f.items[start:end]...),
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func (f *fakeSource) DeleteWeightEstimation(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func makeItems(n int) []models.WeightEstimation {
	out := make([]models.WeightEstimation, n)
	for i := range out {
		out[i] = models.WeightEstimation{ID: fmt.Sprintf("e%d", i), AnimalID: "a1", EstimatedWeight: 300}
	}
	return out
}

func newService(src *fakeSource) *Service {
	return NewService(src, cache.NewEstimationCache(cache.NewMemoryStore(), nil), 30, nil)
}

func TestService_AllUsesCacheAfterFirstLoad(t *testing.T) {
	t.Parallel()
	src := &fakeSource{items: makeItems(700)}
	svc := newService(src)
	ctx := context.Background()

	first, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 700)
	assert.Equal(t, 2, src.calls)

	second, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 700)
	assert.Equal(t, 2, src.calls, "second call must be served from cache")
}

func TestService_PartialFailureNotCached(t *testing.T) {
	t.Parallel()
	src := &fakeSource{items: makeItems(1200), failPage: 2}
	svc := newService(src)
	ctx := context.Background()

	partial, err := svc.All(ctx)
	require.Error(t, err)
	assert.Len(t, partial, 500)

	src.failPage = 0
	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1200)
}

func TestService_DeleteRemovesFromCache(t *testing.T) {
	t.Parallel()
	src := &fakeSource{items: makeItems(3)}
	svc := newService(src)
	ctx := context.Background()

	_, err := svc.All(ctx)
	require.NoError(t, err)
	callsBefore := src.calls

	require.NoError(t, svc.Delete(ctx, "e1"))
	assert.Equal(t, []string{"e1"}, src.deleted)

	got, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsBefore, src.calls, "delete must not force a refetch")
	require.Len(t, got, 2)
	assert.Equal(t, "e0", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}

func TestService_DeleteFailureKeepsCache(t *testing.T) {
	t.Parallel()
	src := &fakeSource{items: makeItems(2), deleteErr: errors.New("nope")}
	svc := newService(src)
	ctx := context.Background()

	_, err := svc.All(ctx)
	require.NoError(t, err)

	require.Error(t, svc.Delete(ctx, "e0"))
	got, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ClearForcesRefetch(t *testing.T) {
	t.Parallel()
	src := &fakeSource{items: makeItems(1)}
	svc := newService(src)
	ctx := context.Background()

	_, err := svc.All(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	_, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}
