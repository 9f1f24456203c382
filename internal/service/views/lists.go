package views

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/pagination"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/stats"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// DefaultPageSize is used when a list request leaves PageSize unset.
const DefaultPageSize = 10

// MaxPageSize caps the rows a single table page may request.
const MaxPageSize = pagination.DefaultPageSize

// ListState is the pagination state a table view sends back.
type ListState struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (s ListState) normalized() ListState {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}
	// Keeps (Page-1)*PageSize plus one page of items within int.
	if maxPage := math.MaxInt/s.PageSize - 1; s.Page > maxPage {
		s.Page = maxPage
	}
	return s
}

// ListResult is one page of a table view.
type ListResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func newListResult[T any](items []T, total int, st ListState) ListResult[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = total / st.PageSize
		if total%st.PageSize != 0 {
			pages++
		}
	}
	return ListResult[T]{Items: items, Total: total, Page: st.Page, PageSize: st.PageSize, TotalPages: pages}
}

// fromPage converts a backend page. A missing total is approximated from the
// items seen so far.
func fromPage[T any](p models.Page[T], st ListState) ListResult[T] {
	total := p.Total
	if total == 0 {
		total = (st.Page-1)*st.PageSize + len(p.Items)
	}
	return newListResult(p.Items, total, st)
}

// ListFarms returns one table page of farms.
func (s *Service) ListFarms(ctx context.Context, st ListState, f cattle.FarmFilter) (ListResult[models.Farm], error) {
	st = st.normalized()
	p, err := s.api.ListFarms(ctx, cattle.OffsetFromPage(st.Page, st.PageSize), f)
	if err != nil {
		return ListResult[models.Farm]{}, err
	}
	return fromPage(p, st), nil
}

// ListUsers returns one table page of users.
func (s *Service) ListUsers(ctx context.Context, st ListState, f cattle.UserFilter) (ListResult[models.User], error) {
	st = st.normalized()
	p, err := s.api.ListUsers(ctx, cattle.OffsetFromPage(st.Page, st.PageSize), f)
	if err != nil {
		return ListResult[models.User]{}, err
	}
	return fromPage(p, st), nil
}

// ListRoles returns one table page of roles.
func (s *Service) ListRoles(ctx context.Context, st ListState) (ListResult[models.Role], error) {
	st = st.normalized()
	p, err := s.api.ListRoles(ctx, cattle.OffsetFromPage(st.Page, st.PageSize))
	if err != nil {
		return ListResult[models.Role]{}, err
	}
	return fromPage(p, st), nil
}

// ListAnimals returns one table page of animals.
func (s *Service) ListAnimals(ctx context.Context, st ListState, f cattle.AnimalFilter) (ListResult[models.Animal], error) {
	st = st.normalized()
	p, err := s.api.ListAnimals(ctx, cattle.PageQuery{Page: st.Page, PageSize: st.PageSize}, f)
	if err != nil {
		return ListResult[models.Animal]{}, err
	}
	return fromPage(p, st), nil
}

// ListAlerts returns one table page of alerts.
func (s *Service) ListAlerts(ctx context.Context, st ListState, f cattle.AlertFilter) (ListResult[models.Alert], error) {
	st = st.normalized()
	p, err := s.api.ListAlerts(ctx, cattle.OffsetFromPage(st.Page, st.PageSize), f)
	if err != nil {
		return ListResult[models.Alert]{}, err
	}
	return fromPage(p, st), nil
}

// EstimationQuery filters the estimations browser.
type EstimationQuery struct {
	ListState
	AnimalID string       `form:"animal_id"`
	FarmID   string       `form:"farm_id"`
	Breed    models.Breed `form:"breed"`
}

// Estimations pages through the full, cached estimation list. Farm and breed
// filters are resolved client-side against the matching animals; newest
// estimations come first.
func (s *Service) Estimations(ctx context.Context, q EstimationQuery) (ListResult[models.WeightEstimation], error) {
	st := q.ListState.normalized()

	all, err := s.estimations.All(ctx)
	if err != nil {
		return ListResult[models.WeightEstimation]{}, err
	}

	filtered := all
	if q.FarmID != "" || q.Breed != "" {
		animals, err := s.allAnimals(ctx, cattle.AnimalFilter{FarmID: q.FarmID, Breed: q.Breed})
		if err != nil {
			return ListResult[models.WeightEstimation]{}, err
		}
		filtered = stats.FilterEstimations(filtered, animals)
	}
	if q.AnimalID != "" {
		byAnimal := make([]models.WeightEstimation, 0)
		for _, e := range filtered {
			if strings.EqualFold(e.AnimalID, q.AnimalID) {
				byAnimal = append(byAnimal, e)
			}
		}
		filtered = byAnimal
	}

	sorted := append([]models.WeightEstimation(nil), filtered...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	start := (st.Page - 1) * st.PageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + st.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return newListResult(sorted[start:end], len(sorted), st), nil
}

// DeleteEstimation removes an estimation and updates the cached list.
func (s *Service) DeleteEstimation(ctx context.Context, id string) error {
	return s.estimations.Delete(ctx, id)
}

// CreateFarm validates and creates a farm.
func (s *Service) CreateFarm(ctx context.Context, in models.FarmInput) (*models.Farm, error) {
	return s.api.CreateFarm(ctx, in)
}

// UpdateFarm validates and updates a farm.
func (s *Service) UpdateFarm(ctx context.Context, id string, in models.FarmInput) (*models.Farm, error) {
	return s.api.UpdateFarm(ctx, id, in)
}

// DeleteFarm removes a farm.
func (s *Service) DeleteFarm(ctx context.Context, id string) error {
	return s.api.DeleteFarm(ctx, id)
}
