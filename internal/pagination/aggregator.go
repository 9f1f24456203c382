// Package pagination assembles complete collections from endpoints that only
// expose page-at-a-time access.
package pagination

import (
	"context"
	"errors"
	"fmt"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

const (
	// DefaultPageSize is the page size requested by FetchAll.
	DefaultPageSize = 500
	// MaxPages bounds the number of round trips regardless of what the
	// backend reports.
	MaxPages = 1000
)

// ErrMalformedPage marks a page payload without an item list. FetchAll stops
// on it and keeps what it already has.
var ErrMalformedPage = errors.New("malformed page")

// PageFunc fetches a single 1-based page.
type PageFunc[T any] func(ctx context.Context, page, pageSize int) (models.Page[T], error)

// Options tune FetchAll. Zero values use the package defaults.
type Options struct {
	PageSize int
	MaxPages int
}

// Result is the outcome of FetchAll.
type Result[T any] struct {
	Items []T
	// Calls is the number of page fetches issued, including a failed one.
	Calls int
	// Complete is false when the loop stopped on a failure or on the
	// safety cap.
	Complete bool
}

// FetchAll requests pages 1..n until the page comes back empty, the
// accumulated count reaches the backend reported total, or the safety cap is
// hit. A page failure aborts without retry and returns the partial items
// gathered so far together with the error.
//
// The reported total is trusted as-is: a total lower than the true size
// stops the loop early.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], opts Options) (Result[T], error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = MaxPages
	}

	res := Result[T]{Items: []T{}}
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Calls++
		p, err := fetch(ctx, page, pageSize)
		if err != nil {
			if errors.Is(err, ErrMalformedPage) {
				res.Complete = true
				return res, nil
			}
			return res, fmt.Errorf("fetch page %d: %w", page, err)
		}

		res.Items = append(res.Items, p.Items...)

		if len(p.Items) == 0 {
			res.Complete = true
			return res, nil
		}
		if p.Total > 0 && len(res.Items) >= p.Total {
			res.Complete = true
			return res, nil
		}
		if page >= maxPages {
			return res, nil
		}
	}
}
