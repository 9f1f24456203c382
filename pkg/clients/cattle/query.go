package cattle

import (
	"net/url"
	"strconv"
)

// Default page sizes used when a query leaves them unset.
const (
	DefaultPageSize = 20
	DefaultLimit    = 100
)

// PageQuery is the {page, page_size} convention used by /api/v1 endpoints.
// Page is 1-based; zero values fall back to page 1 and DefaultPageSize.
type PageQuery struct {
	Page     int
	PageSize int
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(size))
	return v
}

// OffsetQuery is the {skip, limit} convention used by legacy endpoints.
// A zero Limit falls back to DefaultLimit.
type OffsetQuery struct {
	Skip  int
	Limit int
}

func (q OffsetQuery) values() url.Values {
	v := url.Values{}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	v.Set("skip", strconv.Itoa(skip))
	v.Set("limit", strconv.Itoa(limit))
	return v
}

// OffsetFromPage converts a 1-based page into an OffsetQuery.
func OffsetFromPage(page, pageSize int) OffsetQuery {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultLimit
	}
	return OffsetQuery{Skip: (page - 1) * pageSize, Limit: pageSize}
}

// setIf adds key=value when value is non-empty.
func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
