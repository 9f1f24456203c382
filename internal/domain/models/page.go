package models

// Page is one page of a list endpoint, normalised from the backend envelope
// {total, <plural>, page, page_size}.
type Page[T any] struct {
	Total    int `json:"total"`
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
