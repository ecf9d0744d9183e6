package services

import "vybe/internal/repositories"

const (
	DefaultPageSize     = 20
	MaxPageSize         = 100
	DefaultFeaturedSize = 10
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps page to at least 1 and limit to [1, MaxPageSize],
// using DefaultPageSize when limit is unset.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) window() repositories.Page {
	return repositories.Page{Limit: p.Limit, Offset: (p.Page - 1) * p.Limit}
}

// PageMeta is the pagination envelope returned alongside every listing.
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Meta describes this page of a listing with total matching rows.
func (p Pagination) Meta(total int64) PageMeta {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return PageMeta{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}
