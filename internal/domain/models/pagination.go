package model

import (
	"math"
	"strings"
)

const (
	DefaultPostsPerPage    = 10
	DefaultCommentsPerPage = 20
	MaxPerPage             = 100

	// MaxPage keeps (page-1)*per_page inside int for any valid per_page.
	MaxPage = math.MaxInt32
)

type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Normalize clamps page into [1, MaxPage] and replaces an out-of-range per_page with defaultPerPage.
func (r PageRequest) Normalize(defaultPerPage int) PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Page > MaxPage {
		r.Page = MaxPage
	}
	if r.PerPage < 1 || r.PerPage > MaxPerPage {
		r.PerPage = defaultPerPage
	}
	return r
}

// Offset saturates at math.MaxInt instead of overflowing.
func (r PageRequest) Offset() int {
	if r.Page < 1 || r.PerPage < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PerPage {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PerPage
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func NewPagination(r PageRequest, total int64) Pagination {
	pages := 0
	if r.PerPage > 0 && total > 0 {
		pages = int((total + int64(r.PerPage) - 1) / int64(r.PerPage))
	}
	return Pagination{
		Page:    r.Page,
		PerPage: r.PerPage,
		Total:   total,
		Pages:   pages,
		HasNext: r.Page < pages,
		HasPrev: r.Page > 1,
	}
}

type PostFilters struct {
	Search string
	PageRequest
}

func (f PostFilters) Normalize() PostFilters {
	f.Search = strings.TrimSpace(f.Search)
	f.PageRequest = f.PageRequest.Normalize(DefaultPostsPerPage)
	return f
}

type CommentFilters struct {
	PostID *int64
	PageRequest
}

func (f CommentFilters) Normalize() CommentFilters {
	f.PageRequest = f.PageRequest.Normalize(DefaultCommentsPerPage)
	return f
}

type PostPage struct {
	Items      []*Post    `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type CommentPage struct {
	Items      []*Comment `json:"items"`
	Pagination Pagination `json:"pagination"`
}
