package utils

import (
	"math"
	"strconv"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a normalized page request
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage normalizes raw page and limit query values. Missing, malformed or
// non-positive values fall back to the defaults; limit is capped at MaxLimit.
func ParsePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return NewPage(page, limit)
}

// NewPage normalizes an already parsed page request. Page is capped so the
// offset always fits in an int.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Paginate builds the pagination block for total matching rows
func (p Page) Paginate(total int) models.Pagination {
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return models.Pagination{Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}
