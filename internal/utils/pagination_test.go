package utils

import (
	"math"
	"strconv"
	"testing"

	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		expected Page
	}{
		{"defaults", "", "", Page{Page: 1, Limit: 10, Offset: 0}},
		{"page 2 limit 10", "2", "10", Page{Page: 2, Limit: 10, Offset: 10}},
		{"page 3 limit 25", "3", "25", Page{Page: 3, Limit: 25, Offset: 50}},
		{"zero page", "0", "10", Page{Page: 1, Limit: 10, Offset: 0}},
		{"negative limit", "1", "-5", Page{Page: 1, Limit: 10, Offset: 0}},
		{"limit capped", "2", "500", Page{Page: 2, Limit: 100, Offset: 100}},
		{"garbage", "abc", "xyz", Page{Page: 1, Limit: 10, Offset: 0}},
		{"max int page", strconv.Itoa(math.MaxInt), "100", Page{
			Page:   math.MaxInt / 100,
			Limit:  100,
			Offset: (math.MaxInt/100 - 1) * 100,
		}},
		{"out of int range page", "99999999999999999999999", "10", Page{Page: 1, Limit: 10, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePage(tt.page, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	p := ParsePage("2", "10")

	tests := []struct {
		total int
		pages int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{95, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, models.Pagination{Total: tt.total, Page: 2, Limit: 10, Pages: tt.pages}, p.Paginate(tt.total))
	}
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10, Offset: 0}, NewPage(0, 0))
	assert.Equal(t, Page{Page: 3, Limit: 100, Offset: 200}, NewPage(3, 1000))
	assert.Equal(t, Page{Page: 2, Limit: 25, Offset: 25}, NewPage(2, 25))

	for _, limit := range []int{1, 7, 10, MaxLimit} {
		p := NewPage(math.MaxInt, limit)
		assert.GreaterOrEqual(t, p.Offset, 0, "limit %d", limit)
		assert.Equal(t, (p.Page-1)*p.Limit, p.Offset)
	}
}
