// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachasan/heritage-api/pkg/pagination"
)

/*
TestFromRequest verifies parsing and clamping of page/limit query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/traditions", 1, 10},
		{"explicit", "/traditions?page=3&limit=25", 3, 25},
		{"zero_page", "/traditions?page=0&limit=5", 1, 5},
		{"negative_page", "/traditions?page=-2", 1, 10},
		{"zero_limit", "/traditions?limit=0", 1, 10},
		{"excessive_limit", "/traditions?limit=5000", 1, 10},
		{"unparseable", "/traditions?page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset verifies the (page-1)*limit offset arithmetic.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestNewMeta verifies totalPages == ceil(total/limit) across edge cases.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		total      int
		totalPages int
	}{
		{"exact_division", 10, 100, 10},
		{"remainder_rounds_up", 10, 101, 11},
		{"single_partial_page", 10, 3, 1},
		{"empty", 10, 0, 0},
		{"limit_one", 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
