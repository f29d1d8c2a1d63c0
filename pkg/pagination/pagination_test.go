// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		query string
		page  int
		limit int
	}{
		{"", pagination.DefaultPage, pagination.DefaultLimit},
		{"?page=3&limit=10", 3, 10},
		{"?page=-1&limit=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"?page=abc&limit=1000", pagination.DefaultPage, pagination.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/search"+tt.query, nil))
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := pagination.Window(items, pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 5, meta.Total)

	last, _ := pagination.Window(items, pagination.Params{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, last)

	beyond, _ := pagination.Window(items, pagination.Params{Page: 9, Limit: 2})
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}
