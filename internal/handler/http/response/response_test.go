package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		totalItems int64
		totalPages int
	}{
		{"exact fit", 1, 50, 100, 2},
		{"partial last page", 1, 50, 101, 3},
		{"empty result", 1, 50, 0, 0},
		{"zero limit", 1, 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewMeta(tc.page, tc.limit, tc.totalItems)
			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.limit, meta.Limit)
			assert.Equal(t, tc.totalItems, meta.TotalItems)
			assert.Equal(t, tc.totalPages, meta.TotalPages)
		})
	}
}
