package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(12, 1, 9)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
	assert.Equal(t, int64(12), info.TotalItems)

	// An empty set viewed from page one still reports a single page.
	info = NewPaginationInfo(0, 1, 9)
	assert.Equal(t, 1, info.TotalPages)

	// Past the end the page number is reported as requested, not clamped.
	info = NewPaginationInfo(12, 7, 9)
	assert.Equal(t, 7, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)

	info = NewPaginationInfo(27, 3, 9)
	assert.Equal(t, 3, info.TotalPages)
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		total      int
		start, end int
	}{
		{"first page", 1, 9, 12, 0, 9},
		{"second partial page", 2, 9, 12, 9, 12},
		{"exact boundary", 2, 6, 12, 6, 12},
		{"past the end", 7, 9, 12, 12, 12},
		{"empty set", 1, 9, 0, 0, 0},
		{"invalid page falls back", 0, 9, 12, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
