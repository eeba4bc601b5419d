package models

import "testing"

func TestNumPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		expected int
	}{
		{"empty listing", 0, 15, 0},
		{"exactly one page", 15, 15, 1},
		{"partial last page", 16, 15, 2},
		{"many pages", 101, 10, 11},
		{"zero page size", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumPages(tt.total, tt.pageSize); got != tt.expected {
				t.Errorf("NumPages(%d, %d) = %d; want %d", tt.total, tt.pageSize, got, tt.expected)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		expected   int
	}{
		{"first page", 1, 15, 0},
		{"second page", 2, 15, 15},
		{"fifth page", 5, 10, 40},
		{"page number below one is clamped", 0, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageOffset(tt.pageNumber, tt.pageSize); got != tt.expected {
				t.Errorf("PageOffset(%d, %d) = %d; want %d", tt.pageNumber, tt.pageSize, got, tt.expected)
			}
		})
	}
}
