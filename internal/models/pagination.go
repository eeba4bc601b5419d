package models

import "math"

// Paginated is the envelope returned by every paginated listing.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	PageSize   int `json:"page_size"`
	PageNumber int `json:"page_number"`
	NumPages   int `json:"num_pages"`
}

// NumPages computes the total page count for a listing.
func NumPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// PageOffset converts 1-based page parameters into a row offset.
func PageOffset(pageNumber, pageSize int) int {
	if pageNumber < 1 {
		pageNumber = 1
	}
	return pageSize * (pageNumber - 1)
}
