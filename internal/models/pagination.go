package models

import "fmt"

// PaginatedResponse is the envelope returned by all list endpoints.
type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPaginatedResponse wraps a page of results with next/previous links
// relative to basePath. Next is present iff a further page exists, previous
// iff skip is non-zero.
func NewPaginatedResponse[T any](basePath string, skip, limit int, count int64, results []T) PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	resp := PaginatedResponse[T]{Count: count, Results: results}
	if int64(skip+limit) < count {
		next := fmt.Sprintf("%s?skip=%d&limit=%d", basePath, skip+limit, limit)
		resp.Next = &next
	}
	if skip > 0 {
		prevSkip := skip - limit
		if prevSkip < 0 {
			prevSkip = 0
		}
		previous := fmt.Sprintf("%s?skip=%d&limit=%d", basePath, prevSkip, limit)
		resp.Previous = &previous
	}
	return resp
}
