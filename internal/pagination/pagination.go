// Package pagination derives offset-based page metadata for list endpoints.
package pagination

import "math"

// Result describes one page of a result set. The JSON names are part of
// the public response format.
type Result struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// Compute builds the page metadata for totalItems rows split into pages of
// itemsPerPage. The page is not clamped: a page past the end yields a valid
// result with HasNext false.
func Compute(totalItems int64, page, itemsPerPage int) Result {
	return Result{
		CurrentPage:  page,
		TotalPages:   TotalPages(totalItems, itemsPerPage),
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		HasNext:      page < TotalPages(totalItems, itemsPerPage),
		HasPrev:      page > 1,
	}
}

// TotalPages returns ceil(totalItems / itemsPerPage), or 0 when there is
// nothing to page over.
func TotalPages(totalItems int64, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage < 1 {
		return 0
	}
	per := int64(itemsPerPage)
	return int((totalItems + per - 1) / per)
}

// Offset returns the number of rows to skip for a 1-based page. It
// saturates at math.MaxInt instead of overflowing.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
