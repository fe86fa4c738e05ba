package models

import (
	"strings"

	"github.com/shopfront/catalog-api/internal/pagination"
	"github.com/shopspring/decimal"
)

type SortBy string

const (
	SortByRelevance SortBy = "relevance"
	SortByPrice     SortBy = "price"
	SortByName      SortBy = "name"
	SortByDate      SortBy = "date"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 20
)

// SearchQuery is the validated input of a product search. Absent filters
// are nil; the builder never sees a zero value standing in for "unset".
type SearchQuery struct {
	Term      *string
	ID        *int64
	Category  *string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Page      int
	Limit     int
	SortBy    SortBy
	SortOrder SortOrder
}

// WithDefaults returns a copy with blank terms dropped and paging and
// sorting defaults filled in.
func (q SearchQuery) WithDefaults() SearchQuery {
	if q.Term != nil {
		term := strings.TrimSpace(*q.Term)
		if term == "" {
			q.Term = nil
		} else {
			q.Term = &term
		}
	}
	if q.Category != nil {
		category := strings.TrimSpace(*q.Category)
		if category == "" {
			q.Category = nil
		} else {
			q.Category = &category
		}
	}
	if q.Page < 1 {
		q.Page = DefaultSearchPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultSearchLimit
	}
	if q.SortBy == "" {
		q.SortBy = SortByRelevance
	}
	if q.SortOrder == "" {
		q.SortOrder = SortDesc
	}
	return q
}

// HasFilter reports whether at least one filtering parameter is present.
func (q SearchQuery) HasFilter() bool {
	return q.Term != nil || q.ID != nil || q.Category != nil || q.MinPrice != nil || q.MaxPrice != nil
}

// PriceRangeInverted reports whether both bounds are set and min exceeds max.
func (q SearchQuery) PriceRangeInverted() bool {
	return q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice)
}

type SearchResult struct {
	Products   []*Product
	TotalItems int64
	Pagination pagination.Result
}
