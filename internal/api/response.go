package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/pagination"
	"github.com/shopspring/decimal"
)

// ListResponse wraps paginated collections.
// @Description Collection response with page metadata
type ListResponse struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data"`
	Pagination pagination.Result `json:"pagination"`
}

// SearchResponse is the envelope of GET /search.
// @Description Product search results
type SearchResponse struct {
	Success     bool              `json:"success"`
	Query       SearchEcho        `json:"query"`
	Data        []ProductResponse `json:"data"`
	Pagination  pagination.Result `json:"pagination"`
	SearchStats SearchStats       `json:"searchStats"`
}

// SearchEcho repeats the effective search parameters.
type SearchEcho struct {
	SearchTerm *string       `json:"searchTerm"`
	ID         *int64        `json:"id"`
	Filters    SearchFilters `json:"filters"`
	Sorting    SearchSorting `json:"sorting"`
}

type SearchFilters struct {
	Category   *string    `json:"category"`
	PriceRange PriceRange `json:"priceRange"`
}

type PriceRange struct {
	Min *decimal.Decimal `json:"min"`
	Max *decimal.Decimal `json:"max"`
}

type SearchSorting struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type SearchStats struct {
	ExecutionTime string `json:"executionTime"`
	TotalMatches  int64  `json:"totalMatches"`
}

// CategoriesResponse is the envelope of GET /search/categories.
// @Description Distinct product categories
type CategoriesResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
	Total   int      `json:"total"`
}

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	Error   ErrorDetail            `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	Param  string `json:"param,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func NewListResponse(data any, page pagination.Result) *ListResponse {
	return &ListResponse{
		Success:    true,
		Data:       data,
		Pagination: page,
	}
}

func NewSearchResponse(params SearchParams, result *models.SearchResult, elapsed time.Duration) *SearchResponse {
	products := make([]ProductResponse, len(result.Products))
	for i, p := range result.Products {
		products[i] = convertToProductResponse(p)
	}

	return &SearchResponse{
		Success: true,
		Query: SearchEcho{
			SearchTerm: params.Q,
			ID:         params.ID,
			Filters: SearchFilters{
				Category: params.Category,
				PriceRange: PriceRange{
					Min: params.MinPrice,
					Max: params.MaxPrice,
				},
			},
			Sorting: SearchSorting{
				SortBy:    params.SortBy,
				SortOrder: params.SortOrder,
			},
		},
		Data:       products,
		Pagination: result.Pagination,
		SearchStats: SearchStats{
			ExecutionTime: fmt.Sprintf("%.3fs", elapsed.Seconds()),
			TotalMatches:  result.Pagination.TotalItems,
		},
	}
}

func NewCategoriesResponse(categories []string) *CategoriesResponse {
	return &CategoriesResponse{
		Success: true,
		Data:    categories,
		Total:   len(categories),
	}
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "validation_failed",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusServiceUnavailable:  "service_unavailable",
	http.StatusGatewayTimeout:      "timeout",
	http.StatusInternalServerError: "internal_error",
}

func NewErrorResponse(httpStatusCode int, message, param string, fields []apperrors.FieldError, detail string) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	errorCode, ok := errorCodes[httpStatusCode]
	if !ok {
		errorCode = "unknown_error"
	}

	return &ErrorResponse{
		Success: false,
		Message: message,
		Errors:  fields,
		Error: ErrorDetail{
			Type:   errorType,
			Code:   errorCode,
			Param:  param,
			Detail: detail,
		},
	}
}
