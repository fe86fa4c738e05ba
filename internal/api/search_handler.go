package api

import (
	"net/http"
	"time"

	"github.com/nhalm/canonlog"
)

// SearchProducts godoc
// @Summary Search products
// @Tags search
// @Produce json
// @Param q query string false "Free-text term"
// @Param id query int false "Exact product id"
// @Param category query string false "Category"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param page query int false "Page (1-1000)"
// @Param limit query int false "Page size (1-100)"
// @Param sortBy query string false "relevance, price, name or date"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /search [get]
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, err := ParseSearchParams(r.URL.Query())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	fields := map[string]any{
		"search_page":  params.Page,
		"search_limit": params.Limit,
		"search_sort":  params.SortBy + " " + params.SortOrder,
	}
	if params.Q != nil {
		fields["search_term"] = *params.Q
	}
	if params.ID != nil {
		fields["search_id"] = *params.ID
	}
	if params.Category != nil {
		fields["search_category"] = *params.Category
	}
	canonlog.AddRequestFields(r.Context(), fields)

	result, err := h.searchSvc.Search(r.Context(), params.Query())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"search_matches": result.TotalItems,
	})

	Success(w, NewSearchResponse(params, result, time.Since(start)))
}

// ListCategories godoc
// @Summary List product categories
// @Tags search
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Security BearerAuth
// @Router /search/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.searchSvc.Categories(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Success(w, NewCategoriesResponse(categories))
}
