package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopspring/decimal"
)

// SearchParams is the query string of GET /search after parsing. Absent or
// unparsable values stay nil.
type SearchParams struct {
	Q         *string          `query:"q" validate:"omitempty,min=1,max=100"`
	ID        *int64           `query:"id" validate:"omitempty,min=1"`
	Category  *string          `query:"category" validate:"omitempty,min=1,max=50"`
	MinPrice  *decimal.Decimal `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *decimal.Decimal `query:"maxPrice" validate:"omitempty,gte=0"`
	Page      int              `query:"page" validate:"min=1,max=1000"`
	Limit     int              `query:"limit" validate:"min=1,max=100"`
	SortBy    string           `query:"sortBy" validate:"oneof=relevance price name date"`
	SortOrder string           `query:"sortOrder" validate:"oneof=asc desc"`
}

func validateSearchParams(sl validator.StructLevel) {
	p := sl.Current().Interface().(SearchParams)

	if p.Q == nil && p.ID == nil && p.Category == nil && p.MinPrice == nil && p.MaxPrice == nil {
		sl.ReportError(p.Q, "q", "Q", "atleastone", "")
	}
	if p.MinPrice != nil && p.MaxPrice != nil && p.MinPrice.GreaterThan(*p.MaxPrice) {
		sl.ReportError(p.MinPrice, "minPrice", "MinPrice", "ltefield", "maxPrice")
	}
}

// ParseSearchParams reads and validates the search query string.
func ParseSearchParams(values url.Values) (SearchParams, error) {
	p := SearchParams{
		Page:      models.DefaultSearchPage,
		Limit:     models.DefaultSearchLimit,
		SortBy:    string(models.SortByRelevance),
		SortOrder: string(models.SortDesc),
	}
	var parseErrors []apperrors.FieldError

	p.Q = trimmedParam(values, "q")
	p.Category = trimmedParam(values, "category")

	if raw := strings.TrimSpace(values.Get("id")); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			p.ID = &v
		} else {
			parseErrors = append(parseErrors, apperrors.FieldError{Field: "id", Message: "id must be a positive integer"})
		}
	}

	for _, price := range []struct {
		name string
		dest **decimal.Decimal
	}{
		{"minPrice", &p.MinPrice},
		{"maxPrice", &p.MaxPrice},
	} {
		raw := strings.TrimSpace(values.Get(price.name))
		if raw == "" {
			continue
		}
		v, fieldErr := parsePrice(price.name, raw)
		if fieldErr != nil {
			parseErrors = append(parseErrors, *fieldErr)
			continue
		}
		*price.dest = v
	}

	for _, n := range []struct {
		name string
		dest *int
	}{
		{"page", &p.Page},
		{"limit", &p.Limit},
	} {
		raw := strings.TrimSpace(values.Get(n.name))
		if raw == "" {
			continue
		}
		if v, err := strconv.Atoi(raw); err == nil {
			*n.dest = v
		} else {
			parseErrors = append(parseErrors, apperrors.FieldError{Field: n.name, Message: n.name + " must be an integer"})
		}
	}

	if v := values.Get("sortBy"); v != "" {
		p.SortBy = v
	}
	if v := values.Get("sortOrder"); v != "" {
		p.SortOrder = v
	}

	if err := validationError(validate.Struct(p), parseErrors); err != nil {
		return p, err
	}
	return p, nil
}

func (p SearchParams) Query() models.SearchQuery {
	return models.SearchQuery{
		Term:      p.Q,
		ID:        p.ID,
		Category:  p.Category,
		MinPrice:  p.MinPrice,
		MaxPrice:  p.MaxPrice,
		Page:      p.Page,
		Limit:     p.Limit,
		SortBy:    models.SortBy(p.SortBy),
		SortOrder: models.SortOrder(p.SortOrder),
	}
}

func trimmedParam(values url.Values, key string) *string {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
