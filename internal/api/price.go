package api

import (
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Prices are stored as NUMERIC(12,2).
const (
	priceScale         = 2
	priceIntegerDigits = 10
	maxPriceLength     = 32

	maxProductJSONBytes = 64 << 10
)

// priceRangeError reports why d does not fit the price column, or "" when it
// does. Only the exponent and digit count are inspected, so inputs such as
// 1e2000000000 are rejected without expanding them.
func priceRangeError(d decimal.Decimal) string {
	exp := int(d.Exponent())
	if exp < -priceScale && (exp < -20 || !d.Truncate(priceScale).Equal(d)) {
		return "must have at most 2 decimal places"
	}
	if d.NumDigits()+exp > priceIntegerDigits {
		return "must be less than 10000000000"
	}
	return ""
}

// parsePrice parses a price from a query or form value.
func parsePrice(field, raw string) (*decimal.Decimal, *apperrors.FieldError) {
	if len(raw) > maxPriceLength {
		return nil, &apperrors.FieldError{Field: field, Message: field + " is too long"}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &apperrors.FieldError{Field: field, Message: field + " must be a number"}
	}
	if msg := priceRangeError(d); msg != "" {
		return nil, &apperrors.FieldError{Field: field, Message: field + " " + msg}
	}
	return &d, nil
}
