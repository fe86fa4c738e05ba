package api

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRangeError(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{value: "0", ok: true},
		{value: "0.000", ok: true},
		{value: "19.99", ok: true},
		{value: "1.500", ok: true},
		{value: "9999999999.99", ok: true},
		{value: "-5", ok: true},
		{value: "10000000000", ok: false},
		{value: "1.005", ok: false},
		{value: "1e20000000", ok: false},
		{value: "1e2000000000", ok: false},
		{value: "0e2000000000", ok: false},
		{value: "1e-2000000000", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)

			if tt.ok {
				assert.Empty(t, priceRangeError(d))
			} else {
				assert.NotEmpty(t, priceRangeError(d))
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	d, fieldErr := parsePrice("minPrice", "12.50")
	require.Nil(t, fieldErr)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	_, fieldErr = parsePrice("minPrice", "abc")
	require.NotNil(t, fieldErr)
	assert.Equal(t, "minPrice must be a number", fieldErr.Message)

	_, fieldErr = parsePrice("minPrice", "1e20000000")
	require.NotNil(t, fieldErr)
	assert.Equal(t, "minPrice", fieldErr.Field)

	_, fieldErr = parsePrice("maxPrice", strings.Repeat("1", 40))
	require.NotNil(t, fieldErr)
	assert.Equal(t, "maxPrice is too long", fieldErr.Message)
}
