package models

import (
	"time"

	"github.com/shopfront/catalog-api/internal/pagination"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64
	Name          string
	Description   *string
	Price         decimal.Decimal
	Category      *string
	StockQuantity int
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// RelevanceScore is only set for free-text search results.
	RelevanceScore *float64
}

type CreateProductRequest struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	Category      *string
	StockQuantity int
	ImageURL      *string
}

// ImageUpload is a product image received with a create request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ListProductsParams struct {
	Page  int
	Limit int
}

type ListProductsResult struct {
	Products   []*Product
	TotalItems int64
	Pagination pagination.Result
}
