package service

import (
	"context"
	"time"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/pagination"
)

type SearchRepository interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error)
	Categories(ctx context.Context) ([]string, error)
}

type SearchService struct {
	repo    SearchRepository
	timeout time.Duration
}

func NewSearchService(repo SearchRepository, timeout time.Duration) *SearchService {
	return &SearchService{repo: repo, timeout: timeout}
}

// Search runs a filtered product search and attaches page metadata.
func (s *SearchService) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	q = q.WithDefaults()

	if !q.HasFilter() {
		return nil, apperrors.NewValidationError("q",
			"at least one search parameter is required (q, id, category, minPrice, or maxPrice)")
	}
	if q.PriceRangeInverted() {
		return nil, apperrors.NewValidationError("minPrice", "minimum price cannot be greater than maximum price")
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, storeError("search products", err)
	}

	result.Pagination = pagination.Compute(result.TotalItems, q.Page, q.Limit)
	return result, nil
}

func (s *SearchService) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, storeError("list categories", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
