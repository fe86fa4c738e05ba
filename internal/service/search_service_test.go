package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/repository"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("term search second page", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)

		products := make([]*models.Product, 10)
		for i := range products {
			products[i] = &models.Product{ID: int64(i + 11), RelevanceScore: ptr(0.5)}
		}
		repo.On("Search", mock.Anything, mock.MatchedBy(func(q models.SearchQuery) bool {
			return *q.Term == "shoe" && q.Page == 2 && q.Limit == 10 &&
				q.SortBy == models.SortByRelevance && q.SortOrder == models.SortDesc
		})).Return(&models.SearchResult{Products: products, TotalItems: 25}, nil).Once()

		result, err := svc.Search(ctx, models.SearchQuery{Term: ptr("shoe"), Page: 2, Limit: 10})
		require.NoError(t, err)

		assert.Len(t, result.Products, 10)
		assert.Equal(t, 2, result.Pagination.CurrentPage)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.Equal(t, int64(25), result.Pagination.TotalItems)
		assert.Equal(t, 10, result.Pagination.ItemsPerPage)
		assert.True(t, result.Pagination.HasNext)
		assert.True(t, result.Pagination.HasPrev)
		repo.AssertExpectations(t)
	})

	t.Run("defaults applied", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)

		repo.On("Search", mock.Anything, mock.MatchedBy(func(q models.SearchQuery) bool {
			return q.Page == 1 && q.Limit == 20
		})).Return(&models.SearchResult{}, nil).Once()

		result, err := svc.Search(ctx, models.SearchQuery{Category: ptr("tools")})
		require.NoError(t, err)
		assert.Empty(t, result.Products)
		assert.Equal(t, 0, result.Pagination.TotalPages)
		assert.False(t, result.Pagination.HasNext)
		repo.AssertExpectations(t)
	})

	t.Run("no filters rejected before the store", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)

		_, err := svc.Search(ctx, models.SearchQuery{Term: ptr("  "), Page: 1})

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("inverted price range rejected", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)
		minPrice := decimal.NewFromInt(10)
		maxPrice := decimal.NewFromInt(5)

		_, err := svc.Search(ctx, models.SearchQuery{Category: ptr("tools"), MinPrice: &minPrice, MaxPrice: &maxPrice})

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "minPrice", validationErr.Field)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("deadline becomes timeout error", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)

		repo.On("Search", mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded).Once()

		_, err := svc.Search(ctx, models.SearchQuery{ID: ptr(int64(42))})

		var timeoutErr *apperrors.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
	})

	t.Run("unreachable store becomes unavailable error", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, time.Second)

		repo.On("Search", mock.Anything, mock.Anything).
			Return(nil, repository.ErrUnavailable).Once()

		_, err := svc.Search(ctx, models.SearchQuery{ID: ptr(int64(42))})

		var unavailableErr *apperrors.ServiceUnavailableError
		require.ErrorAs(t, err, &unavailableErr)
	})

	t.Run("search runs under a deadline", func(t *testing.T) {
		repo := new(mockSearchRepository)
		svc := NewSearchService(repo, 50*time.Millisecond)

		repo.On("Search", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.Anything).Return(&models.SearchResult{}, nil).Once()

		_, err := svc.Search(ctx, models.SearchQuery{ID: ptr(int64(1))})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSearchService_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("lists categories", func(t *testing.T) {
		repo := new(mockSearchRepository)
		repo.On("Categories", mock.Anything).Return([]string{"garden", "tools"}, nil).Once()

		categories, err := NewSearchService(repo, 0).Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"garden", "tools"}, categories)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo := new(mockSearchRepository)
		repo.On("Categories", mock.Anything).Return(nil, nil).Once()

		categories, err := NewSearchService(repo, 0).Categories(ctx)
		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
	})

	t.Run("store error wrapped", func(t *testing.T) {
		repo := new(mockSearchRepository)
		repo.On("Categories", mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := NewSearchService(repo, 0).Categories(ctx)
		assert.ErrorContains(t, err, "list categories")
	})
}
