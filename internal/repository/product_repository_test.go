package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/nhalm/pgxkit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/search"
)

// testDB connects to TEST_DATABASE_URL, migrates it and empties the tables.
func testDB(t *testing.T) *pgxkit.DB {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	m, err := migrate.New("file://../database/migrations", databaseURL)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	ctx := context.Background()
	db := pgxkit.NewDB()
	require.NoError(t, db.Connect(ctx, databaseURL))
	t.Cleanup(func() { _ = db.Shutdown(context.Background()) })

	_, err = db.Exec(ctx, "TRUNCATE products, users RESTART IDENTITY")
	require.NoError(t, err)

	return db
}

func newTestProductRepository(t *testing.T, db DBTX) *ProductRepository {
	t.Helper()
	return NewProductRepository(db, search.NewBuilder(search.NewPostgresRanker()))
}

func seedProduct(t *testing.T, repo *ProductRepository, name, category string, price int64) int64 {
	t.Helper()
	description := "sturdy " + name
	id, err := repo.Create(context.Background(), &models.CreateProductRequest{
		Name:          name,
		Description:   &description,
		Price:         decimal.NewFromInt(price),
		Category:      &category,
		StockQuantity: 3,
	})
	require.NoError(t, err)
	return id
}

func TestProductRepository_SearchPagination(t *testing.T) {
	db := testDB(t)
	repo := newTestProductRepository(t, db)
	ctx := context.Background()

	for i := range 25 {
		seedProduct(t, repo, fmt.Sprintf("running shoe %d", i), "footwear", int64(10+i))
	}
	seedProduct(t, repo, "garden hose", "garden", 15)

	term := "shoe"
	q := models.SearchQuery{Term: &term, Page: 2, Limit: 10}.WithDefaults()

	result, err := repo.Search(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.TotalItems)
	require.Len(t, result.Products, 10)
	for _, p := range result.Products {
		require.NotNil(t, p.RelevanceScore)
	}

	q.Page = 3
	result, err = repo.Search(ctx, q)
	require.NoError(t, err)
	assert.Len(t, result.Products, 5)
}

func TestProductRepository_SearchCountMatchesRows(t *testing.T) {
	db := testDB(t)
	repo := newTestProductRepository(t, db)
	ctx := context.Background()

	for i := range 12 {
		seedProduct(t, repo, fmt.Sprintf("hammer %d", i), "tools", int64(i*5))
	}
	seedProduct(t, repo, "rake", "garden", 20)

	category := "tools"
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(40)
	q := models.SearchQuery{Category: &category, MinPrice: &minPrice, MaxPrice: &maxPrice, Limit: 100}.WithDefaults()

	result, err := repo.Search(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(len(result.Products)), result.TotalItems)
	assert.Equal(t, int64(7), result.TotalItems)
}

func TestProductRepository_SearchByIDIgnoresTerm(t *testing.T) {
	db := testDB(t)
	repo := newTestProductRepository(t, db)
	ctx := context.Background()

	id := seedProduct(t, repo, "anvil", "tools", 100)
	seedProduct(t, repo, "shoe", "footwear", 50)

	term := "shoe"
	result, err := repo.Search(ctx, models.SearchQuery{ID: &id, Term: &term}.WithDefaults())
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "anvil", result.Products[0].Name)
	assert.Nil(t, result.Products[0].RelevanceScore)
}

func TestProductRepository_ListAndCategories(t *testing.T) {
	db := testDB(t)
	repo := newTestProductRepository(t, db)
	ctx := context.Background()

	seedProduct(t, repo, "rake", "garden", 20)
	seedProduct(t, repo, "saw", "tools", 30)
	seedProduct(t, repo, "hoe", "garden", 25)

	result, err := repo.List(ctx, models.ListProductsParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.TotalItems)
	assert.Len(t, result.Products, 2)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"garden", "tools"}, categories)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "Ada", "ada@example.com", "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Ada Again", "ada@example.com", "hash")
	assert.ErrorIs(t, err, ErrConflict)

	user, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	require.NoError(t, repo.Update(ctx, &models.UpdateUserRequest{ID: id, Name: "Ada L", Email: "ada@example.com"}))
	user, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada L", user.Name)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
