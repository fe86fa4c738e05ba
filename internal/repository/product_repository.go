package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/pagination"
	"github.com/shopfront/catalog-api/internal/search"
)

type ProductRepository struct {
	db      DBTX
	builder *search.Builder
}

func NewProductRepository(db DBTX, builder *search.Builder) *ProductRepository {
	return &ProductRepository{
		db:      db,
		builder: builder,
	}
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category, stock_quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		req.Name, req.Description, req.Price, req.Category, req.StockQuantity, req.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", translate(err))
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	rows, err := r.db.Query(ctx, "SELECT "+search.ProductColumns+" FROM products WHERE id = $1", id)
	if err != nil {
		return nil, translate(err)
	}
	products, err := collectProducts(rows, false)
	if err != nil {
		return nil, translate(err)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products[0], nil
}

func (r *ProductRepository) List(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+search.ProductColumns+" FROM products ORDER BY id LIMIT $1 OFFSET $2",
		params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", translate(err))
	}
	products, err := collectProducts(rows, false)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", translate(err))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return nil, fmt.Errorf("count products: %w", translate(err))
	}

	return &models.ListProductsResult{Products: products, TotalItems: total}, nil
}

// Search runs the count and fetch statements built for q.
func (r *ProductRepository) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	plan := r.builder.Build(q)

	rows, err := r.db.Query(ctx, plan.Fetch.SQL, plan.Fetch.Args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", translate(err))
	}
	products, err := collectProducts(rows, plan.Ranked)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", translate(err))
	}

	var total int64
	if err := r.db.QueryRow(ctx, plan.Count.SQL, plan.Count.Args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count search results: %w", translate(err))
	}

	return &models.SearchResult{Products: products, TotalItems: total}, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT DISTINCT category FROM products WHERE category IS NOT NULL ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", translate(err))
	}
	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", translate(err))
	}
	return categories, nil
}

func collectProducts(rows pgx.Rows, ranked bool) ([]*models.Product, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Product, error) {
		var p models.Product
		dest := []any{
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.StockQuantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		}
		if ranked {
			var score float64
			dest = append(dest, &score)
			p.RelevanceScore = &score
		}
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return &p, nil
	})
}
