package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/id"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/pagination"
	"github.com/shopfront/catalog-api/internal/repository"
	"github.com/shopfront/catalog-api/internal/storage"
)

type ProductRepository interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error)
}

type ProductService struct {
	repo    ProductRepository
	images  storage.Storage
	timeout time.Duration
}

func NewProductService(repo ProductRepository, images storage.Storage, timeout time.Duration) *ProductService {
	return &ProductService{repo: repo, images: images, timeout: timeout}
}

// CreateProduct stores the optional image first and records its URL on the
// product. The image is removed again when the insert fails.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest, image *models.ImageUpload) (*models.Product, error) {
	if image != nil {
		url, err := s.images.Store(ctx, image.Data, id.GenerateFilename("product-", image.Filename))
		if err != nil {
			return nil, storeError("upload product image", err)
		}
		req.ImageURL = &url
	}

	dbCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	productID, err := s.repo.Create(dbCtx, req)
	if err != nil {
		if image != nil {
			_ = s.images.Delete(context.WithoutCancel(ctx), *req.ImageURL)
		}
		return nil, storeError("create product", err)
	}

	product, err := s.repo.GetByID(dbCtx, productID)
	if err != nil {
		return nil, storeError("get product", err)
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", strconv.FormatInt(productID, 10))
		}
		return nil, storeError("get product", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, storeError("list products", err)
	}

	result.Pagination = pagination.Compute(result.TotalItems, params.Page, params.Limit)
	return result, nil
}
