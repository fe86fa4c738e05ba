package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopfront/catalog-api/internal/auth"
	"github.com/shopfront/catalog-api/internal/models"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest, image *models.ImageUpload) (*models.Product, error) {
	args := m.Called(ctx, req, image)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductService) ListProducts(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error) {
	args := m.Called(ctx, params)
	if res := args.Get(0); res != nil {
		return res.(*models.ListProductsResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*models.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSearchService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// stubVerifier accepts exactly one token.
type stubVerifier struct {
	token string
}

func (v stubVerifier) Verify(token string) (*auth.Identity, error) {
	if token != v.token {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UserID: 1, Email: "ada@example.com"}, nil
}
