package service

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/shopfront/catalog-api/internal/models"
)

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.(*models.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSearchRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error) {
	args := m.Called(ctx, params)
	if res := args.Get(0); res != nil {
		return res.(*models.ListProductsResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Store(ctx context.Context, data []byte, name string) (string, error) {
	args := m.Called(ctx, data, name)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	args := m.Called(ctx, name, email, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, req *models.UpdateUserRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var errPasswordMismatch = errors.New("mismatch")

// plainHasher stands in for bcrypt in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errPasswordMismatch
	}
	return nil
}

// countingHasher records how often a password comparison ran.
type countingHasher struct {
	plainHasher
	compares int
}

func (h *countingHasher) Compare(hash, password string) error {
	h.compares++
	return h.plainHasher.Compare(hash, password)
}

type staticIssuer struct{}

func (staticIssuer) Issue(userID int64, email string) (string, error) {
	return "token-for-" + email, nil
}
