package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/auth"
	"github.com/shopfront/catalog-api/internal/models"
)

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest, image *models.ImageUpload) (*models.Product, error)
	GetProduct(ctx context.Context, productID int64) (*models.Product, error)
	ListProducts(ctx context.Context, params models.ListProductsParams) (*models.ListProductsResult, error)
}

type SearchService interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error)
	Categories(ctx context.Context) ([]string, error)
}

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (int64, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, req *models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
}

type AuthService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (int64, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// Services bundles the collaborators of a Handler.
type Services struct {
	Products ProductService
	Search   SearchService
	Users    UserService
	Auth     AuthService
	Tokens   TokenVerifier
}

type Handler struct {
	productSvc ProductService
	searchSvc  SearchService
	userSvc    UserService
	authSvc    AuthService
	tokens     TokenVerifier
	resp       *Responder
}

// NewHandler wires the HTTP handlers. diagnostics exposes raw error text in
// error responses and must be off in production.
func NewHandler(svc Services, diagnostics bool) *Handler {
	return &Handler{
		productSvc: svc.Products,
		searchSvc:  svc.Search,
		userSvc:    svc.Users,
		authSvc:    svc.Auth,
		tokens:     svc.Tokens,
		resp:       NewResponder(diagnostics),
	}
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError(name, "valid "+name+" is required")
	}
	return id, nil
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
