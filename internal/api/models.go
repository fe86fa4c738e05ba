package api

import (
	"time"

	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the request body for creating a product.
// Multipart requests carry the same fields as form values plus an image file.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Description   *string          `json:"description" validate:"omitempty,max=1000"`
	Price         *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Category      *string          `json:"category" validate:"omitempty,max=50"`
	StockQuantity int              `json:"stock_quantity" validate:"gte=0"`
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       *string         `json:"category"`
	StockQuantity  int             `json:"stock_quantity"`
	ImageURL       *string         `json:"image_url"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
	RelevanceScore *float64        `json:"relevance_score,omitempty"`
}

// CreateProductResponse is returned by POST /products.
type CreateProductResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    ProductResponse `json:"data"`
}

// ListProductsParams are the paging parameters of GET /products.
type ListProductsParams struct {
	Page  int `query:"page" validate:"min=1,max=1000"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// UserRequest is the body of POST /users and POST /auth/register.
// @Description Request payload for creating a user
type UserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
// @Description Request payload for updating a user
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the body of POST /auth/login.
// @Description Credentials exchanged for a bearer token
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse never carries the password hash.
// @Description User resource
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageResponse acknowledges user and auth writes.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func convertToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Category:       product.Category,
		StockQuantity:  product.StockQuantity,
		ImageURL:       product.ImageURL,
		CreatedAt:      product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      product.UpdatedAt.Format(time.RFC3339),
		RelevanceScore: product.RelevanceScore,
	}
}

func convertToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
