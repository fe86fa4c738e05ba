package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/auth"
	"github.com/shopfront/catalog-api/internal/models"
)

// Register godoc
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body UserRequest true "Account"
// @Success 201 {object} MessageResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	userID, err := h.authSvc.Register(r.Context(), &models.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Created(w, MessageResponse{Message: "User registered successfully", ID: userID})
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	result, err := h.authSvc.Login(r.Context(), &models.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"user_id": result.User.ID,
	})

	Success(w, LoginResponse{Token: result.Token, Message: "Login successful"})
}

// Authenticate rejects requests without a valid bearer token and stores the
// caller's identity in the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			h.resp.Unauthorized(w, r, apperrors.NewUnauthorizedError("missing bearer token"), "authorization header is required")
			return
		}

		identity, err := h.tokens.Verify(token)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "token expired"
			}
			h.resp.Unauthorized(w, r, err, message)
			return
		}

		canonlog.AddRequestFields(r.Context(), map[string]any{
			"user_id": identity.UserID,
		})

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}
