package api

import (
	"encoding/json"
	"net/http"

	"github.com/nhalm/canonlog"
	"github.com/shopfront/catalog-api/internal/models"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	userID, err := h.userSvc.CreateUser(r.Context(), &models.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"created_user_id": userID,
	})

	Created(w, MessageResponse{Message: "User created", ID: userID})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = convertToUserResponse(u)
	}

	Success(w, responses)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Success(w, convertToUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.userSvc.UpdateUser(r.Context(), &models.UpdateUserRequest{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Success(w, MessageResponse{Message: "User updated"})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.userSvc.DeleteUser(r.Context(), userID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Success(w, MessageResponse{Message: "User deleted"})
}
