package api

import (
	"errors"
	"net/http"

	"github.com/shopfront/catalog-api/internal/apperrors"
)

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		h.resp.NotFound(w, r, err, notFoundErr.Error())
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		h.resp.ValidationFailed(w, r, validationErr)
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		h.resp.ConflictError(w, r, err, conflictErr.Error())
		return
	}

	var unauthorizedErr *apperrors.UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		h.resp.Unauthorized(w, r, err, unauthorizedErr.Error())
		return
	}

	var unavailableErr *apperrors.ServiceUnavailableError
	if errors.As(err, &unavailableErr) {
		h.resp.ServiceUnavailable(w, r, err, "service unavailable")
		return
	}

	var timeoutErr *apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		h.resp.GatewayTimeout(w, r, err, "request timed out")
		return
	}

	h.resp.InternalError(w, r, err, "internal server error")
}
