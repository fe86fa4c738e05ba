package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/shopfront/catalog-api/internal/apperrors"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

// Responder writes error envelopes. Raw error text is only exposed when
// diagnostics are on.
type Responder struct {
	diagnostics bool
}

func NewResponder(diagnostics bool) *Responder {
	return &Responder{diagnostics: diagnostics}
}

func (rs *Responder) renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, message, param string, fields []apperrors.FieldError) {
	canonlog.AddRequestError(r.Context(), err)

	var detail string
	if rs.diagnostics && err != nil {
		detail = err.Error()
	}

	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, sanitizedMessage, param, fields, detail))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 {
		return "An internal error occurred"
	}

	return message
}

func (rs *Responder) BadRequest(w http.ResponseWriter, r *http.Request, err error, message, param string) {
	rs.renderError(w, r, http.StatusBadRequest, err, message, param, nil)
}

func (rs *Responder) ValidationFailed(w http.ResponseWriter, r *http.Request, err *apperrors.ValidationError) {
	message := "validation failed"
	if len(err.Fields) == 1 {
		message = err.Fields[0].Message
	}
	rs.renderError(w, r, http.StatusBadRequest, err, message, err.Field, err.Fields)
}

func (rs *Responder) Unauthorized(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusUnauthorized, err, message, "", nil)
}

func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusNotFound, err, message, "", nil)
}

func (rs *Responder) ConflictError(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusConflict, err, message, "", nil)
}

func (rs *Responder) InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusInternalServerError, err, message, "", nil)
}

func (rs *Responder) ServiceUnavailable(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusServiceUnavailable, err, message, "", nil)
}

func (rs *Responder) GatewayTimeout(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.renderError(w, r, http.StatusGatewayTimeout, err, message, "", nil)
}
