package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/comdominio/dashboard/internal/backend"
	"github.com/comdominio/dashboard/internal/domain"
)

// ErrorDetail is the code and message of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// requestError writes a 400 for a request rejected before reaching the
// service layer (e.g. malformed body or path parameter).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", message))
}

// writeError maps a service error onto a status code and error body.
// notFound is the message used for domain.ErrNotFound, because the handler
// is the layer that knows what was being looked up.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", unwrapMessage(err, domain.ErrValidation)))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", notFound))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict", unwrapMessage(err, domain.ErrConflict)))
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized", "invalid or missing credentials"))
	case errors.Is(err, domain.ErrUpstream):
		s.log.WarnContext(r.Context(), "upstream failure", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, errorBody("upstream_error", "the maintenance backend is unavailable"))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.MaintenanceService.Create: validation error: name is required" → "name is required".
// Errors reported by the backend carry their message in backend.StatusError.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	var se *backend.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return sentinel.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into dst. It writes the error response
// itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("too_large", "request body too large"))
	case errors.Is(err, io.EOF):
		requestError(w, "request body is required")
	default:
		requestError(w, "malformed JSON body")
	}
	return false
}
