package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/railkit/railsignal/pkg/errors"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// respondJSON writes v as a JSON response with the given status.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// respondError maps an application error to an HTTP status and writes the
// error body. Internal details are logged but not exposed to clients.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()))
	}

	s.respondJSON(w, status, errorResponse{
		Error:     apperrors.UserMessage(err),
		Code:      string(code),
		RequestID: RequestID(r.Context()),
	})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidNode,
		apperrors.ErrCodeInvalidEdge,
		apperrors.ErrCodeInvalidRole,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidDistance,
		apperrors.ErrCodeInvalidRailML,
		apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeNodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
