package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wavefall/leaderboard-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidPlayerKey     = "INVALID_PLAYER_KEY"
	CodeInvalidSessionRecord = "INVALID_SESSION_RECORD"
	CodeNameTaken            = "NAME_TAKEN"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeStorageTimeout       = "STORAGE_TIMEOUT"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError.
// Storage details never reach the payload: anything unrecognized collapses to
// a generic 500.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: "Player name is required"}}
	case errors.Is(err, model.ErrNameTooLong):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: "Player name is too long"}}
	case errors.Is(err, model.ErrNameReserved):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: "Player name uses a reserved format"}}
	case errors.Is(err, model.ErrInvalidPlayerKey):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidPlayerKey, Message: "Invalid player identifier"}}
	case errors.Is(err, model.ErrInvalidSessionRecord):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidSessionRecord, Message: "wave, score and playtime must be non-negative integers"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{Code: CodeNameTaken, Message: "Player name already taken"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodePlayerNotFound, Message: "Player not found"}}
	case errors.Is(err, context.DeadlineExceeded):
		return &httpError{http.StatusGatewayTimeout, APIError{Code: CodeStorageTimeout, Message: "Storage operation timed out"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error with details
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: "Invalid request", Details: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
