package handler

import (
	"net/http"

	"github.com/wavefall/leaderboard-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeInvalidPlayerKey     = apierr.CodeInvalidPlayerKey
	CodeInvalidSessionRecord = apierr.CodeInvalidSessionRecord
	CodeNameTaken            = apierr.CodeNameTaken
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeStorageTimeout       = apierr.CodeStorageTimeout
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
