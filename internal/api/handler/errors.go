package handler

import (
	"net/http"

	"github.com/mcoot/boardnight/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest   = apierr.CodeInvalidRequest
	CodeValidationFailed = apierr.CodeValidationFailed
	CodePlayerNotFound   = apierr.CodePlayerNotFound
	CodeGameNotFound     = apierr.CodeGameNotFound
	CodeSessionNotFound  = apierr.CodeSessionNotFound
	CodeNotFound         = apierr.CodeNotFound
	CodeNameTaken        = apierr.CodeNameTaken
	CodePlayerInUse      = apierr.CodePlayerInUse
	CodeGameInUse        = apierr.CodeGameInUse
	CodeAlreadyCompleted = apierr.CodeAlreadyCompleted
	CodeConflict         = apierr.CodeConflict
	CodeInternalError    = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
