package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/boardnight/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeNameTaken        = "NAME_TAKEN"
	CodePlayerInUse      = "PLAYER_IN_USE"
	CodeGameInUse        = "GAME_IN_USE"
	CodeAlreadyCompleted = "ALREADY_COMPLETED"
	CodeConflict         = "CONFLICT"
	CodeInternalError    = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for pre-built HTTP errors
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Specific domain errors get specific codes
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPlayerNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "A player with that name already exists"}}
	case errors.Is(err, model.ErrPlayerInSessions):
		return &httpError{http.StatusConflict, APIError{CodePlayerInUse, "Player is used in sessions; delete or edit those sessions first"}}
	case errors.Is(err, model.ErrGameInSessions):
		return &httpError{http.StatusConflict, APIError{CodeGameInUse, "Game is used in sessions; delete those sessions first"}}
	case errors.Is(err, model.ErrSessionCompleted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyCompleted, "Results were already recorded for this session"}}
	}

	// Remaining domain errors map by kind
	switch {
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, err.Error()}}
	case errors.Is(err, model.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, err.Error()}}
	case errors.Is(err, model.ErrConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
