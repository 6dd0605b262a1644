package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")

	// Business errors
	ErrEmailTaken          = errors.New("user already exists with this email")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrGigNotFound         = errors.New("gig not found")
	ErrAlreadyApplied      = errors.New("already applied to this gig")
	ErrAlreadyReviewed     = errors.New("already reviewed this person for this gig")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotGigOwner         = errors.New("only the gig poster can do this")
	ErrWorkerRoleRequired  = errors.New("only workers can do this")
)

// APIError represents a structured API error
type APIError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common API errors
func NotFound(resource string) *APIError {
	return NewAPIError("not_found", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func BadRequest(message string) *APIError {
	return NewAPIError("bad_request", message, http.StatusBadRequest)
}

func Conflict(message string) *APIError {
	return NewAPIError("conflict", message, http.StatusConflict)
}

func InternalError(message string) *APIError {
	return NewAPIError("internal_error", message, http.StatusInternalServerError)
}

func Unauthorized(message string) *APIError {
	return NewAPIError("unauthorized", message, http.StatusUnauthorized)
}

func Forbidden(message string) *APIError {
	return NewAPIError("forbidden", message, http.StatusForbidden)
}

func EmailTaken() *APIError {
	return NewAPIError("email_taken", "user already exists with this email", http.StatusBadRequest)
}

func InvalidCredentials() *APIError {
	return NewAPIError("invalid_credentials", "invalid email or password", http.StatusUnauthorized)
}

func AlreadyApplied() *APIError {
	return NewAPIError("already_applied", "you have already applied to this gig", http.StatusConflict)
}

func AlreadyReviewed() *APIError {
	return NewAPIError("already_reviewed", "you have already reviewed this person for this gig", http.StatusBadRequest)
}

func InvalidTransition(from, to string) *APIError {
	return NewAPIError("invalid_transition", fmt.Sprintf("cannot transition from %s to %s", from, to), http.StatusBadRequest)
}
