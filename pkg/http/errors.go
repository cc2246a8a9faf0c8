package http

import (
	"fmt"
	"net/http"
)

// AppError represents application-level error with HTTP status.
// Only Message reaches the client; Err is kept for logs.
type AppError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(message string, status int) *AppError {
	return &AppError{
		Message: message,
		Status:  status,
	}
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError(message, http.StatusInternalServerError)
}
