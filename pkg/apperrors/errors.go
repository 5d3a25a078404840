package apperrors

import (
	"fmt"
	"net/http"
)

// Kind names a failure category. The kind string is what clients see
// in the `error` field of the wire envelope.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindConflict   Kind = "Conflict"
	KindNotFound   Kind = "NotFound"
	KindStore      Kind = "StoreError"
)

// AppError represents an application error
type AppError struct {
	Kind    Kind   `json:"error"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the failure kind onto an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Store(message string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Err: err}
}
