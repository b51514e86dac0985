// Package apierror provides the typed errors that services return to handlers.
// The ErrorHandler middleware is the only place that turns them into HTTP
// responses, so status codes and client-facing messages live here.
package apierror

import (
	"net/http"
	"strings"
)

// AppError is a business failure with an HTTP status and a message that is
// safe to show to clients verbatim.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func New(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}

func BadRequest(msg string) *AppError   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *AppError { return New(http.StatusUnauthorized, msg) }
func NotFound(msg string) *AppError     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *AppError     { return New(http.StatusConflict, msg) }

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError wraps every field error found in a request, not only the first.
type ValidationError struct {
	Fields []FieldError
}

func NewValidation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MalformedBodyError marks a request body that could not be decoded as JSON.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string { return "malformed JSON body: " + e.Err.Error() }
func (e *MalformedBodyError) Unwrap() error { return e.Err }
