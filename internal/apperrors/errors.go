// Package apperrors defines the typed failures handlers hand to the error
// boundary, and the HTTP status each kind maps to.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError.
type Kind string

const (
	KindValidation      Kind = "VALIDATION_ERROR"
	KindNotAcknowledged Kind = "WRITE_NOT_ACKNOWLEDGED"
	KindInternal        Kind = "SERVER_ERROR"
	KindUnavailable     Kind = "SERVICE_UNAVAILABLE"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a failure with a client-facing message. Err holds the
// underlying cause and is only ever logged.
type AppError struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus returns the response status for the error's kind.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports malformed client input. Field details are returned to the caller.
func Validation(message string, fields ...FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// NotAcknowledged reports a write the store accepted but did not confirm.
func NotAcknowledged(message string, err error) *AppError {
	return &AppError{Kind: KindNotAcknowledged, Message: message, Err: err}
}

// Internal wraps an unexpected failure behind a generic message.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// Unavailable reports a failed liveness dependency.
func Unavailable(message string, err error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message, Err: err}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
