// Package errors defines the application error taxonomy. Every failure a
// use case can produce is one of these values (possibly wrapped with
// context), so the delivery layer can map errors to the wire envelope
// without inspecting message strings.
package errors

import (
	"net/http"

	"employeesys/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing envelope message
	Details() string   // Detail carried in the envelope data field (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing envelope message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches its predefined base value in errors.Is via Is below.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is lets detail-carrying copies match their predefined base value, so
// callers can test errors.Is(err, ErrValidation) regardless of detail.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types. The message strings are part of the public API
// contract and must not be reworded.
var (
	// Validation-related errors (400). Most carry their case-specific text
	// in Details via WithDetails; the envelope message stays "Validation Error".
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation Error",
		"",
	)

	// Login failures carry their text as the envelope message itself.
	ErrEmailNotExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_EXISTS",
		"Email not exists",
		"",
	)

	ErrPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_INCORRECT",
		"Password is incorrect",
		"",
	)

	// Authorization-related errors (401). Guards normally respond directly,
	// but use cases that detect a dead session surface this value.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Current authorization token has expired",
		"",
	)

	// Resource errors (404). No detail is leaked for missing or malformed ids.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"404 Not Found",
		"",
	)

	// Infrastructure errors (500).
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"500 Server Error",
		"",
	)

	ErrMailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_SEND_FAILED",
		"500 Server Error",
		"failed to send confirmation e-mail",
	)
)

// DatabaseExecuteError represents a store execution error, implementing the
// AppError interface. It wraps the driver error without exposing it on the wire.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing envelope message
func (e *DatabaseExecuteError) Message() string {
	return "500 Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
