// Package errors defines the application-level error taxonomy. Every modeled
// failure surfaces as one of these terminal errors; there is no retry and no
// partial application.
package errors

import (
	"net/http"

	"vhiem/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrUnauthenticated: no resolvable identity for an operation that requires one.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Not authenticated",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"Profile already exists",
		"",
	)

	// Content-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	// Social-graph errors
	ErrSelfFollow = NewBaseError(
		http.StatusBadRequest,
		"SELF_FOLLOW",
		"Cannot follow yourself",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Media-related errors
	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Media object not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
