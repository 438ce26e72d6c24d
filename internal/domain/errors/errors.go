package errors

import (
	"net/http"

	"languagebot/internal/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	// Identity and session errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"The identity token could not be verified",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	// Credential errors
	ErrNoCredential = NewBaseError(
		http.StatusBadRequest,
		"NO_CREDENTIAL",
		"No API key configured. Save your API key before starting a conversation",
		"",
	)

	ErrCredentialNotFound = NewBaseError(
		http.StatusNotFound,
		"CREDENTIAL_NOT_FOUND",
		"No API key stored for this account",
		"",
	)

	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_ERROR",
		"Credential storage failure",
		"",
	)

	ErrDecryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"DECRYPTION_FAILED",
		"Stored credential could not be decrypted",
		"",
	)

	// Gateway errors
	ErrInvalidUpstreamPath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UPSTREAM_PATH",
		"The requested upstream path is not allowed",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"The upstream service could not be reached",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// StorageError represents a vault or database failure, implementing the AppError interface.
// It matches ErrStorage and still exposes its cause to errors.Is/As.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "credential storage failed").Error()
}

// Unwrap returns the underlying cause
func (e *StorageError) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrStorage
func (e *StorageError) Is(target error) bool {
	return errors.Is(ErrStorage, target)
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return ErrStorage.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return ErrStorage.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return ErrStorage.Message()
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// UpstreamError represents a transport failure towards the upstream service.
// The cause is kept for server-side logging only.
type UpstreamError struct {
	err error
}

// NewUpstreamError creates an upstream transport error
func NewUpstreamError(err error) AppError {
	return &UpstreamError{err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, "upstream request failed").Error()
}

// Unwrap returns the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrUpstreamUnavailable
func (e *UpstreamError) Is(target error) bool {
	return errors.Is(ErrUpstreamUnavailable, target)
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return ErrUpstreamUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return ErrUpstreamUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return ErrUpstreamUnavailable.Message()
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return ""
}
