package errors

import (
	"net/http"

	"poolscout/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Operator-facing error message
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
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

// Message returns the operator-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is because Is compares error codes.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Input-related errors. Fatal for the stage that sees them.
	ErrMalformedInput = NewBaseError(
		http.StatusUnprocessableEntity,
		"MALFORMED_INPUT",
		"input batch is missing a required field",
		"",
	)

	ErrInvalidPolygon = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_POLYGON",
		"search polygon could not be parsed",
		"",
	)

	ErrUnknownPipeline = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_PIPELINE",
		"no pipeline registered under that name",
		"",
	)

	// Geocoding-related errors
	ErrQuotaExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"GEOCODE_QUOTA_EXCEEDED",
		"geocoding provider quota or rate limit exhausted",
		"",
	)

	ErrGeocodeNoResult = NewBaseError(
		http.StatusNotFound,
		"GEOCODE_NO_RESULT",
		"geocoding provider returned no result",
		"",
	)

	ErrGeocodeFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_FAILED",
		"geocoding request failed",
		"",
	)

	// Upstream-related errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"upstream data source unavailable",
		"",
	)

	// Run-related errors
	ErrRunInProgress = NewBaseError(
		http.StatusConflict,
		"RUN_IN_PROGRESS",
		"a run of this pipeline is already in progress",
		"",
	)

	ErrRunNotFound = NewBaseError(
		http.StatusNotFound,
		"RUN_NOT_FOUND",
		"no run summary recorded for this pipeline",
		"",
	)

	ErrPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSIST_FAILED",
		"failed to persist pipeline output",
		"",
	)
)
