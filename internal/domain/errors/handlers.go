package errors

import (
	"net/http"

	"poolscout/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "GEOCODE_QUOTA_EXCEEDED"
	Message string `json:"message"`           // Operator-facing error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ToErrorInfo converts any error to an ErrorInfo, falling back to an
// internal error code for errors outside the AppError taxonomy.
func ToErrorInfo(err error) (int, *ErrorInfo) {
	var appErr AppError
	if errors.As(err, &appErr) {
		info := &ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
		if d := appErr.Details(); d != "" {
			info.Details = d
		}

		return appErr.HTTPCode(), info
	}

	return http.StatusInternalServerError, &ErrorInfo{Code: "INTERNAL_ERROR", Message: err.Error()}
}
