// Package response writes the worker's JSON envelopes.
package response

import (
	"net/http"

	deliverycontext "poolscout/internal/delivery/context"
	domainerrors "poolscout/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are withheld for 5xx errors.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError returns a 400 for a body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationError returns a 422 for a decoded body that failed validation.
func ValidationError(c echo.Context, details any) error {
	return Error(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "request failed validation", details)
}

// AppError converts any error into an error response.
func AppError(c echo.Context, err error) error {
	status, info := domainerrors.ToErrorInfo(err)

	return Error(c, status, info.Code, info.Message, info.Details)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
