// Package response builds the JSON envelopes returned by the management API.
package response

import (
	"net/http"

	deliverycontext "vtpgate/internal/delivery/context"
	domainerrors "vtpgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes a successful response wrapping data in the standard envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error writes an error response in the standard envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// BindingError reports a request body that could not be bound.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequest reports an invalid request.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized reports a missing or invalid operator token.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden reports insufficient operator permissions.
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound reports a missing resource.
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError reports an unexpected failure.
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
