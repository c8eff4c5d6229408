package errors

import (
	"net/http"

	"vtpgate/internal/errors"
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
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"carrier account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"a carrier account with this username already exists",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_INACTIVE",
		"carrier account is not active",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"carrier account has no username or password configured",
		"",
	)

	// Token-related errors
	ErrTokenRefreshFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_REFRESH_FAILED",
		"failed to obtain a carrier API token",
		"",
	)

	ErrTokenUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TOKEN_UNAVAILABLE",
		"no usable carrier API token and refresh is in progress elsewhere",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"carrier store not found",
		"",
	)

	ErrStoreAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_EXISTS",
		"this store is already registered for the account",
		"",
	)

	// Shipment-related errors
	ErrShipmentNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIPMENT_NOT_FOUND",
		"shipment not found",
		"",
	)

	ErrShipmentNotCancellable = NewBaseError(
		http.StatusConflict,
		"SHIPMENT_NOT_CANCELLABLE",
		"shipment is already in a final state",
		"",
	)

	ErrShipmentNotEditable = NewBaseError(
		http.StatusConflict,
		"SHIPMENT_NOT_EDITABLE",
		"shipment is already in a final state",
		"",
	)

	ErrUnknownOrderAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ORDER_ACTION",
		"order action is not one of the supported codes",
		"",
	)

	ErrUnknownOrder = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_ORDER",
		"no shipment or fulfillment matches this order number",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"status transition is not allowed",
		"",
	)

	// Carrier API errors
	ErrCarrierUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CARRIER_UNAVAILABLE",
		"carrier API did not respond successfully",
		"",
	)

	ErrPriceNotApplicable = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRICE_NOT_APPLICABLE",
		"the carrier does not serve this itinerary",
		"",
	)

	ErrPrintCodeUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PRINT_CODE_UNAVAILABLE",
		"carrier did not return a printing code",
		"",
	)

	// Webhook-related errors
	ErrWebhookTokenMismatch = NewBaseError(
		http.StatusUnauthorized,
		"WEBHOOK_TOKEN_MISMATCH",
		"webhook token does not match the account",
		"",
	)

	ErrMissingOrderNumber = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ORDER_NUMBER",
		"webhook event has no order number",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid operator credentials",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
