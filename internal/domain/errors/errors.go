package errors

import (
	"net/http"

	"vesselwatch/internal/errors"
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

// Is matches errors by business code so copies made by WithDetails still match their sentinel
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// Predefined error types
var (
	// Ship-related errors
	ErrShipNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIP_NOT_FOUND",
		"Ship not found",
		"",
	)

	ErrShipInactive = NewBaseError(
		http.StatusConflict,
		"SHIP_INACTIVE",
		"Ship is deregistered and is not evaluated",
		"",
	)

	// Position-related errors
	ErrInvalidPosition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POSITION",
		"Position sample has an invalid coordinate or timestamp",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED",
		"Failed to create notification",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Notification cannot move to the requested status",
		"",
	)

	ErrNotificationTerminal = NewBaseError(
		http.StatusConflict,
		"NOTIFICATION_TERMINAL",
		"Notification is in a terminal status",
		"",
	)

	ErrChainLinkExists = NewBaseError(
		http.StatusConflict,
		"CHAIN_LINK_EXISTS",
		"Notification already has a follow-up",
		"",
	)

	ErrChainCycle = NewBaseError(
		http.StatusConflict,
		"CHAIN_CYCLE",
		"Follow-up would create a cycle in the notification chain",
		"",
	)

	// Notification type-related errors
	ErrNotificationTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_TYPE_NOT_FOUND",
		"Notification type not found",
		"",
	)

	ErrNotificationTypeCodeExists = NewBaseError(
		http.StatusConflict,
		"NOTIFICATION_TYPE_CODE_EXISTS",
		"A notification type with this code already exists",
		"",
	)

	ErrInvalidTemplate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TEMPLATE",
		"Notification template cannot be parsed",
		"",
	)

	// Border-related errors
	ErrBorderPointNotFound = NewBaseError(
		http.StatusNotFound,
		"BORDER_POINT_NOT_FOUND",
		"Border point not found",
		"",
	)

	ErrBorderImportFailed = NewBaseError(
		http.StatusBadRequest,
		"BORDER_IMPORT_FAILED",
		"Boundary file could not be imported",
		"",
	)

	// Tracking-related errors
	ErrTrackingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TRACKING_UNAVAILABLE",
		"Position source is not configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
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
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// Unwrap returns the underlying database error
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

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
