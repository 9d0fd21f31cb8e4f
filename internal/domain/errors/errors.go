// Package errors defines the business errors PrintHub reports to clients. Each carries
// the HTTP status and the stable code used in the JSON error envelope.
package errors

import (
	"net/http"

	"printhub/internal/errors"
)

// AppError is an error with a client-facing status, code and message.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, never shown for 5xx, 401 or 403
}

// BaseError is the AppError used for every predefined business error.
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

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage wraps the error with a stack trace and an internal context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches another BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Sessions and accounts.
var (
	ErrUnauthenticated      = newError(http.StatusUnauthorized, "UNAUTHENTICATED", "Please sign in to continue")
	ErrInvalidCredentials   = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrRefreshTokenInvalid  = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrRefreshTokenExpired  = newError(http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "Refresh token has expired")
	ErrSessionLimitExceeded = newError(http.StatusTooManyRequests, "SESSION_LIMIT_EXCEEDED", "Maximum number of active sessions reached")
	ErrPasswordHashFailed   = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
	ErrPasswordStrength     = newError(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password is too short")
	ErrUserNotFound         = newError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists    = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrUserCreationFailed   = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrUserUpdateFailed     = newError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")
)

// Role resolution and route guarding.
var (
	ErrResolutionFailed    = newError(http.StatusInternalServerError, "RESOLUTION_FAILED", "Failed to verify user role")
	ErrAuthorizationDenied = newError(http.StatusForbidden, "AUTHORIZATION_DENIED", "You don't have permission to access this page")
	ErrForbidden           = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
)

// Orders, documents and shops.
var (
	ErrUploadFailed            = newError(http.StatusBadGateway, "UPLOAD_FAILED", "Failed to upload document")
	ErrInsertFailed            = newError(http.StatusInternalServerError, "INSERT_FAILED", "Failed to place order")
	ErrInvalidStatusTransition = newError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Order cannot move to the requested status")
	ErrOrderNotFound           = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrDocumentLinkFailed      = newError(http.StatusBadGateway, "DOCUMENT_LINK_FAILED", "Failed to create document link")
	ErrShopNotFound            = newError(http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
	ErrShopInactive            = newError(http.StatusConflict, "SHOP_INACTIVE", "This shop is not accepting orders")
)

// Input and generic conflicts.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrConflict         = newError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError reports a failed statement without leaking it to the client.
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
