// Package errors defines the error taxonomy of the account domain.
// Every failure surfaced by a use case is an AppError carrying a Kind, a fixed
// machine-checkable code and a human message. Transport status codes are
// derived from the Kind at the delivery boundary only.
package errors

import (
	"account/internal/errors"
)

// Kind classifies an AppError independently of any transport.
type Kind uint8

const (
	KindInternal Kind = iota
	KindConflict
	KindNotFound
	KindUnauthorized
	KindBadRequest
	KindValidation
)

var kindNames = map[Kind]string{
	KindInternal:     "internal",
	KindConflict:     "conflict",
	KindNotFound:     "not_found",
	KindUnauthorized: "unauthorized",
	KindBadRequest:   "bad_request",
	KindValidation:   "validation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Is matches any BaseError with the same code, so a copy produced by
// WithDetails still satisfies errors.Is against the predefined value.
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

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		"USER_ALREADY_EXISTS",
		"user already exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		KindInternal,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		KindInternal,
		"USER_UPDATE_FAILED",
		"failed to update user",
		"",
	)

	// Credential-related errors. Login and password change report a wrong
	// password with different kinds; API clients depend on the distinction.
	ErrUserPasswordWrong = NewBaseError(
		KindUnauthorized,
		"USER_PASSWORD_WRONG",
		"user password is wrong",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindBadRequest,
		"PASSWORD_MISMATCH",
		"wrong password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Token-related errors
	ErrTokenCreationFailed = NewBaseError(
		KindInternal,
		"TOKEN_CREATION_FAILED",
		"token creation failed",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		KindUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		KindUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal server error",
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

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
