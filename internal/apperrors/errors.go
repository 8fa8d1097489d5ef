package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// For accounts this is the (owner, name) uniqueness violation.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownAccount indicates that a transaction referenced an account the owner does not have.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInvalidAmount indicates a negative or non-numeric amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnauthorized indicates missing or wrong credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrNotImplemented is returned by operations that exist in the API but are not supported yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrInternal is the fallback for infrastructure failures.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Repositories use it for infrastructure failures (begin/commit, scan errors).
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the cause so errors.Is keeps working through an AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}
