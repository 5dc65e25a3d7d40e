package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates that user-entered amount text does not parse to a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrMissingRequiredField indicates that a required field (category, account, ...) was not supplied.
var ErrMissingRequiredField = errors.New("missing required field")

// ErrStoreUnavailable indicates that the transaction store could not be reached.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrStoreRejected indicates that the transaction store refused a write.
var ErrStoreRejected = errors.New("store rejected the request")

// ErrStaleProjection indicates that a promote/dismiss targeted an occurrence whose parent
// no longer carries the matching next date. Callers treat it as a no-op success.
var ErrStaleProjection = errors.New("stale projection")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrFeatureDisabled indicates that an optional integration (auto add, events) is not configured.
var ErrFeatureDisabled = errors.New("feature not configured")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
