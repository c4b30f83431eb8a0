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
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance is returned when a debit exceeds the ledger balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrConfigurationAbsent indicates a required configuration row has not been set up.
var ErrConfigurationAbsent = errors.New("configuration absent")

var ErrUnauthorized = errors.New("unauthorized")

// FieldError is a validation failure attached to a single input field.
// It always matches ErrValidation, and additionally matches Cause when set.
type FieldError struct {
	Field   string
	Message string
	Cause   error
}

// NewFieldError creates a validation error for the given field.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// AsFieldError extracts a FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AppError carries an HTTP-ish status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
