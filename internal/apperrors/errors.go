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

// ErrForbidden indicates that the acting user lacks authority for the requested transition.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates a command issued against a state that does not permit it.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrMissingClassification indicates numbering was attempted without a primary issue or classification.
var ErrMissingClassification = errors.New("missing classification")

// AppError wraps an infrastructure failure with a status code and a human readable message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the wrapped error so errors.Is keeps working through AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind returns the sentinel the error chain resolves to, or nil for unclassified errors.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrValidation,
		ErrMissingClassification,
		ErrForbidden,
		ErrInvalidTransition,
		ErrNotFound,
		ErrDuplicate,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
