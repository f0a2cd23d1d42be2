package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrDuplicateAdmissionNo indicates another student already holds the admission number.
	ErrDuplicateAdmissionNo = errors.New("admission number already exists")
	// ErrDuplicateTermName indicates another term already uses the name.
	ErrDuplicateTermName = errors.New("term name already exists")
	// ErrStudentNotFound indicates the referenced student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrTermNotFound indicates the referenced term does not exist.
	ErrTermNotFound = errors.New("term not found")
	// ErrPaymentNotFound indicates the payment, or the student or term it belongs to, does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
)

// ValidationError reports rejected input. Message is safe to show to the user.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(message string, err error) error {
	return &ValidationError{Message: message, Err: err}
}

// IsValidationError reports whether err was caused by rejected input.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
