package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("project not found")
	ErrForbidden       = errors.New("not the project owner")
	ErrUnauthenticated = errors.New("no authenticated user")
)

// ValidationError names the field a request got wrong.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
