package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidFieldError reports a request field that could not be converted into a
// domain value. It matches ErrInvalidInput under errors.Is.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidInput
}
