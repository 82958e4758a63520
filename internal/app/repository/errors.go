package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the addressed row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput is the parent of every FieldError
	ErrInvalidInput = errors.New("invalid input")
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
