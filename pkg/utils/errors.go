package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Services return them wrapped in *AppError, the HTTP boundary
// maps each kind to one status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
)

type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is matches the kind as well as the wrapped cause.
func (e *AppError) Is(target error) bool {
	return e.Kind == target
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) error {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) error {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &AppError{Kind: ErrForbidden, Message: message}
}

func Conflict(format string, args ...any) error {
	return &AppError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Invalid(message string, err error) error {
	return &AppError{Kind: ErrInvalid, Message: message, Err: err}
}
