// Package apperrors carries request failures as typed values through the
// service layer. Handlers never pick status codes themselves; the fiber
// error handler maps each kind to its HTTP status exactly once.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an Error into the failure taxonomy.
type Kind int

const (
	// KindValidation marks missing or malformed input fields.
	KindValidation Kind = iota
	// KindAuth marks missing, invalid or expired credentials.
	KindAuth
	// KindForbidden marks entities that exist but belong to another user.
	KindForbidden
	// KindNotFound marks referenced entities that do not exist.
	KindNotFound
	// KindConflict marks uniqueness violations.
	KindConflict
	// KindInternal marks unexpected failures.
	KindInternal
)

// Status returns the HTTP status code for the kind. Auth failures map to
// 400 to match the historical API contract.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindAuth, KindConflict:
		return fiber.StatusBadRequest
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Error is a request failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a 400 validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth returns a 400 authentication error.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Forbidden returns a 403 ownership error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a 404 error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a 400 uniqueness-violation error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// StatusOf reports the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Status()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
