// Package domainerror defines the error kinds shared by the pricing core
// and the checkout flow.
//
// Every failure belongs to exactly one kind. The kind is matched with
// errors.Is, and the message (Error()) is the human-readable reason shown
// to API clients.
package domainerror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the kind of every validation failure. It is raised
	// before any monetary computation and is never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBusinessConflict is the kind of failures caused by the state of
	// external systems: stock unavailable, payment declined, stock deduction failed.
	ErrBusinessConflict = errors.New("business conflict")
)

// Error is a failure of a given kind with a precise message.
type Error struct {
	// Kind is ErrInvalidInput or ErrBusinessConflict.
	Kind error

	// Message is the exact human-readable reason.
	Message string
}

// Error implements the error interface. It returns the message alone so
// clients and tests see exactly the reason.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the kind so errors.Is(err, ErrInvalidInput) works.
func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidInput builds an ErrInvalidInput failure.
//
// Parameters:
//   - format: fmt-style message
//   - args: format arguments
//
// Returns:
//   - error: the invalid input error
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds an ErrBusinessConflict failure.
//
// Parameters:
//   - message: the failure reason
//
// Returns:
//   - error: the business conflict error
func Conflict(message string) error {
	return &Error{Kind: ErrBusinessConflict, Message: message}
}

// IsInvalidInput checks if the error is an invalid input failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if the error is a business conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrBusinessConflict)
}
