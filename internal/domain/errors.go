package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for wizard transitions that carry no extra context.
var (
	ErrInvalidDimension = errors.New("seat grid dimensions must be at least 1x1")
	ErrNoSeatsSelected  = errors.New("no seats selected")
	ErrUnauthenticated  = errors.New("a logged-in user account is required")
)

// ValidationError covers generic input problems, including calling a
// wizard transition from the wrong stage.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidQueryError rejects a journey query (same source/destination,
// past date, missing field). The session stays on the search stage.
type InvalidQueryError struct {
	Field string
	Msg   string
}

func (e InvalidQueryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid journey query: %s %s", e.Field, e.Msg)
	}
	return "invalid journey query"
}

// UnknownSeatError is returned when a toggled seat code is not part of
// the selected bus layout.
type UnknownSeatError struct {
	Code string
}

func (e UnknownSeatError) Error() string {
	return fmt.Sprintf("seat %q is not in the current bus layout", e.Code)
}

// IncompleteDetailsError names the first empty passenger field found
// at confirmation time.
type IncompleteDetailsError struct {
	Field string
}

func (e IncompleteDetailsError) Error() string {
	return fmt.Sprintf("passenger %s is required", e.Field)
}

// NotFoundError mirrors repository lookups that come up empty.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ConflictError signals unique-key style collisions (e.g. duplicate
// username on registration).
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed gateway call. The booking is not
// recorded and the session stage is left unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persistence failure during %s", e.Op)
	}
	return "persistence failure"
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidQuery(err error) bool {
	var target InvalidQueryError
	return errors.As(err, &target)
}

func IsUnknownSeat(err error) bool {
	var target UnknownSeatError
	return errors.As(err, &target)
}

func IsIncompleteDetails(err error) bool {
	var target IncompleteDetailsError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}
