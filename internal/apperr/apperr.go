// Package apperr defines the error kinds surfaced by the ledger core.
//
// Domain packages declare their own sentinels wrapping one of these kinds, so a
// caller can match either the precise condition (user.ErrUserNotFound) or the
// class of failure (apperr.ErrNotFound).
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
	ErrInvalid      = errors.New("invalid input")
)

// New returns a sentinel carrying message that matches kind under errors.Is.
func New(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// Unavailable marks a storage failure. Nil stays nil, and errors that already
// carry a kind are returned untouched.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Kind reports which kind err belongs to, or nil when it carries none.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrForbidden, ErrConflict, ErrUnauthorized, ErrInvalid, ErrUnavailable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string {
	return e.message
}

func (e *kindError) Unwrap() error {
	return e.kind
}
