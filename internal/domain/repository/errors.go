package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert violates the email
	// uniqueness constraint. Uniqueness is enforced by the store itself,
	// not by a check-then-insert.
	ErrDuplicateEmail = errors.New("email already registered")
)
