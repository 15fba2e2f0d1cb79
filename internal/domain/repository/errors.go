package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when creating a user with an email
	// that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
