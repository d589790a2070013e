package users

import "errors"

var (
	// ErrNotFound indicates no user matches the requested id or email.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")
)
