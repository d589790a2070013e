package resumes

import "errors"

var (
	// ErrNotFound indicates no resume matches the requested id.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
