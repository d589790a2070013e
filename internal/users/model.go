package users

import "time"

// User is a registered account. PasswordHash is opaque to this package;
// only the auth layer knows how to produce or verify it.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser carries the caller-supplied fields for Create. The id and
// creation timestamp are allocated by the repository.
type NewUser struct {
	Email        string
	Name         string
	PasswordHash string
}
