package users

import (
	"context"
	"errors"
	"strings"
)

// Service validates inputs before delegating to the repository.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create persists a new account. Email and name are required; the
// password hash is treated as an opaque string.
func (s *Service) Create(ctx context.Context, fields NewUser) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(fields.Email) == "" {
		return User{}, errors.New("email is required")
	}
	if strings.TrimSpace(fields.Name) == "" {
		return User{}, errors.New("name is required")
	}
	return s.Repo.Create(ctx, fields)
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// GetByEmail returns the first user with a matching email.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(email) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByEmail(ctx, email)
}
