package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumebuilder-backend/internal/sessions"
	"resumebuilder-backend/internal/shared/metrics"
	"resumebuilder-backend/internal/users"
)

// ErrInvalidCredentials indicates a failed login. Unknown emails and
// wrong passwords are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service implements password authentication on top of the users
// repository and the session registry.
type Service struct {
	Users      *users.Service
	Registry   sessions.Registry
	SessionTTL time.Duration
}

// NewService constructs a Service.
func NewService(userSvc *users.Service, registry sessions.Registry, ttl time.Duration) *Service {
	return &Service{Users: userSvc, Registry: registry, SessionTTL: ttl}
}

// Register creates the account and opens a session for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (users.User, string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return users.User{}, "", err
	}
	user, err := s.Users.Create(ctx, users.NewUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		return users.User{}, "", err
	}
	return user, s.openSession(user.ID), nil
}

// Login verifies the credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, "", ErrInvalidCredentials
		}
		return users.User{}, "", fmt.Errorf("lookup user: %w", err)
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return users.User{}, "", ErrInvalidCredentials
	}
	return user, s.openSession(user.ID), nil
}

// LoginExternal opens a session for an identity already verified by an
// external provider, creating the account on first login.
func (s *Service) LoginExternal(ctx context.Context, name, email string) (users.User, string, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		// No usable password; an unguessable hash keeps the password
		// login path closed for this account.
		hash, hashErr := HashPassword(uuid.NewString())
		if hashErr != nil {
			return users.User{}, "", hashErr
		}
		user, err = s.Users.Create(ctx, users.NewUser{
			Email:        email,
			Name:         name,
			PasswordHash: hash,
		})
	}
	if err != nil {
		return users.User{}, "", err
	}
	return user, s.openSession(user.ID), nil
}

// Logout closes the session. Closing an absent session is a no-op.
func (s *Service) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	s.Registry.Delete(sessionID)
}

func (s *Service) openSession(userID int64) string {
	token := uuid.NewString()
	s.Registry.Put(token, userID, s.SessionTTL)
	metrics.IncSessionsOpened()
	return token
}
