package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores users in memory and is safe for concurrent use.
// The id counter and the map are guarded by the same lock so two
// concurrent Creates can never be allocated the same id.
type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[int64]User
	nextID int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[int64]User), nextID: 1}
}

// Create allocates a fresh id, stamps the creation time and stores the
// fully-formed user. Returns ErrEmailTaken if the email is already in use.
func (r *MemoryRepo) Create(ctx context.Context, fields NewUser) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == fields.Email {
			return User{}, ErrEmailTaken
		}
	}
	user := User{
		ID:           r.nextID,
		Email:        fields.Email,
		Name:         fields.Name,
		PasswordHash: fields.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.users[user.ID] = user
	return user, nil
}

// GetByID returns the user with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// GetByEmail returns the first user with a matching email. Emails are
// compared case-sensitively, as stored.
func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
