package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres. Identity allocation is
// delegated to the users id sequence so concurrent creates never
// collide across processes.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a user and returns it with the allocated id and
// creation timestamp.
func (r *PGRepo) Create(ctx context.Context, fields NewUser) (User, error) {
	const query = `
INSERT INTO users (email, name, password_hash, created_at)
VALUES ($1, $2, $3, now())
RETURNING id, created_at`
	user := User{
		Email:        fields.Email,
		Name:         fields.Name,
		PasswordHash: fields.PasswordHash,
	}
	err := r.DB.QueryRowContext(ctx, query,
		fields.Email,
		fields.Name,
		fields.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return user, nil
}

// GetByID returns the user with the given id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (User, error) {
	const query = `
SELECT id, email, name, password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByEmail returns the first user with a matching email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, name, password_hash, created_at
FROM users
WHERE email = $1
ORDER BY id ASC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repo = (*PGRepo)(nil)
