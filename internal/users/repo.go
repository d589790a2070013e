package users

import "context"

// Repo defines persistence operations for users. Implementations
// allocate ids monotonically starting at 1 and never reuse them. Users
// are created exactly once; there is no update or delete operation.
type Repo interface {
	Create(ctx context.Context, fields NewUser) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
