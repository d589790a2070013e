package resumes

import "context"

// Repo defines persistence operations for resumes. Ids are allocated
// monotonically starting at 1, independently of the users id space,
// and are never reused even after deletes.
//
// Delete removes the resume only if it exists and belongs to userID.
// "Not found" and "owned by someone else" are deliberately
// indistinguishable: both are silent no-ops so the store never reveals
// whether a record exists under another account.
type Repo interface {
	Create(ctx context.Context, fields NewResume) (Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
	Delete(ctx context.Context, id, userID int64) error
}
