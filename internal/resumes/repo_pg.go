package resumes

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres. Identity allocation is
// delegated to the resumes id sequence.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume and returns it with the allocated id and
// creation timestamp.
func (r *PGRepo) Create(ctx context.Context, fields NewResume) (Resume, error) {
	const query = `
INSERT INTO resumes (user_id, title, content, prompt, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING id, created_at`
	resume := Resume{
		UserID:  fields.UserID,
		Title:   fields.Title,
		Content: fields.Content,
		Prompt:  fields.Prompt,
	}
	err := r.DB.QueryRowContext(ctx, query,
		fields.UserID,
		fields.Title,
		fields.Content,
		fields.Prompt,
	).Scan(&resume.ID, &resume.CreatedAt)
	if err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser returns the resumes owned by userID in insertion order.
// The resumes table carries an index on user_id to keep this
// sub-linear.
func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	const query = `
SELECT id, user_id, title, content, prompt, created_at
FROM resumes
WHERE user_id = $1
ORDER BY id ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Title,
			&resume.Content,
			&resume.Prompt,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Delete removes the resume iff it exists and belongs to userID. A
// non-matching id or owner deletes zero rows and is not an error.
func (r *PGRepo) Delete(ctx context.Context, id, userID int64) error {
	const query = `
DELETE FROM resumes
WHERE id = $1 AND user_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
