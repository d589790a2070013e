package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
// The id counter and the map are guarded by the same lock so two
// concurrent Creates can never be allocated the same id.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[int64]Resume
	nextID  int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[int64]Resume), nextID: 1}
}

// Create allocates a fresh id, stamps the creation time and stores the
// fully-formed resume.
func (r *MemoryRepo) Create(ctx context.Context, fields NewResume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume := Resume{
		ID:        r.nextID,
		UserID:    fields.UserID,
		Title:     fields.Title,
		Content:   fields.Content,
		Prompt:    fields.Prompt,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.resumes[resume.ID] = resume
	return resume, nil
}

// ListByUser returns the resumes owned by userID in insertion order.
// Ids are monotonic, so ascending id is insertion order.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Resume{}
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the resume iff it exists and belongs to userID.
// Otherwise it is a no-op; the ownership check is a single equality
// comparison once the record is located.
func (r *MemoryRepo) Delete(ctx context.Context, id, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[id]
	if ok && resume.UserID == userID {
		delete(r.resumes, id)
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
