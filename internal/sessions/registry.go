package sessions

import (
	"sync"
	"time"
)

// DefaultSweepInterval matches the reference check period of the
// in-memory session store.
const DefaultSweepInterval = 24 * time.Hour

// Registry maps opaque session tokens to user ids with a TTL. An entry
// past its expiry is absent regardless of whether the background sweep
// has removed it yet.
type Registry interface {
	Put(sessionID string, userID int64, ttl time.Duration)
	Get(sessionID string) (int64, bool)
	Renew(sessionID string, ttl time.Duration) bool
	Delete(sessionID string)
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryRegistry is an in-memory Registry safe for concurrent use.
// Expiry is enforced lazily on every read; a background sweep reclaims
// memory for entries that are never read again.
type MemoryRegistry struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
	done    chan struct{}
	closed  sync.Once
}

// NewMemoryRegistry constructs a MemoryRegistry and starts its sweep
// goroutine. sweepInterval <= 0 uses DefaultSweepInterval. Close must
// be called to stop the sweeper.
func NewMemoryRegistry(sweepInterval time.Duration) *MemoryRegistry {
	r := newMemoryRegistry(nil)
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	go r.sweepLoop(sweepInterval)
	return r
}

func newMemoryRegistry(now func() time.Time) *MemoryRegistry {
	if now == nil {
		now = time.Now
	}
	return &MemoryRegistry{
		entries: make(map[string]entry),
		now:     now,
		done:    make(chan struct{}),
	}
}

// Put registers or replaces a session.
func (r *MemoryRegistry) Put(sessionID string, userID int64, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[sessionID] = entry{
		userID:    userID,
		expiresAt: r.now().Add(ttl),
	}
}

// Get returns the user id for a live session. Expired entries are
// removed and reported absent even before the sweep runs.
func (r *MemoryRegistry) Get(sessionID string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return 0, false
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.entries, sessionID)
		return 0, false
	}
	return e.userID, true
}

// Renew extends a live session's expiry. Returns false if the session
// is absent or already expired.
func (r *MemoryRegistry) Renew(sessionID string, ttl time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return false
	}
	now := r.now()
	if !now.Before(e.expiresAt) {
		delete(r.entries, sessionID)
		return false
	}
	e.expiresAt = now.Add(ttl)
	r.entries[sessionID] = e
	return true
}

// Delete removes a session. Removing an absent session is a no-op.
func (r *MemoryRegistry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Close stops the background sweep. The registry remains usable.
func (r *MemoryRegistry) Close() {
	r.closed.Do(func() { close(r.done) })
}

func (r *MemoryRegistry) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *MemoryRegistry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
		}
	}
}

var _ Registry = (*MemoryRegistry)(nil)
