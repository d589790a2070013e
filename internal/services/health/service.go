package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. DB may be nil when the
// in-memory backend is active.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns a health payload including which storage backend is
// serving requests.
func (s *Service) Status(ctx context.Context) map[string]any {
	if s == nil || s.DB == nil {
		return map[string]any{"ok": true, "storage": "memory"}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.DB.PingContext(pingCtx); err != nil {
		return map[string]any{"ok": false, "storage": "postgres"}
	}
	return map[string]any{"ok": true, "storage": "postgres"}
}
