package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumebuilder-backend/internal/generator"
	"resumebuilder-backend/internal/shared/metrics"
)

// DefaultTitle is used when the caller supplies no title.
const DefaultTitle = "Generated Resume"

// Service coordinates the generator and the repository. The generator
// output is stored verbatim; the service never inspects it.
type Service struct {
	Repo      Repo
	Generator generator.Generator
}

// NewService constructs a Service.
func NewService(repo Repo, gen generator.Generator) *Service {
	return &Service{Repo: repo, Generator: gen}
}

// Generate produces a resume document from the prompt and persists it
// under userID.
func (s *Service) Generate(ctx context.Context, userID int64, title, prompt string) (Resume, error) {
	if s == nil || s.Repo == nil || s.Generator == nil {
		return Resume{}, errors.New("resumes service not configured")
	}
	if userID <= 0 {
		return Resume{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(prompt) == "" {
		return Resume{}, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	metrics.IncGenerationStarted()
	start := time.Now()
	content, err := s.Generator.Generate(ctx, prompt, title)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncGenerationFailed()
		return Resume{}, fmt.Errorf("generate resume: %w", err)
	}
	metrics.IncGenerationCompleted()

	return s.Repo.Create(ctx, NewResume{
		UserID:  userID,
		Title:   title,
		Content: content,
		Prompt:  prompt,
	})
}

// ListByUser returns the caller's resumes in insertion order.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("resumes service not configured")
	}
	if userID <= 0 {
		return []Resume{}, nil
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes the resume if the caller owns it; otherwise it is a
// silent no-op.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if s == nil || s.Repo == nil {
		return errors.New("resumes service not configured")
	}
	if id <= 0 || userID <= 0 {
		return nil
	}
	return s.Repo.Delete(ctx, id, userID)
}
