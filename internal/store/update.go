package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// Update applies a partial change and swaps the server's returned record into
// the cache by id. The server stays the source of truth for updatedAt and any
// computed fields, so the local copy is replaced wholesale, never patched in
// place. On failure the error is surfaced and one corrective reload restores
// server truth.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (T, error) {
	var zero T

	if id == uuid.Nil {
		err := domain.NewValidationError("id", "required")
		s.setErr(err)
		return zero, err
	}
	if len(patch) == 0 {
		err := domain.NewValidationError("patch", "at least one field must be provided")
		s.setErr(err)
		return zero, err
	}

	updated, err := s.client.Update(ctx, id, patch)
	if err != nil {
		s.reconcile(ctx)
		s.setErr(err)
		return zero, fmt.Errorf("update %s: %w", s.resource, err)
	}

	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ResourceID() == id {
			s.records[i] = updated
			break
		}
	}
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()

	s.log.InfoContext(ctx, "updated",
		slog.String("id", id.String()),
		slog.Int("fields", len(patch)),
	)
	return updated, nil
}
