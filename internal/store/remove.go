package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// Remove deletes a record, excising it from the cache before the network call
// completes. Delete has no meaningful pending state and users expect instant
// removal, so this is the one truly optimistic mutation. If the server call
// fails the error is surfaced and the corrective reload brings the record
// back.
func (s *Store[T]) Remove(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		err := domain.NewValidationError("id", "required")
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	kept := s.records[:0]
	found := false
	for _, rec := range s.records {
		if rec.ResourceID() == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	s.mu.Unlock()
	if found {
		s.notify()
	}

	err := s.client.Delete(ctx, id)
	if err != nil {
		s.reconcile(ctx)
		s.setErr(err)
		return fmt.Errorf("delete %s: %w", s.resource, err)
	}

	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()

	s.log.InfoContext(ctx, "removed",
		slog.String("id", id.String()),
		slog.Bool("was_cached", found),
	)
	return nil
}
