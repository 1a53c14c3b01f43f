package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// Create validates the payload, resolves the brand scope, and sends it to the
// server. The cache is touched only after the server has returned the record
// with its assigned id: a synthetic client-side id would collide with the
// real one, so create is confirm-then-apply rather than fully optimistic.
//
// For scope-bound resources a payload without a brand id falls back to the
// active selection; with neither, the call fails with domain.ErrMissingScope
// before any network traffic. On a network failure the error is surfaced and
// one corrective reload restores server truth.
func (s *Store[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T

	if err := payload.Validate(); err != nil {
		s.setErr(err)
		return zero, err
	}

	if s.scope != nil && s.scopeOf(payload) == uuid.Nil {
		scopeID, ok := s.scope.Current()
		if !ok {
			err := fmt.Errorf("create %s: %w", s.resource, domain.ErrMissingScope)
			s.setErr(err)
			return zero, err
		}
		payload = s.bindScope(payload, scopeID)
	}

	created, err := s.client.Create(ctx, payload)
	if err != nil {
		// Reconcile first: the reload would otherwise clear the error
		// state this failure is about to set.
		s.reconcile(ctx)
		s.setErr(err)
		return zero, fmt.Errorf("create %s: %w", s.resource, err)
	}

	s.mu.Lock()
	if s.newestFirst {
		s.records = append([]T{created}, s.records...)
	} else {
		s.records = append(s.records, created)
	}
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()

	s.log.InfoContext(ctx, "created",
		slog.String("id", created.ResourceID().String()),
	)
	return created, nil
}
