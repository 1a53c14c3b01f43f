package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// Load fetches the full listing for the filter and replaces the cache.
//
// Loads may overlap: each call takes a sequence number, and a completion is
// applied only if nothing with a higher number has been applied yet. The last
// load to settle wins, and a stale failure can never clobber a cache already
// refreshed by a newer load. Stale completions are discarded, not cancelled.
// On an applied failure the previous cache is preserved and the error state
// set; an applied success clears any error.
func (s *Store[T]) Load(ctx context.Context, filter domain.ListFilter) error {
	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.lastFilter = filter
	s.mu.Unlock()

	records, err := s.client.List(ctx, filter)

	s.mu.Lock()
	stale := seq <= s.appliedSeq
	if !stale {
		s.appliedSeq = seq
		if err != nil {
			s.lastErr = err
		} else {
			s.records = records
			s.lastErr = nil
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.log.WarnContext(ctx, "load failed",
			slog.Uint64("seq", seq),
			slog.Bool("stale", stale),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("list %s: %w", s.resource, err)
	}

	if !stale {
		s.notify()
	}

	s.log.DebugContext(ctx, "loaded",
		slog.Uint64("seq", seq),
		slog.Bool("stale", stale),
		slog.Int("count", len(records)),
	)
	return nil
}

// Reload re-runs Load with the most recent filter. Mutation failures use it
// as the single corrective round trip back to server truth.
func (s *Store[T]) Reload(ctx context.Context) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.Load(ctx, filter)
}

// reconcile is the post-mutation-failure reload. Its own failure is logged
// and swallowed: the caller already has the mutation error, and no automatic
// retry happens beyond this one round trip.
func (s *Store[T]) reconcile(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.log.WarnContext(ctx, "corrective reload failed", slog.String("error", err.Error()))
	}
}
