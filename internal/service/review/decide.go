package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Accept records an accept decision for the current item.
//
// Input while a decision is already in flight, or when there is no current
// item, is a deliberate no-op: the disabled-button guard that keeps rapid
// repeated input from firing duplicate mutations for the same item.
func (q *Queue) Accept(ctx context.Context) error {
	return q.decide(ctx, "accept", q.cb.Accept)
}

// Reject records a reject decision for the current item. Same guards as
// Accept.
func (q *Queue) Reject(ctx context.Context) error {
	return q.decide(ctx, "reject", q.cb.Reject)
}

func (q *Queue) decide(ctx context.Context, verb string, fn func(context.Context, uuid.UUID) error) error {
	q.mu.Lock()
	if q.state != StateIdle || len(q.items) == 0 {
		q.mu.Unlock()
		return nil
	}
	item := q.items[q.idx]
	q.state = StateProcessing
	q.mu.Unlock()

	// The callback is the suspension point; the lock is released so SyncList
	// can land while the mutation is in flight.
	err := fn(ctx, item.ID)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state == StateDone {
		// The list emptied out from under us while processing.
		return err
	}

	if err != nil {
		// Cursor and counts unchanged; the item stays presented for retry.
		q.state = StateIdle
		q.log.WarnContext(ctx, "review decision failed",
			slog.String("verb", verb),
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", verb, item.ID, err)
	}

	q.lastProcessed = item.ID
	q.completed++
	q.state = StateAwaitingListSync

	// The upstream list may have synced while the call was in flight, before
	// lastProcessed was recorded. If the item is already gone, resolve now
	// instead of waiting for a sync that will never re-fire.
	if !containsID(q.items, item.ID) {
		q.lastProcessed = uuid.Nil
		if len(q.items) == 0 {
			q.state = StateDone
		} else {
			q.state = StateIdle
			if q.idx >= len(q.items) {
				q.idx = 0
			}
		}
	}

	q.log.InfoContext(ctx, "review decision applied",
		slog.String("verb", verb),
		slog.String("item_id", item.ID.String()),
		slog.Int("completed", q.completed),
	)
	return nil
}
