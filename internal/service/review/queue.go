// Package review implements the linear triage flow: one item at a time,
// accept or reject, over a list that shrinks underneath the cursor as the
// triggered mutations land.
package review

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// State is the queue's position in its transition table.
type State string

const (
	// StateIdle shows the item at the cursor and accepts input.
	StateIdle State = "IDLE"
	// StateProcessing has an accept/reject call in flight; input is ignored.
	StateProcessing State = "PROCESSING"
	// StateAwaitingListSync had the call succeed and waits for the upstream
	// list to stop containing the processed item.
	StateAwaitingListSync State = "AWAITING_LIST_SYNC"
	// StateDone is terminal: the list is empty and the queue is dismissed.
	StateDone State = "DONE"
)

func (s State) String() string { return string(s) }

// Item is one entry under triage.
type Item struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Link        *string
}

// Callbacks are supplied by the owning screen. Accept and Reject trigger the
// store mutations that eventually remove the item from the upstream list;
// Exit dismisses the queue.
type Callbacks struct {
	Accept func(ctx context.Context, id uuid.UUID) error
	Reject func(ctx context.Context, id uuid.UUID) error
	Exit   func()
}

// Queue walks an externally supplied list without skipping, repeating, or
// indexing out of range while the list shrinks. It never trusts a local
// decrement: after a successful decision it waits in StateAwaitingListSync
// until SyncList shows the processed id gone, because the upstream list is
// owned by a store that may also be refreshed for unrelated reasons.
type Queue struct {
	log *slog.Logger
	cb  Callbacks

	mu            sync.Mutex
	items         []Item
	state         State
	idx           int
	completed     int
	totalOriginal int
	lastProcessed uuid.UUID // Nil unless awaiting list sync
}

// NewQueue creates a queue over the initial list. An empty list starts Done.
func NewQueue(log *slog.Logger, items []Item, cb Callbacks) *Queue {
	q := &Queue{
		log:           log.With("service", "review"),
		cb:            cb,
		items:         copyItems(items),
		state:         StateIdle,
		totalOriginal: len(items),
	}
	if len(items) == 0 {
		q.state = StateDone
	}
	return q
}

// State returns the current state.
func (q *Queue) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Current returns the item at the cursor, or false when the queue is done or
// the list is empty.
func (q *Queue) Current() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state == StateDone || len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[q.idx], true
}

// Completed returns how many items have been decided in this session.
func (q *Queue) Completed() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.completed
}

// Progress returns the informational completion percentage over the original
// list length. It never drives transitions.
func (q *Queue) Progress() float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.totalOriginal == 0 {
		return 100
	}
	return float64(q.idx+q.completed) / float64(q.totalOriginal) * 100
}

// SyncList feeds the queue the latest upstream snapshot. It resolves the
// AwaitingListSync state once the processed id is gone, clamps the cursor to
// the front when the shrunk list left it out of bounds (removal order gives
// no adjacency to preserve), and finishes the queue whenever the list is
// empty, whatever emptied it.
func (q *Queue) SyncList(items []Item) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state == StateDone {
		return
	}

	q.items = copyItems(items)

	if len(q.items) == 0 {
		q.lastProcessed = uuid.Nil
		q.state = StateDone
		q.log.Info("review finished", slog.Int("completed", q.completed))
		return
	}

	if q.state == StateAwaitingListSync && !containsID(q.items, q.lastProcessed) {
		q.lastProcessed = uuid.Nil
		q.state = StateIdle
	}

	if q.idx >= len(q.items) {
		q.idx = 0
	}
}

// Exit dismisses the queue via the owning screen's callback.
func (q *Queue) Exit() {
	q.mu.Lock()
	q.state = StateDone
	q.mu.Unlock()
	if q.cb.Exit != nil {
		q.cb.Exit()
	}
}

func containsID(items []Item, id uuid.UUID) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
