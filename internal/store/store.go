// Package store implements the optimistic cache-and-reconcile engine behind
// every resource screen: list + create + update + delete with immediate local
// feedback, converging back to server truth within one corrective reload
// after any failed mutation.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/internal/scope"
)

// Client is the network boundary a store drives. Implementations fail with a
// *domain.NetworkError on any non-success response.
type Client[T domain.Resource] interface {
	List(ctx context.Context, filter domain.ListFilter) ([]T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Config describes one resource type to a Store.
type Config[T domain.Resource] struct {
	// Resource is the label used in logs and wrapped errors ("ideas", ...).
	Resource string

	Client Client[T]

	// Scope, ScopeOf and BindScope are set together for brand-scoped
	// resources; all nil for global ones.
	Scope     *scope.Selection
	ScopeOf   func(T) uuid.UUID
	BindScope func(T, uuid.UUID) T

	// NewestFirst keeps the cache insertion-ordered with created records
	// prepended. Otherwise the cache is treated as a set keyed by id and
	// created records are appended.
	NewestFirst bool
}

// Store holds the local cache for one resource type. The cache is exclusively
// owned by the store: consumers get copied snapshots and push every change
// back through Load/Create/Update/Remove.
type Store[T domain.Resource] struct {
	resource    string
	client      Client[T]
	scope       *scope.Selection
	scopeOf     func(T) uuid.UUID
	bindScope   func(T, uuid.UUID) T
	newestFirst bool
	log         *slog.Logger

	mu         sync.Mutex
	records    []T
	lastErr    error
	lastFilter domain.ListFilter
	issuedSeq  uint64
	appliedSeq uint64
	onChange   []func()
}

// New creates a Store for one resource type.
func New[T domain.Resource](log *slog.Logger, cfg Config[T]) *Store[T] {
	return &Store[T]{
		resource:    cfg.Resource,
		client:      cfg.Client,
		scope:       cfg.Scope,
		scopeOf:     cfg.ScopeOf,
		bindScope:   cfg.BindScope,
		newestFirst: cfg.NewestFirst,
		log:         log.With("store", cfg.Resource),
	}
}

// Records returns a copied snapshot of the cache.
func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the cached record with the given id.
func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ResourceID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of cached records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Err returns the observable error state. It reflects the most recent failed
// operation and is cleared by the next successful one.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// OnChange registers fn to run after every cache mutation. Consumers must
// re-read via Records inside fn; the callback carries no data on purpose.
func (s *Store[T]) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// notify runs the registered callbacks outside the lock.
func (s *Store[T]) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.onChange))
	copy(subs, s.onChange)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store[T]) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
