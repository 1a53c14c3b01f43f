// Package scope holds the session-wide brand selection that scoped stores
// read to auto-fill the brand foreign key on create.
package scope

import (
	"sync"

	"github.com/google/uuid"
)

// Selection is the single active brand id for the UI session. It lives in
// memory only and never persists across restarts. There is exactly one writer
// path (Set/Clear); reads always return the latest value.
type Selection struct {
	mu   sync.RWMutex
	id   uuid.UUID
	set  bool
	subs []func(id uuid.UUID, selected bool)
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Set replaces the active brand id. Setting uuid.Nil is equivalent to Clear.
func (s *Selection) Set(id uuid.UUID) {
	if id == uuid.Nil {
		s.Clear()
		return
	}
	s.mu.Lock()
	s.id = id
	s.set = true
	subs := make([]func(uuid.UUID, bool), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(id, true)
	}
}

// Clear removes the active selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.id = uuid.Nil
	s.set = false
	subs := make([]func(uuid.UUID, bool), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(uuid.Nil, false)
	}
}

// Current returns the active brand id, or false when nothing is selected.
func (s *Selection) Current() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return uuid.Nil, false
	}
	return s.id, true
}

// Subscribe registers fn to run after every Set or Clear. Dependent stores
// use this to re-derive their filter and reload.
func (s *Selection) Subscribe(fn func(id uuid.UUID, selected bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
