// Package memory provides an in-memory Store used as the default backend
// and as a test double. State lives only for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"finledger/internal/core"
)

type Store struct {
	mu      sync.RWMutex
	entries []core.Entry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]core.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *Store) Save(_ context.Context, entries []core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]core.Entry, len(entries))
	copy(s.entries, entries)
	return nil
}

func (s *Store) Close() error {
	return nil
}
