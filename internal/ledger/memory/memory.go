// Package memory implements the ledger store in process memory. It backs
// tests and the local LEDGER_BACKEND=memory mode; nothing survives restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
)

type Store struct {
	mu      sync.Mutex
	entries []core.Entry

	// Failure injection for tests. When set, the matching operation
	// returns the error instead of touching the store.
	AppendErr error
	ReadErr   error
}

var _ ledger.Store = (*Store)(nil)

func New(entries ...core.Entry) *Store {
	return &Store{entries: append([]core.Entry(nil), entries...)}
}

// Append stores the entry and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, e core.Entry) (string, error) {
	if s.AppendErr != nil {
		return "", s.AppendErr
	}
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return fmt.Sprintf("mem:%d", len(s.entries)), nil
}

// ReadAll returns a copy of all entries in append order.
func (s *Store) ReadAll(_ context.Context) ([]core.Entry, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Entry(nil), s.entries...), nil
}

func (s *Store) Ping(context.Context) error {
	if s.ReadErr != nil {
		return s.ReadErr
	}
	return nil
}

// Len reports how many entries are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
