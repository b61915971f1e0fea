// Package storage provides history persistence implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.HistoryStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory history. Safe for concurrent access.
// When a limit is set, the oldest entries are dropped first.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*domain.Entry
	limit   int
	log     *logger.Logger
}

// NewMemoryStore creates an empty history keeping at most limit entries.
// A limit of zero or less keeps everything.
func NewMemoryStore(limit int, log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		limit: limit,
		log:   log,
	}
}

// Append records an entry, evicting the oldest one if the store is full.
func (s *MemoryStore) Append(ctx context.Context, entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.log.Debug("history full, dropping %d oldest entries", drop)
		// Copy so evicted entries don't stay reachable from the backing array.
		s.entries = append([]*domain.Entry(nil), s.entries[drop:]...)
	}
	s.log.Debug("recorded entry %s (%q), size=%d", entry.ID, entry.Input, len(s.entries))
	return nil
}

// List returns the entries oldest first. The slice is a copy.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Last returns the most recent entry.
func (s *MemoryStore) Last(ctx context.Context) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.entries[len(s.entries)-1], nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("clearing %d history entries", len(s.entries))
	s.entries = nil
	return nil
}
