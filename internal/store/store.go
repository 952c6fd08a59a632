package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/wanjala-dev/duetrack/internal/model"
)

// Lister is the slice of the API client the store needs.
type Lister interface {
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
}

// Store holds the in-memory assignment list for the active user. The list is
// replaced wholesale on every successful reload, never patched in place; on a
// failed reload the previous snapshot stays fully intact. Reads and writes
// are guarded because bubbletea commands resolve on their own goroutines.
type Store struct {
	client Lister
	cache  *Cache

	mu     sync.RWMutex
	items  []model.Assignment
	loaded bool
}

// New builds a store over the given API client. cache may be nil to disable
// offline persistence.
func New(client Lister, cache *Cache) *Store {
	return &Store{client: client, cache: cache}
}

// Reload fetches the full assignment list and installs it as the new
// snapshot. Any error leaves the current snapshot untouched; a 401 surfaces
// as api.ErrUnauthorized for the caller to redirect to re-authentication.
func (s *Store) Reload(ctx context.Context) error {
	items, err := s.client.ListAssignments(ctx)
	if err != nil {
		return fmt.Errorf("reload assignments: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()

	if s.cache != nil {
		// Best effort: a cache write failure must not fail the reload.
		_ = s.cache.Save(items)
	}
	return nil
}

// Snapshot returns a copy of the current list. Callers never see or mutate
// the store's backing slice.
func (s *Store) Snapshot() []model.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Assignment, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether at least one reload (or cache restore) succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// RestoreCached installs the last persisted snapshot, used when the backend
// is unreachable at startup.
func (s *Store) RestoreCached() error {
	if s.cache == nil {
		return fmt.Errorf("no offline cache configured")
	}
	items, err := s.cache.Load()
	if err != nil {
		return fmt.Errorf("restore cached snapshot: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Clear drops the snapshot on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.loaded = false
	s.mu.Unlock()
}
