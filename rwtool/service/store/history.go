package store

import (
	"fmt"
	"sync"
	"time"
)

// RewriteEntry records one rewrite performed during a service session.
type RewriteEntry struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Sanitized string    `json:"sanitized"`
	Rewritten string    `json:"rewritten"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore keeps rewrite results by ID so agents can retrieve or compare
// them later in the session. Thread-safe.
type HistoryStore struct {
	mu     sync.RWMutex
	byID   map[string]*RewriteEntry
	order  []string // insertion order, oldest first
	nextID int
}

// NewHistoryStore creates a new empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		byID: make(map[string]*RewriteEntry),
	}
}

// Add records a rewrite and returns the stored entry with its assigned ID.
func (s *HistoryStore) Add(original, sanitized, rewritten string) RewriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry := &RewriteEntry{
		ID:        fmt.Sprintf("rw-%d", s.nextID),
		Original:  original,
		Sanitized: sanitized,
		Rewritten: rewritten,
		CreatedAt: time.Now().UTC(),
	}
	s.byID[entry.ID] = entry
	s.order = append(s.order, entry.ID)
	return *entry
}

// Lookup retrieves a RewriteEntry by ID.
// Returns the zero entry and false if not found.
func (s *HistoryStore) Lookup(id string) (RewriteEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return RewriteEntry{}, false
	}

	// Return a copy to prevent external modification
	return *entry, true
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *HistoryStore) List(limit int) []RewriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}

	out := make([]RewriteEntry, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.byID[s.order[i]])
	}
	return out
}

// Count returns the number of stored entries.
func (s *HistoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Clear removes all entries from the store.
func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]*RewriteEntry)
	s.order = nil
}
