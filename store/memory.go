package store

import (
	"context"
	"sync"
	"time"

	"github.com/ZaguanLabs/golingo"
)

// MemoryStore is a thread-safe in-memory translation cache store.
// It is append-friendly: every Put adds a row, duplicates for the same key
// coexist, and expired rows are retained until Clear.
type MemoryStore struct {
	entries map[string][]*golingo.CacheEntry
	mu      sync.Mutex
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]*golingo.CacheEntry),
	}
}

// Get returns the live entry for the key with the latest expiry and
// increments its usage count. Missing and expired entries are misses.
func (s *MemoryStore) Get(ctx context.Context, key, sourceLang, targetLang string) (*golingo.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	var best *golingo.CacheEntry
	for _, entry := range s.entries[key] {
		if entry.SourceLang != sourceLang || entry.TargetLang != targetLang {
			continue
		}
		if !entry.Live(now) {
			continue
		}
		if best == nil || entry.ExpiresAt.After(best.ExpiresAt) {
			best = entry
		}
	}

	if best == nil {
		return nil, false, nil
	}

	best.UsageCount++
	hit := *best
	return &hit, true, nil
}

// Put inserts the entry. Earlier entries for the same key are kept.
func (s *MemoryStore) Put(ctx context.Context, entry *golingo.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	s.entries[stored.Key] = append(s.entries[stored.Key], &stored)
	return nil
}

// Len returns the number of stored entries, including expired ones.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, entries := range s.entries {
		n += len(entries)
	}
	return n
}

// Clear removes all entries from the store.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string][]*golingo.CacheEntry)
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
