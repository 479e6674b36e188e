package prefs

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory preference store. It keeps the full
// preference history, which makes it useful for tests.
type MemoryStore struct {
	prefs []*Preference
	mu    sync.Mutex
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Active returns the subject's active preference. A user match wins over
// a session match.
func (m *MemoryStore) Active(_ context.Context, sub Subject) (*Preference, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var bySession *Preference
	for _, p := range m.prefs {
		if !p.Active {
			continue
		}
		if sub.UserID != "" && p.UserID == sub.UserID {
			out := *p
			return &out, true, nil
		}
		if sub.SessionID != "" && p.SessionID == sub.SessionID {
			bySession = p
		}
	}

	if bySession != nil {
		out := *bySession
		return &out, true, nil
	}
	return nil, false, nil
}

// Save deactivates the subject's previous active preferences and appends
// the new one.
func (m *MemoryStore) Save(_ context.Context, pref *Preference) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.prefs {
		if !p.Active {
			continue
		}
		if pref.UserID != "" && p.UserID == pref.UserID {
			p.Active = false
		}
		if pref.SessionID != "" && p.SessionID == pref.SessionID {
			p.Active = false
		}
	}

	stored := *pref
	m.prefs = append(m.prefs, &stored)
	return nil
}

// Len returns the number of stored preferences, including inactive ones.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prefs)
}

var _ Store = (*MemoryStore)(nil)
