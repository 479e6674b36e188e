package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory session store. It keeps ended sessions so
// history remains inspectable in tests.
type MemoryStore struct {
	sessions []*Session
	mu       sync.Mutex
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) active(sessionID string) *Session {
	for _, s := range m.sessions {
		if s.SessionID == sessionID && s.Active() {
			return s
		}
	}
	return nil
}

// Active returns the active session for the external session ID.
func (m *MemoryStore) Active(_ context.Context, sessionID string) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s := m.active(sessionID); s != nil {
		out := *s
		return &out, true, nil
	}
	return nil, false, nil
}

// Insert appends a new session.
func (m *MemoryStore) Insert(_ context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *sess
	m.sessions = append(m.sessions, &stored)
	return nil
}

// End marks the active session as ended.
func (m *MemoryStore) End(_ context.Context, sessionID string, at time.Time) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active(sessionID)
	if s == nil {
		return nil, false, nil
	}

	ended := at
	s.EndedAt = &ended
	s.LastActivityAt = at

	out := *s
	return &out, true, nil
}

// Record counts one activity against the active session.
func (m *MemoryStore) Record(_ context.Context, sessionID string, act Activity, at time.Time) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active(sessionID)
	if s == nil {
		return nil, false, nil
	}

	switch act {
	case PageView:
		s.PageViews++
	case AITranslation:
		s.AITranslations++
	}
	s.LastActivityAt = at

	out := *s
	return &out, true, nil
}

// Len returns the number of stored sessions, including ended ones.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

var _ Store = (*MemoryStore)(nil)
