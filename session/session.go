// Package session tracks translation sessions and their activity counters.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session records one visitor's translation session.
type Session struct {
	ID             string     `json:"id"`
	SessionID      string     `json:"sessionId"`
	LanguageCode   string     `json:"languageCode"`
	StartedAt      time.Time  `json:"startedAt"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
	PageViews      int64      `json:"pageViews"`
	AITranslations int64      `json:"aiTranslations"`
}

// Active reports whether the session has not ended.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// Activity is a countable event within a session.
type Activity string

const (
	PageView      Activity = "page_view"
	AITranslation Activity = "ai_translation"
)

// Store is the interface for session persistence. End and Record return
// the updated session, or ok=false when no active session exists for the
// given external session ID.
type Store interface {
	Active(ctx context.Context, sessionID string) (*Session, bool, error)
	Insert(ctx context.Context, sess *Session) error
	End(ctx context.Context, sessionID string, at time.Time) (*Session, bool, error)
	Record(ctx context.Context, sessionID string, act Activity, at time.Time) (*Session, bool, error)
}

// Tracker manages session lifecycles on top of a Store.
type Tracker struct {
	store  Store
	logger *zap.Logger
}

// TrackerOption is a functional option for configuring the Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker creates a session tracker backed by the given store.
func NewTracker(store Store, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store:  store,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins a session for the external session ID, ending any session
// already active under it.
func (t *Tracker) Start(ctx context.Context, sessionID, languageCode string) (*Session, error) {
	now := time.Now().UTC()

	if _, ended, err := t.store.End(ctx, sessionID, now); err != nil {
		return nil, err
	} else if ended {
		t.logger.Debug("ended stale session", zap.String("session", sessionID))
	}

	sess := &Session{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		LanguageCode:   languageCode,
		StartedAt:      now,
		LastActivityAt: now,
	}

	if err := t.store.Insert(ctx, sess); err != nil {
		return nil, err
	}

	t.logger.Info("started translation session",
		zap.String("session", sessionID),
		zap.String("language", languageCode),
	)
	return sess, nil
}

// Current returns the active session for the external session ID.
func (t *Tracker) Current(ctx context.Context, sessionID string) (*Session, bool, error) {
	return t.store.Active(ctx, sessionID)
}

// RecordActivity counts one activity against the active session and bumps
// its last-activity time. Without an active session it is a no-op.
func (t *Tracker) RecordActivity(ctx context.Context, sessionID string, act Activity) (*Session, bool, error) {
	return t.store.Record(ctx, sessionID, act, time.Now().UTC())
}

// End closes the active session for the external session ID.
func (t *Tracker) End(ctx context.Context, sessionID string) (*Session, bool, error) {
	sess, ok, err := t.store.End(ctx, sessionID, time.Now().UTC())
	if err != nil || !ok {
		return sess, ok, err
	}

	t.logger.Info("ended translation session",
		zap.String("session", sessionID),
		zap.Int64("pageViews", sess.PageViews),
		zap.Int64("aiTranslations", sess.AITranslations),
	)
	return sess, true, nil
}
