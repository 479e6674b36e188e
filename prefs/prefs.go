// Package prefs manages user and session language preferences.
package prefs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/golingo"
)

// Source describes how a preference was chosen.
type Source string

const (
	SourceUserSelection    Source = "user_selection"
	SourceBrowserDetection Source = "browser_detection"
	SourceDefault          Source = "default"
)

// Preference is a language preference for a user or anonymous session.
type Preference struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId,omitempty"`
	SessionID    string    `json:"sessionId,omitempty"`
	LanguageCode string    `json:"languageCode"`
	Source       Source    `json:"source"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Subject identifies whose preference is being read or written. When both
// IDs are set, the user scope takes precedence.
type Subject struct {
	UserID    string
	SessionID string
}

// IsZero reports whether the subject identifies nobody.
func (s Subject) IsZero() bool {
	return s.UserID == "" && s.SessionID == ""
}

// Store is the interface for preference persistence.
//
// Save deactivates the subject's previous active preferences and inserts
// the given one, so at most one preference per subject is active.
type Store interface {
	Active(ctx context.Context, sub Subject) (*Preference, bool, error)
	Save(ctx context.Context, pref *Preference) error
}

// Service manages language preferences with validation.
type Service struct {
	store     Store
	languages *golingo.Registry
	logger    *zap.Logger
}

// ServiceOption is a functional option for configuring the Service.
type ServiceOption func(*Service)

// WithLanguages sets the language registry used for validation.
func WithLanguages(reg *golingo.Registry) ServiceOption {
	return func(s *Service) {
		s.languages = reg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a preference service backed by the given store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		languages: golingo.DefaultRegistry(),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the subject's active preference. An empty subject is a miss.
func (s *Service) Get(ctx context.Context, sub Subject) (*Preference, bool, error) {
	if sub.IsZero() {
		return nil, false, nil
	}
	return s.store.Active(ctx, sub)
}

// Set validates the language code and makes it the subject's active
// preference, deactivating any previous one.
func (s *Service) Set(ctx context.Context, sub Subject, languageCode string, source Source) (*Preference, error) {
	if err := s.languages.Validate(languageCode); err != nil {
		return nil, err
	}
	if source == "" {
		source = SourceUserSelection
	}

	pref := &Preference{
		ID:           uuid.New().String(),
		UserID:       sub.UserID,
		SessionID:    sub.SessionID,
		LanguageCode: languageCode,
		Source:       source,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Save(ctx, pref); err != nil {
		return nil, err
	}

	s.logger.Info("set language preference",
		zap.String("language", languageCode),
		zap.String("user", sub.UserID),
		zap.String("session", sub.SessionID),
	)
	return pref, nil
}
