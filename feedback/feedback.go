// Package feedback collects quality feedback on translations.
package feedback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind distinguishes what the feedback is about.
type Kind string

const (
	KindUI      Kind = "ui"
	KindContent Kind = "content"
)

// Type classifies the feedback itself.
type Type string

const (
	TypePositive   Type = "positive"
	TypeNegative   Type = "negative"
	TypeSuggestion Type = "suggestion"
)

// Status tracks the review state of a feedback entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusDismissed Status = "dismissed"
)

// Feedback is one recorded feedback entry.
type Feedback struct {
	ID            string    `json:"id"`
	TranslationID string    `json:"translationId"`
	Kind          Kind      `json:"kind"`
	Type          Type      `json:"type"`
	UserID        string    `json:"userId,omitempty"`
	SessionID     string    `json:"sessionId,omitempty"`
	Suggestion    string    `json:"suggestion,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Sink receives recorded feedback entries.
type Sink interface {
	Record(ctx context.Context, fb *Feedback) error
}

// Submission is the caller-provided part of a feedback entry.
type Submission struct {
	TranslationID string
	Kind          Kind
	Type          Type
	UserID        string
	SessionID     string
	Suggestion    string
}

// Recorder validates submissions and records them in a Sink.
type Recorder struct {
	sink   Sink
	logger *zap.Logger
}

// RecorderOption is a functional option for configuring the Recorder.
type RecorderOption func(*Recorder)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// NewRecorder creates a feedback recorder backed by the given sink.
func NewRecorder(sink Sink, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		sink:   sink,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Submit records a feedback entry. New entries start out pending.
func (r *Recorder) Submit(ctx context.Context, sub Submission) (*Feedback, error) {
	if sub.TranslationID == "" {
		return nil, errors.New("feedback: translation ID is required")
	}
	if sub.Type == "" {
		return nil, errors.New("feedback: type is required")
	}
	if sub.Kind == "" {
		sub.Kind = KindContent
	}

	fb := &Feedback{
		ID:            uuid.New().String(),
		TranslationID: sub.TranslationID,
		Kind:          sub.Kind,
		Type:          sub.Type,
		UserID:        sub.UserID,
		SessionID:     sub.SessionID,
		Suggestion:    sub.Suggestion,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := r.sink.Record(ctx, fb); err != nil {
		return nil, err
	}

	r.logger.Info("recorded feedback",
		zap.String("translation", fb.TranslationID),
		zap.String("type", string(fb.Type)),
	)
	return fb, nil
}

// MemorySink is an in-memory feedback sink.
type MemorySink struct {
	entries []*Feedback
	mu      sync.Mutex
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record appends a feedback entry.
func (m *MemorySink) Record(_ context.Context, fb *Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *fb
	m.entries = append(m.entries, &stored)
	return nil
}

// List returns all recorded entries in submission order.
func (m *MemorySink) List() []*Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Feedback, len(m.entries))
	for i, fb := range m.entries {
		c := *fb
		out[i] = &c
	}
	return out
}

// Len returns the number of recorded entries.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ Sink = (*MemorySink)(nil)
