package session

import (
	"context"
	"testing"
	"time"
)

func TestTracker_StartAndCurrent(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	sess, err := tracker.Start(context.Background(), "sess-1", "es")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if sess.ID == "" {
		t.Error("sessions should get an ID")
	}
	if sess.SessionID != "sess-1" {
		t.Errorf("expected session ID 'sess-1', got %q", sess.SessionID)
	}
	if sess.LanguageCode != "es" {
		t.Errorf("expected language 'es', got %q", sess.LanguageCode)
	}
	if !sess.Active() {
		t.Error("new sessions should be active")
	}
	if sess.StartedAt.IsZero() || sess.LastActivityAt.IsZero() {
		t.Error("timestamps should be set")
	}

	got, ok, err := tracker.Current(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if !ok {
		t.Fatal("expected an active session")
	}
	if got.ID != sess.ID {
		t.Errorf("expected session %q, got %q", sess.ID, got.ID)
	}
}

func TestTracker_StartEndsPrevious(t *testing.T) {
	store := NewMemoryStore()
	tracker := NewTracker(store)

	first, err := tracker.Start(context.Background(), "sess-1", "es")
	if err != nil {
		t.Fatalf("first Start failed: %v", err)
	}

	second, err := tracker.Start(context.Background(), "sess-1", "fr")
	if err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	if second.ID == first.ID {
		t.Error("restarting should create a fresh session")
	}

	// Only the new session is active, history is kept
	got, ok, err := tracker.Current(context.Background(), "sess-1")
	if err != nil || !ok {
		t.Fatalf("Current failed: ok=%v err=%v", ok, err)
	}
	if got.ID != second.ID {
		t.Errorf("expected the new session to be active, got %q", got.ID)
	}
	if got.LanguageCode != "fr" {
		t.Errorf("expected language 'fr', got %q", got.LanguageCode)
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 stored sessions, got %d", store.Len())
	}
}

func TestTracker_RecordActivity(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	if _, err := tracker.Start(context.Background(), "sess-1", "es"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, ok, err := tracker.RecordActivity(context.Background(), "sess-1", PageView); err != nil || !ok {
			t.Fatalf("RecordActivity failed: ok=%v err=%v", ok, err)
		}
	}
	sess, ok, err := tracker.RecordActivity(context.Background(), "sess-1", AITranslation)
	if err != nil || !ok {
		t.Fatalf("RecordActivity failed: ok=%v err=%v", ok, err)
	}

	if sess.PageViews != 3 {
		t.Errorf("expected 3 page views, got %d", sess.PageViews)
	}
	if sess.AITranslations != 1 {
		t.Errorf("expected 1 AI translation, got %d", sess.AITranslations)
	}
	if !sess.LastActivityAt.After(sess.StartedAt) && !sess.LastActivityAt.Equal(sess.StartedAt) {
		t.Errorf("last activity %v should not precede start %v", sess.LastActivityAt, sess.StartedAt)
	}
}

func TestTracker_RecordWithoutActive(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	_, ok, err := tracker.RecordActivity(context.Background(), "sess-1", PageView)
	if err != nil {
		t.Fatalf("RecordActivity failed: %v", err)
	}
	if ok {
		t.Error("recording without an active session is a no-op")
	}
}

func TestTracker_End(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	if _, err := tracker.Start(context.Background(), "sess-1", "es"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, _, err := tracker.RecordActivity(context.Background(), "sess-1", PageView); err != nil {
		t.Fatalf("RecordActivity failed: %v", err)
	}

	sess, ok, err := tracker.End(context.Background(), "sess-1")
	if err != nil || !ok {
		t.Fatalf("End failed: ok=%v err=%v", ok, err)
	}

	if sess.Active() {
		t.Error("ended sessions should not be active")
	}
	if sess.EndedAt == nil {
		t.Fatal("ended sessions should carry an end time")
	}
	if sess.PageViews != 1 {
		t.Errorf("counters should survive ending, got %d", sess.PageViews)
	}

	// No active session remains
	if _, ok, _ := tracker.Current(context.Background(), "sess-1"); ok {
		t.Error("expected no active session after End")
	}

	// Ending again is a no-op
	if _, ok, _ := tracker.End(context.Background(), "sess-1"); ok {
		t.Error("ending twice should report no active session")
	}
}

func TestTracker_SessionsIsolated(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	if _, err := tracker.Start(context.Background(), "sess-1", "es"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := tracker.Start(context.Background(), "sess-2", "fr"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, _, err := tracker.RecordActivity(context.Background(), "sess-1", PageView); err != nil {
		t.Fatalf("RecordActivity failed: %v", err)
	}

	got, ok, err := tracker.Current(context.Background(), "sess-2")
	if err != nil || !ok {
		t.Fatalf("Current failed: ok=%v err=%v", ok, err)
	}
	if got.PageViews != 0 {
		t.Errorf("activity on one session should not leak to another, got %d", got.PageViews)
	}
}

func TestMemoryStore_EndStampsTime(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &Session{ID: "id-1", SessionID: "sess-1", StartedAt: time.Now().UTC().Add(-time.Minute), LastActivityAt: time.Now().UTC().Add(-time.Minute)}
	if err := store.Insert(ctx, sess); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	at := time.Now().UTC()
	ended, ok, err := store.End(ctx, "sess-1", at)
	if err != nil || !ok {
		t.Fatalf("End failed: ok=%v err=%v", ok, err)
	}

	if !ended.EndedAt.Equal(at) {
		t.Errorf("expected end time %v, got %v", at, ended.EndedAt)
	}
	if !ended.LastActivityAt.Equal(at) {
		t.Errorf("ending should bump last activity, got %v", ended.LastActivityAt)
	}
}
