package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ZaguanLabs/golingo"
)

func newTestEntry(content, sourceLang, targetLang, translated string, ttl time.Duration) *golingo.CacheEntry {
	now := time.Now().UTC()
	return &golingo.CacheEntry{
		Key:        golingo.ContentKey(content, sourceLang, targetLang),
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Content:    content,
		Translated: translated,
		Backend:    "static",
		Confidence: 0.85,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		UsageCount: 1,
	}
}

func TestMemoryStore_PutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := newTestEntry("Hello", "en", "es", "Hola", time.Hour)
	if err := s.Put(ctx, entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(ctx, entry.Key, "en", "es")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}

	if got.Translated != "Hola" {
		t.Errorf("expected 'Hola', got %q", got.Translated)
	}
	if got.Backend != "static" || got.Confidence != 0.85 {
		t.Errorf("entry fields should round-trip, got %+v", got)
	}

	// Every hit increments the usage count
	if got.UsageCount != 2 {
		t.Errorf("expected usage count 2, got %d", got.UsageCount)
	}

	got2, _, _ := s.Get(ctx, entry.Key, "en", "es")
	if got2.UsageCount != 3 {
		t.Errorf("expected usage count 3, got %d", got2.UsageCount)
	}
}

func TestMemoryStore_Miss(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get(context.Background(), "no-such-key", "en", "es")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("unknown keys should miss")
	}
}

func TestMemoryStore_LangMismatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := newTestEntry("Hello", "en", "es", "Hola", time.Hour)
	if err := s.Put(ctx, entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// The language filters guard against key collisions
	if _, ok, _ := s.Get(ctx, entry.Key, "en", "fr"); ok {
		t.Error("target language mismatch should miss")
	}
	if _, ok, _ := s.Get(ctx, entry.Key, "es", "es"); ok {
		t.Error("source language mismatch should miss")
	}
}

func TestMemoryStore_ExpiredMiss(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := newTestEntry("Hello", "en", "es", "Hola", -time.Minute)
	if err := s.Put(ctx, entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	_, ok, err := s.Get(ctx, entry.Key, "en", "es")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expired entries should miss")
	}

	// Expired rows are retained, not reaped
	if s.Len() != 1 {
		t.Errorf("expected 1 retained entry, got %d", s.Len())
	}
}

func TestMemoryStore_DuplicatesLatestExpiryWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	older := newTestEntry("Hello", "en", "es", "stale translation", time.Hour)
	newer := newTestEntry("Hello", "en", "es", "Hola", 2*time.Hour)

	if err := s.Put(ctx, older); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, newer); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(ctx, older.Key, "en", "es")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}

	if got.Translated != "Hola" {
		t.Errorf("the entry with the latest expiry should win, got %q", got.Translated)
	}
	if s.Len() != 2 {
		t.Errorf("both duplicates should be retained, got %d", s.Len())
	}
}

func TestMemoryStore_DuplicateExpiredFallsBack(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	live := newTestEntry("Hello", "en", "es", "Hola", time.Hour)
	expired := newTestEntry("Hello", "en", "es", "dead translation", -time.Minute)

	if err := s.Put(ctx, live); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, expired); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(ctx, live.Key, "en", "es")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}

	// The live duplicate serves even when an expired one was stored later
	if got.Translated != "Hola" {
		t.Errorf("expected the live entry, got %q", got.Translated)
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, newTestEntry("Hello", "en", "es", "Hola", time.Hour)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, newTestEntry("World", "en", "es", "Mundo", time.Hour)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d", s.Len())
	}
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := newTestEntry("Hello", "en", "es", "Hola", time.Hour)
	if err := s.Put(ctx, entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	const hits = 50
	var wg sync.WaitGroup
	for i := 0; i < hits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, err := s.Get(ctx, entry.Key, "en", "es"); err != nil || !ok {
				t.Errorf("concurrent Get failed: ok=%v err=%v", ok, err)
			}
		}()
	}
	wg.Wait()

	// No increments may be lost
	got, _, _ := s.Get(ctx, entry.Key, "en", "es")
	if want := int64(hits + 2); got.UsageCount != want {
		t.Errorf("expected usage count %d, got %d", want, got.UsageCount)
	}
}
