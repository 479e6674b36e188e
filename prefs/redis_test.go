package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/ZaguanLabs/golingo"
)

func testPreference() *Preference {
	return &Preference{
		ID:           "pref-1",
		UserID:       "user-1",
		LanguageCode: "es",
		Source:       SourceUserSelection,
		Active:       true,
		CreatedAt:    time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisStore_SaveAndActive(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	pref := testPreference()
	raw, err := json.Marshal(pref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectSet("test:pref:user:user-1", raw, 0).SetVal("OK")

	if err := s.Save(context.Background(), pref); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mock.ExpectGet("test:pref:user:user-1").SetVal(string(raw))

	got, ok, err := s.Active(context.Background(), Subject{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if !ok {
		t.Fatal("expected an active preference")
	}
	if got.LanguageCode != "es" || got.ID != "pref-1" {
		t.Errorf("preference should round-trip, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_SaveBothScopes(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	pref := testPreference()
	pref.SessionID = "sess-1"
	raw, err := json.Marshal(pref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// One SET per scope the preference names
	mock.ExpectSet("test:pref:user:user-1", raw, 0).SetVal("OK")
	mock.ExpectSet("test:pref:session:sess-1", raw, 0).SetVal("OK")

	if err := s.Save(context.Background(), pref); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_ActiveFallsBackToSession(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	pref := testPreference()
	pref.UserID = ""
	pref.SessionID = "sess-1"
	raw, err := json.Marshal(pref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectGet("test:pref:user:user-1").RedisNil()
	mock.ExpectGet("test:pref:session:sess-1").SetVal(string(raw))

	got, ok, err := s.Active(context.Background(), Subject{UserID: "user-1", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if !ok {
		t.Fatal("expected the session preference")
	}
	if got.SessionID != "sess-1" {
		t.Errorf("expected session preference, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_ActiveMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	mock.ExpectGet("test:pref:user:user-1").RedisNil()
	mock.ExpectGet("test:pref:session:sess-1").RedisNil()

	_, ok, err := s.Active(context.Background(), Subject{UserID: "user-1", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if ok {
		t.Error("expected a miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_ActiveZeroSubject(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	// No Redis calls for a zero subject
	_, ok, err := s.Active(context.Background(), Subject{})
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if ok {
		t.Error("expected a miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_ActiveCorrupt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	mock.ExpectGet("test:pref:user:user-1").SetVal("not json")

	_, _, err := s.Active(context.Background(), Subject{UserID: "user-1"})

	var storageErr *golingo.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %T", err)
	}
}

func TestRedisStore_ActiveError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "test:pref:")

	mock.ExpectGet("test:pref:user:user-1").SetErr(errors.New("connection refused"))

	_, _, err := s.Active(context.Background(), Subject{UserID: "user-1"})

	var storageErr *golingo.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if storageErr.Op != "get" {
		t.Errorf("expected op 'get', got %q", storageErr.Op)
	}
}

func TestRedisStore_DefaultKeyPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStoreFromClient(db, "")

	mock.ExpectGet(DefaultRedisKeyPrefix + "user:user-1").RedisNil()

	if _, ok, _ := s.Active(context.Background(), Subject{UserID: "user-1"}); ok {
		t.Error("expected a miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
