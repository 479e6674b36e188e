package golingo

import (
	"errors"
	"testing"
)

func TestTranslationError(t *testing.T) {
	cause := errors.New("underlying error")
	err := &TranslationError{Message: "translation failed", Cause: cause}

	if err.Error() != "translation failed: underlying error" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	// Without cause
	err2 := &TranslationError{Message: "simple error"}
	if err2.Error() != "simple error" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestInvalidLanguageError(t *testing.T) {
	err := &InvalidLanguageError{Code: "xx"}

	if err.Error() != `language "xx" is not available` {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestBackendError(t *testing.T) {
	err := &BackendError{Message: "rate limited", Retryable: true}

	if err.Error() != "backend error: rate limited" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}

	// With backend name and cause
	cause := errors.New("timeout")
	err2 := &BackendError{Message: "request failed", Backend: "static", Cause: cause}

	if err2.Error() != "backend error (static): request failed: timeout" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}

	if !errors.Is(err2, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestStorageError(t *testing.T) {
	err := &StorageError{Op: "get", Message: "connection failed"}

	if err.Error() != "storage error (get): connection failed" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	cause := errors.New("dial tcp refused")
	err2 := &StorageError{Op: "put", Message: "write failed", Cause: cause}

	if err2.Error() != "storage error (put): write failed: dial tcp refused" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}

	if err2.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}
