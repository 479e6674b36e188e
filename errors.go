package golingo

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// InvalidLanguageError indicates a language code that is unknown or disabled.
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("language %q is not available", e.Code)
}

// BackendError indicates a translation backend failure (API error, rate limit, etc.).
type BackendError struct {
	Message   string
	Cause     error
	Backend   string // Backend identifier, when known
	Retryable bool   // Whether the operation can be retried
}

func (e *BackendError) Error() string {
	prefix := "backend error"
	if e.Backend != "" {
		prefix = fmt.Sprintf("backend error (%s)", e.Backend)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// StorageError indicates a cache store failure. It is distinct from a cache
// miss: a miss is reported through the Store interface's ok result, never as
// an error.
type StorageError struct {
	Op      string // The store operation that failed ("get", "put", ...)
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error (%s): %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error (%s): %s", e.Op, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
