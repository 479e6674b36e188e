package golingo

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Translator is the main translation engine.
type Translator struct {
	provider   Provider
	store      Store
	languages  *Registry
	sourceLang string
	ttl        time.Duration
	logger     *zap.Logger
}

// Provider is the interface for translation backends.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) (Translation, error)
}

// Store is the interface for translation cache persistence.
//
// Get returns only live entries (expiry is checked at lookup time) and
// atomically increments the entry's usage count, returning the updated
// entry. A miss is (nil, false, nil); store failures are reported as a
// *StorageError so callers can tell a miss from an outage.
//
// Put inserts the entry as given. Stores are append-friendly: Put never
// reconciles earlier entries for the same key.
type Store interface {
	Get(ctx context.Context, key, sourceLang, targetLang string) (*CacheEntry, bool, error)
	Put(ctx context.Context, entry *CacheEntry) error
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithStore sets the translation cache store.
func WithStore(store Store) TranslatorOption {
	return func(t *Translator) {
		t.store = store
	}
}

// WithSourceLang sets the default source language.
func WithSourceLang(lang string) TranslatorOption {
	return func(t *Translator) {
		t.sourceLang = lang
	}
}

// WithTTL sets the default time to live for cached translations.
func WithTTL(ttl time.Duration) TranslatorOption {
	return func(t *Translator) {
		t.ttl = ttl
	}
}

// WithLanguages sets the language registry used for validation.
func WithLanguages(reg *Registry) TranslatorOption {
	return func(t *Translator) {
		t.languages = reg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// NewTranslator creates a new Translator with the given backend.
// Without WithStore, caching is disabled and every request hits the backend.
func NewTranslator(provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		provider:   provider,
		languages:  DefaultRegistry(),
		sourceLang: DefaultLanguage,
		ttl:        DefaultTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate translates content, consulting the cache first unless the
// request disables it. Cache misses go to the backend and the result is
// stored before returning. Backend failures are reported as a *BackendError
// and nothing is cached; store failures surface as a *StorageError.
func (t *Translator) Translate(ctx context.Context, req TranslateRequest) (*Result, error) {
	if req.SourceLang == "" {
		req.SourceLang = t.sourceLang
	}
	if req.Context == "" {
		req.Context = DefaultContext
	}

	if err := t.languages.Validate(req.SourceLang); err != nil {
		return nil, err
	}
	if err := t.languages.Validate(req.TargetLang); err != nil {
		return nil, err
	}

	if !req.NoCache {
		entry, ok, err := t.GetCached(ctx, req.Content, req.SourceLang, req.TargetLang)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Result{
				TranslatedContent: entry.Translated,
				ConfidenceScore:   entry.Confidence,
				Cached:            true,
				Backend:           entry.Backend,
			}, nil
		}
	}

	if t.provider == nil {
		return nil, &BackendError{Message: "no backend configured"}
	}

	translation, err := t.provider.Translate(ctx, req)
	if err != nil {
		var backendErr *BackendError
		if errors.As(err, &backendErr) {
			return nil, err
		}
		return nil, &BackendError{Message: "translate failed", Cause: err}
	}

	if !req.NoCache && t.store != nil {
		_, err := t.Store(ctx, StoreRequest{
			Content:    req.Content,
			Translated: translation.Text,
			SourceLang: req.SourceLang,
			TargetLang: req.TargetLang,
			Backend:    translation.Backend,
			Confidence: translation.Confidence,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		TranslatedContent: translation.Text,
		ConfidenceScore:   translation.Confidence,
		Cached:            false,
		Backend:           translation.Backend,
	}, nil
}

// TranslateText is a convenience method for translating with default source
// language and context.
func (t *Translator) TranslateText(ctx context.Context, content, targetLang string) (*Result, error) {
	return t.Translate(ctx, TranslateRequest{Content: content, TargetLang: targetLang})
}

// GetCached looks up a live cached translation. A hit increments the
// entry's usage count. A miss is (nil, false, nil); a store failure is
// (nil, false, err) with a *StorageError.
func (t *Translator) GetCached(ctx context.Context, content, sourceLang, targetLang string) (*CacheEntry, bool, error) {
	if t.store == nil {
		return nil, false, nil
	}

	key := ContentKey(content, sourceLang, targetLang)
	entry, ok, err := t.store.Get(ctx, key, sourceLang, targetLang)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	t.logger.Debug("cache hit",
		zap.String("key", ShortKey(key)),
		zap.Int64("usage", entry.UsageCount),
	)
	return entry, true, nil
}

// Store caches a translation directly. The entry's usage count starts at 1
// and its expiry is now plus the request TTL (DefaultTTL when zero; a
// negative TTL produces an entry that is already expired).
func (t *Translator) Store(ctx context.Context, req StoreRequest) (*CacheEntry, error) {
	if t.store == nil {
		return nil, &StorageError{Op: "put", Message: "no store configured"}
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = t.ttl
	}

	now := time.Now().UTC()
	entry := &CacheEntry{
		Key:        ContentKey(req.Content, req.SourceLang, req.TargetLang),
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Content:    req.Content,
		Translated: req.Translated,
		Backend:    req.Backend,
		Confidence: req.Confidence,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		UsageCount: 1,
	}

	if err := t.store.Put(ctx, entry); err != nil {
		return nil, err
	}

	t.logger.Info("cached translation",
		zap.String("key", ShortKey(entry.Key)),
		zap.String("source", entry.SourceLang),
		zap.String("target", entry.TargetLang),
	)
	return entry, nil
}

// SourceLang returns the default source language.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

// TTL returns the default time to live for cached translations.
func (t *Translator) TTL() time.Duration {
	return t.ttl
}

// Languages returns the language registry used for validation.
func (t *Translator) Languages() *Registry {
	return t.languages
}
