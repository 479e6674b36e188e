package golingo

import (
	"context"
	"errors"
	"sync"
)

// batchParallelThreshold is the minimum number of distinct contents that
// triggers parallel cache lookups.
const batchParallelThreshold = 5

// BatchResult is the outcome of a batch translation.
type BatchResult struct {
	Translations map[string]string // content to translated text
	Cached       int               // results served from the cache
	Translated   int               // results produced by the backend
}

// TranslateBatch translates several contents into the target language.
// Contents are deduplicated and each is resolved against the cache before
// the backend is called; lookups for larger batches run in parallel. A
// backend or store failure fails the whole batch.
func (t *Translator) TranslateBatch(ctx context.Context, contents []string, targetLang string) (*BatchResult, error) {
	result := &BatchResult{Translations: make(map[string]string)}
	if len(contents) == 0 {
		return result, nil
	}

	if err := t.languages.Validate(t.sourceLang); err != nil {
		return nil, err
	}
	if err := t.languages.Validate(targetLang); err != nil {
		return nil, err
	}

	unique := dedupe(contents)

	hits, misses, err := t.lookupBatch(ctx, unique, targetLang)
	if err != nil {
		return nil, err
	}

	for content, entry := range hits {
		result.Translations[content] = entry.Translated
	}
	result.Cached = len(hits)

	if len(misses) > 0 && t.provider == nil {
		return nil, &BackendError{Message: "no backend configured"}
	}

	for _, content := range misses {
		translation, err := t.provider.Translate(ctx, TranslateRequest{
			Content:    content,
			TargetLang: targetLang,
			SourceLang: t.sourceLang,
			Context:    DefaultContext,
		})
		if err != nil {
			var backendErr *BackendError
			if errors.As(err, &backendErr) {
				return nil, err
			}
			return nil, &BackendError{Message: "translate failed", Cause: err}
		}

		if t.store != nil {
			_, err := t.Store(ctx, StoreRequest{
				Content:    content,
				Translated: translation.Text,
				SourceLang: t.sourceLang,
				TargetLang: targetLang,
				Backend:    translation.Backend,
				Confidence: translation.Confidence,
			})
			if err != nil {
				return nil, err
			}
		}

		result.Translations[content] = translation.Text
		result.Translated++
	}

	return result, nil
}

// lookupBatch resolves cached entries for the given contents, returning the
// hits and the missed contents in input order.
func (t *Translator) lookupBatch(ctx context.Context, contents []string, targetLang string) (map[string]*CacheEntry, []string, error) {
	hits := make(map[string]*CacheEntry)

	if t.store == nil {
		return hits, contents, nil
	}

	// Sequential lookup for small batches
	if len(contents) < batchParallelThreshold {
		var misses []string
		for _, content := range contents {
			entry, ok, err := t.GetCached(ctx, content, t.sourceLang, targetLang)
			if err != nil {
				return nil, nil, err
			}
			if ok {
				hits[content] = entry
			} else {
				misses = append(misses, content)
			}
		}
		return hits, misses, nil
	}

	type lookupResult struct {
		content string
		entry   *CacheEntry
		ok      bool
		err     error
	}

	results := make(chan lookupResult, len(contents))
	var wg sync.WaitGroup

	for _, content := range contents {
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			entry, ok, err := t.GetCached(ctx, c, t.sourceLang, targetLang)
			results <- lookupResult{content: c, entry: entry, ok: ok, err: err}
		}(content)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	missed := make(map[string]bool)
	var firstErr error
	for res := range results {
		switch {
		case res.err != nil:
			if firstErr == nil {
				firstErr = res.err
			}
		case res.ok:
			hits[res.content] = res.entry
		default:
			missed[res.content] = true
		}
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}

	// Misses keep the input order
	var misses []string
	for _, content := range contents {
		if missed[content] {
			misses = append(misses, content)
		}
	}
	return hits, misses, nil
}

// dedupe returns the distinct contents in first-appearance order.
func dedupe(contents []string) []string {
	seen := make(map[string]bool, len(contents))
	var unique []string
	for _, content := range contents {
		if !seen[content] {
			seen[content] = true
			unique = append(unique, content)
		}
	}
	return unique
}
