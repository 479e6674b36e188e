package golingo

import "time"

// DefaultTTL is how long a cached translation stays live when no TTL is given.
const DefaultTTL = 168 * time.Hour

// DefaultContext is the translation context used when a request leaves it empty.
const DefaultContext = "general"

// CacheEntry is a cached translation. Entries are append-friendly: several
// rows may exist for the same key, and lookups treat the live row with the
// latest expiry as authoritative.
type CacheEntry struct {
	Key        string    `json:"key"`
	SourceLang string    `json:"sourceLang"`
	TargetLang string    `json:"targetLang"`
	Content    string    `json:"content"`
	Translated string    `json:"translatedContent"`
	Backend    string    `json:"backend"`
	Confidence float64   `json:"confidenceScore"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	UsageCount int64     `json:"usageCount"`
}

// Live reports whether the entry has not expired as of the given time.
func (e *CacheEntry) Live(at time.Time) bool {
	return e.ExpiresAt.After(at)
}

// TranslateRequest contains the parameters for a translation request.
type TranslateRequest struct {
	Content    string // Content to translate
	TargetLang string // Target language code (e.g., "es")
	SourceLang string // Source language code (default: "en")
	Context    string // Disambiguation context (default: "general")
	NoCache    bool   // Skip cache lookup and storage
}

// Translation is a backend's answer for a single translation request.
type Translation struct {
	Text       string  // Translated text
	Confidence float64 // Backend confidence in [0, 1]
	Backend    string  // Backend identifier (e.g., "static")
}

// StoreRequest contains the parameters for caching a translation directly.
type StoreRequest struct {
	Content    string        // Original content
	Translated string        // Translated content
	SourceLang string        // Source language code
	TargetLang string        // Target language code
	Backend    string        // Backend identifier
	Confidence float64       // Backend confidence in [0, 1]
	TTL        time.Duration // Time to live (0 = DefaultTTL, negative = already expired)
}

// Result is the outcome of a translation operation.
type Result struct {
	TranslatedContent string  `json:"translatedContent"`
	ConfidenceScore   float64 `json:"confidenceScore"`
	Cached            bool    `json:"cached"`
	Backend           string  `json:"backend"`
}
