// Package catalog provides UI message lookup with language fallback.
package catalog

import (
	"sort"
	"sync"

	"github.com/ZaguanLabs/golingo"
)

// Message is a single UI string in one language.
type Message struct {
	Key          string `json:"key"`
	LanguageCode string `json:"languageCode"`
	Value        string `json:"value"`
	Namespace    string `json:"namespace,omitempty"`
}

// Catalog is a thread-safe set of UI messages keyed by language and key.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]Message // language → key → message
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		messages: make(map[string]map[string]Message),
	}
}

// Default creates a catalog seeded with the built-in messages.
func Default() *Catalog {
	c := New()
	c.Add(DefaultMessages()...)
	return c
}

// Add inserts messages, replacing existing ones with the same language and key.
func (c *Catalog) Add(msgs ...Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, msg := range msgs {
		byKey, ok := c.messages[msg.LanguageCode]
		if !ok {
			byKey = make(map[string]Message)
			c.messages[msg.LanguageCode] = byKey
		}
		byKey[msg.Key] = msg
	}
}

// Lookup returns the exact message value for a key and language.
func (c *Catalog) Lookup(key, lang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msg, ok := c.messages[lang][key]
	if !ok {
		return "", false
	}
	return msg.Value, true
}

// Get returns the message for a key with fallback: exact language, then
// English, then the given fallback, then the key itself.
func (c *Catalog) Get(key, lang, fallback string) string {
	if value, ok := c.Lookup(key, lang); ok {
		return value
	}

	if lang != golingo.DefaultLanguage {
		if value, ok := c.Lookup(key, golingo.DefaultLanguage); ok {
			return value
		}
	}

	if fallback != "" {
		return fallback
	}
	return key
}

// All returns every message for a language as a key→value map.
func (c *Catalog) All(lang string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.messages[lang]))
	for key, msg := range c.messages[lang] {
		out[key] = msg.Value
	}
	return out
}

// Namespace returns the messages for a language restricted to one namespace.
func (c *Catalog) Namespace(lang, namespace string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string)
	for key, msg := range c.messages[lang] {
		if msg.Namespace == namespace {
			out[key] = msg.Value
		}
	}
	return out
}

// Messages returns all messages sorted by language, then key.
func (c *Catalog) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var msgs []Message
	for _, byKey := range c.messages {
		for _, msg := range byKey {
			msgs = append(msgs, msg)
		}
	}

	sortMessages(msgs)
	return msgs
}

// sortMessages orders messages by language, then key.
func sortMessages(msgs []Message) {
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].LanguageCode != msgs[j].LanguageCode {
			return msgs[i].LanguageCode < msgs[j].LanguageCode
		}
		return msgs[i].Key < msgs[j].Key
	})
}

// Len returns the total number of messages across all languages.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, byKey := range c.messages {
		n += len(byKey)
	}
	return n
}
