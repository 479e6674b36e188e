package golingo

import (
	"strings"
	"testing"
)

func TestContentKey(t *testing.T) {
	key := ContentKey("Hello World", "en", "es")

	// SHA-256 = 64 hex chars
	if len(key) != 64 {
		t.Errorf("ContentKey length = %d, want 64", len(key))
	}
	for _, c := range key {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("ContentKey contains non-hex char %q", c)
			break
		}
	}

	// Same inputs produce the same key
	if again := ContentKey("Hello World", "en", "es"); again != key {
		t.Errorf("ContentKey not deterministic: %q != %q", again, key)
	}
}

func TestContentKey_Distinct(t *testing.T) {
	base := ContentKey("Hello World", "en", "es")

	tests := []struct {
		name    string
		content string
		source  string
		target  string
	}{
		{"different content", "Hello world", "en", "es"},
		{"different source", "Hello World", "en_US", "es"},
		{"different target", "Hello World", "en", "fr"},
		{"leading whitespace preserved", " Hello World", "en", "es"},
		{"trailing whitespace preserved", "Hello World ", "en", "es"},
		{"empty content", "", "en", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentKey(tt.content, tt.source, tt.target); got == base {
				t.Errorf("ContentKey(%q, %q, %q) should not collide with base key", tt.content, tt.source, tt.target)
			}
		})
	}
}

func TestContentKey_SwappedLangs(t *testing.T) {
	forward := ContentKey("Hello", "en", "es")
	reverse := ContentKey("Hello", "es", "en")

	if forward == reverse {
		t.Error("swapping source and target langs should change the key")
	}
}

func TestShortKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"full key", "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e", "a591a6d4"},
		{"exactly eight", "abcd1234", "abcd1234"},
		{"shorter than eight", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortKey(tt.key); got != tt.expected {
				t.Errorf("ShortKey(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}
