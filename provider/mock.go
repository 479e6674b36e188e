package provider

import "context"

// MockName is the backend identifier reported by MockProvider.
const MockName = "mock"

// MockProvider is a mock translation backend for testing.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Confidence   float64           // Confidence reported on success
	Err          error             // When set, Translate fails with this error
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":                "Hola",
			"World":                "Mundo",
			"Hello World":          "Hola Mundo",
			"Welcome to our site.": "Bienvenido a nuestro sitio.",
		},
		Confidence: 0.9,
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) (Translation, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return Translation{}, m.Err
	}

	if translation, ok := m.Translations[req.Content]; ok {
		return Translation{Text: translation, Confidence: m.Confidence, Backend: MockName}, nil
	}

	// Return bracketed text for unknown translations
	return Translation{Text: "[" + req.Content + "]", Confidence: m.Confidence, Backend: MockName}, nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
