package provider

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_Translate(t *testing.T) {
	p := NewMockProvider()

	result, err := p.Translate(context.Background(), TranslateRequest{
		Content:    "Hello",
		SourceLang: "en",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.Text != "Hola" {
		t.Errorf("expected 'Hola', got %q", result.Text)
	}
	if result.Backend != MockName {
		t.Errorf("expected backend %q, got %q", MockName, result.Backend)
	}
	if result.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", result.Confidence)
	}
}

func TestMockProvider_UnknownContent(t *testing.T) {
	p := NewMockProvider()

	result, err := p.Translate(context.Background(), TranslateRequest{
		Content:    "Something new",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.Text != "[Something new]" {
		t.Errorf("expected bracketed fallback, got %q", result.Text)
	}
}

func TestMockProvider_Err(t *testing.T) {
	p := NewMockProvider()
	p.Err = errors.New("injected failure")

	_, err := p.Translate(context.Background(), TranslateRequest{
		Content:    "Hello",
		TargetLang: "es",
	})
	if !errors.Is(err, p.Err) {
		t.Errorf("expected injected error, got %v", err)
	}

	// Failed calls are still counted
	if p.CallCount != 1 {
		t.Errorf("expected call count 1, got %d", p.CallCount)
	}
}

func TestMockProvider_Recording(t *testing.T) {
	p := NewMockProvider()

	req := TranslateRequest{
		Content:    "Hello",
		SourceLang: "en",
		TargetLang: "es",
		Context:    "greeting",
	}

	for i := 0; i < 3; i++ {
		if _, err := p.Translate(context.Background(), req); err != nil {
			t.Fatalf("Translate failed: %v", err)
		}
	}

	if p.CallCount != 3 {
		t.Errorf("expected call count 3, got %d", p.CallCount)
	}
	if p.LastRequest == nil || p.LastRequest.Context != "greeting" {
		t.Errorf("last request should be recorded, got %+v", p.LastRequest)
	}

	p.Reset()

	if p.CallCount != 0 || p.LastRequest != nil {
		t.Error("Reset should clear the call count and last request")
	}
}
