package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/golingo"
)

// OpenAIName is the backend identifier reported by OpenAI.
const OpenAIName = "openai"

// OpenAIConfidence is the confidence reported when the model omits one.
const OpenAIConfidence = 0.9

// OpenAI implements the backend interface using OpenAI's API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	languages   *golingo.Registry
}

// OpenAIConfig holds configuration for the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAI creates a new OpenAI backend.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		languages:   golingo.DefaultRegistry(),
	}
}

// Translate translates the request content using OpenAI.
func (p *OpenAI) Translate(ctx context.Context, req TranslateRequest) (Translation, error) {
	systemPrompt := p.buildSystemPrompt(req)
	userMessage := p.buildUserMessage(req)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Translation{}, &golingo.BackendError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Backend:   OpenAIName,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return Translation{}, &golingo.BackendError{
			Message:   "no response from OpenAI",
			Backend:   OpenAIName,
			Retryable: true,
		}
	}

	text, confidence, err := p.parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return Translation{}, err
	}
	if confidence <= 0 || confidence > 1 {
		confidence = OpenAIConfidence
	}

	return Translation{Text: text, Confidence: confidence, Backend: OpenAIName}, nil
}

func (p *OpenAI) buildSystemPrompt(req TranslateRequest) string {
	targetName := p.languageName(req.TargetLang)

	contextText := "The content is general web content."
	if req.Context != "" && req.Context != golingo.DefaultContext {
		contextText = fmt.Sprintf("The content is for: %s. Adapt the tone to be appropriate for this context.", req.Context)
	}

	prompt := fmt.Sprintf(`# Role
You are an expert native translator. You translate content to %s with the fluency and nuance of a highly educated native speaker.

# Context
%s

# Task
Translate the provided text into idiomatic %s.

# Style Guide
- **Natural Flow**: Avoid literal translations. Rephrase sentences to sound completely natural to a native speaker.
- **Vocabulary**: Use precise, culturally relevant terminology. Avoid awkward "translationese" or robotic phrasing.
- **Idioms**: Never translate idioms literally. Replace English idioms with natural %s equivalents.
- **Interpolation**: Do NOT translate variables or placeholders (e.g., {{name}}, {count}, %%s, $1).
- **Formatting**: Preserve meaningful whitespace (leading/trailing spaces, multiple spaces, newlines). Use idiomatic punctuation for the target language.`, targetName, contextText, targetName, targetName)

	prompt += fmt.Sprintf("\n\n# Quality Check\nAfter translating, verify the result sounds like native %s and not a calque. If it sounds like a literal translation, rewrite it naturally.", targetName)

	prompt += `

# Format
Return a valid JSON object with a "translation" key holding the translated text, and optionally a "confidence" key holding a number between 0 and 1.
Example: { "translation": "translated text", "confidence": 0.95 }
Do NOT wrap the response in Markdown code blocks.`

	return prompt
}

func (p *OpenAI) buildUserMessage(req TranslateRequest) string {
	payload := struct {
		Text       string `json:"text"`
		SourceLang string `json:"sourceLang,omitempty"`
	}{Text: req.Content, SourceLang: req.SourceLang}

	data, _ := json.Marshal(payload)
	return string(data)
}

func (p *OpenAI) parseResponse(content string) (string, float64, error) {
	var obj struct {
		Translation string  `json:"translation"`
		Confidence  float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &obj); err == nil && obj.Translation != "" {
		return obj.Translation, obj.Confidence, nil
	}

	// Some models answer under a different key; take the first string value.
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(content), &raw); err == nil {
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				return s, 0, nil
			}
		}
	}

	var direct string
	if err := json.Unmarshal([]byte(content), &direct); err == nil && direct != "" {
		return direct, 0, nil
	}

	return "", 0, &golingo.BackendError{
		Message: "invalid response format from OpenAI",
		Backend: OpenAIName,
	}
}

// languageName resolves a code to its English display name for prompting.
// Unknown codes pass through unchanged.
func (p *OpenAI) languageName(code string) string {
	if lang, ok := p.languages.Get(code); ok {
		return lang.EnglishName
	}
	if lang, ok := p.languages.Get(golingo.BaseLang(code)); ok {
		return lang.EnglishName
	}
	return code
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAI implements Provider
var _ Provider = (*OpenAI)(nil)
