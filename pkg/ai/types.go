package ai

import (
	"context"
	"errors"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

var (
	// ErrMissingAPIKey is returned when a generator is built without credentials.
	ErrMissingAPIKey = errors.New("ai api key is required")
	// ErrEmptyResponse is returned when the model answers without any choice or text.
	ErrEmptyResponse = errors.New("ai response was empty")
	// ErrNonTextContent is returned when the model answers with something other than text.
	ErrNonTextContent = errors.New("unexpected response type from AI")
)

// Generator turns a prompt into free text. One call is one upstream request.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and tunes a text generation backend.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float32
}
