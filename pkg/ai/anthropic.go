package ai

import "github.com/rs/zerolog"

// Anthropic serves an OpenAI compatible chat completions endpoint, so the same
// client reaches Claude models by swapping the base URL.
const (
	AnthropicBaseURL      = "https://api.anthropic.com/v1/"
	AnthropicDefaultModel = "claude-sonnet-4-5"
)

// NewGenerator builds the generator for cfg.Provider. Anthropic is the default.
func NewGenerator(cfg Config, logger zerolog.Logger) (*ChatGenerator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
	default:
		cfg.Provider = ProviderAnthropic
		if cfg.BaseURL == "" {
			cfg.BaseURL = AnthropicBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = AnthropicDefaultModel
		}
	}
	return NewChatGenerator(cfg, logger)
}
