package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "islandgo",
		Subsystem: "ai",
		Name:      "generation_duration_seconds",
		Help:      "Duration of AI text generation requests",
	}, []string{"provider", "model"})

	aiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "islandgo",
		Subsystem: "ai",
		Name:      "generation_failures_total",
		Help:      "Number of AI text generation failures",
	}, []string{"provider", "model"})
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultMaxTokens   = 4096
)

// ChatGenerator implements Generator against an OpenAI compatible chat completion API.
type ChatGenerator struct {
	client *openai.Client
	cfg    Config
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewChatGenerator builds a generator using the provided configuration.
func NewChatGenerator(cfg Config, logger zerolog.Logger) (*ChatGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}

	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &ChatGenerator{
		client: openai.NewClientWithConfig(config),
		cfg:    cfg,
		tracer: otel.Tracer("github.com/noah-isme/islandgo-api/pkg/ai"),
		logger: logger.With().Str("component", "ai_generator").Str("provider", cfg.Provider).Logger(),
	}, nil
}

// Model reports the model requests are sent to.
func (g *ChatGenerator) Model() string {
	return g.cfg.Model
}

// Generate sends prompt as a single user message and returns the text answer.
func (g *ChatGenerator) Generate(parent context.Context, prompt string) (string, error) {
	ctx, span := g.tracer.Start(parent, "ai.generate", trace.WithAttributes(
		attribute.String("ai.provider", g.cfg.Provider),
		attribute.String("ai.model", g.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	aiDuration.WithLabelValues(g.cfg.Provider, g.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", g.fail(span, fmt.Errorf("%s generate: %w", g.cfg.Provider, err))
	}

	if len(resp.Choices) == 0 {
		return "", g.fail(span, ErrEmptyResponse)
	}

	text, err := messageText(resp.Choices[0].Message)
	if err != nil {
		return "", g.fail(span, err)
	}

	span.SetAttributes(attribute.Int("ai.completion_tokens", resp.Usage.CompletionTokens))
	g.logger.Debug().
		Str("model", g.cfg.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("generation completed")

	return text, nil
}

func (g *ChatGenerator) fail(span trace.Span, err error) error {
	aiFailures.WithLabelValues(g.cfg.Provider, g.cfg.Model).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// messageText accepts plain content or multi-part content made only of text parts.
func messageText(message openai.ChatCompletionMessage) (string, error) {
	if text := strings.TrimSpace(message.Content); text != "" {
		return text, nil
	}

	if len(message.MultiContent) == 0 {
		return "", ErrEmptyResponse
	}

	builder := strings.Builder{}
	for _, part := range message.MultiContent {
		if part.Type != openai.ChatMessagePartTypeText {
			return "", ErrNonTextContent
		}
		builder.WriteString(part.Text)
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
