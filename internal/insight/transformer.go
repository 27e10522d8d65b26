package insight

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/pkg/ai"
)

// Transformer prompts a text generator and decodes its answers into typed results.
// Every call is a single upstream request; failures are returned as is.
type Transformer struct {
	generator ai.Generator
	logger    zerolog.Logger
}

// NewTransformer constructs a transformer backed by generator.
func NewTransformer(generator ai.Generator, logger zerolog.Logger) *Transformer {
	return &Transformer{
		generator: generator,
		logger:    logger.With().Str("component", "ai_transform").Logger(),
	}
}

// RecruitCreators suggests creator profiles for city.
func (t *Transformer) RecruitCreators(ctx context.Context, city string) ([]CreatorProfile, error) {
	text, err := t.generator.Generate(ctx, recruitCreatorsPrompt(city))
	if err != nil {
		return nil, err
	}

	creators, defaults, err := DecodeCreators(text)
	if err != nil {
		t.logger.Warn().Err(err).Str("operation", "recruit-creators").Msg("undecodable AI response")
		return nil, err
	}
	t.logDefaults("recruit-creators", len(creators), defaults)
	return creators, nil
}

// AnalyzeGaps reports content coverage gaps across cities.
func (t *Transformer) AnalyzeGaps(ctx context.Context) ([]CityGap, error) {
	text, err := t.generator.Generate(ctx, analyzeGapsPrompt())
	if err != nil {
		return nil, err
	}

	gaps, defaults, err := DecodeGaps(text)
	if err != nil {
		t.logger.Warn().Err(err).Str("operation", "analyze-gaps").Msg("undecodable AI response")
		return nil, err
	}
	t.logDefaults("analyze-gaps", len(gaps), defaults)
	return gaps, nil
}

// GenerateViralContent writes a caption and badges for a food explorer.
func (t *Transformer) GenerateViralContent(ctx context.Context, userName string, cities []string, cuisine string) (ViralContent, error) {
	text, err := t.generator.Generate(ctx, generateViralPrompt(userName, cities, cuisine))
	if err != nil {
		return ViralContent{}, err
	}

	content, defaults, err := DecodeViralContent(text, cities)
	if err != nil {
		t.logger.Warn().Err(err).Str("operation", "generate-viral").Msg("undecodable AI response")
		return ViralContent{}, err
	}
	t.logDefaults("generate-viral", len(content.Badges), defaults)
	return content, nil
}

func (t *Transformer) logDefaults(operation string, items int, defaults Defaults) {
	if len(defaults) == 0 {
		return
	}
	t.logger.Debug().
		Str("operation", operation).
		Int("items", items).
		Int("defaults_applied", len(defaults)).
		Strs("fields", defaults.Fields()).
		Msg("filled missing fields in AI response")
}
