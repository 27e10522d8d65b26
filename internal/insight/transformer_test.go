package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func TestTransformerRecruitCreators(t *testing.T) {
	generator := &stubGenerator{text: `[{"name":"Sarah Martinez","instagramHandle":"@sm"}]`}
	transformer := NewTransformer(generator, zerolog.Nop())

	creators, err := transformer.RecruitCreators(context.Background(), "Austin")
	require.NoError(t, err)
	require.Len(t, creators, 1)
	require.Equal(t, "SM", creators[0].Initial)
	require.Len(t, generator.prompts, 1)
	require.Contains(t, generator.prompts[0], "Austin")
}

func TestTransformerPropagatesFailuresWithoutRetry(t *testing.T) {
	upstream := errors.New("upstream unavailable")
	generator := &stubGenerator{err: upstream}
	transformer := NewTransformer(generator, zerolog.Nop())

	_, err := transformer.AnalyzeGaps(context.Background())
	require.ErrorIs(t, err, upstream)
	require.Len(t, generator.prompts, 1)

	generator = &stubGenerator{text: "sorry, nothing"}
	transformer = NewTransformer(generator, zerolog.Nop())
	_, err = transformer.GenerateViralContent(context.Background(), "Maya", []string{"Reno"}, "Thai")
	require.ErrorIs(t, err, ErrNoJSON)
	require.Len(t, generator.prompts, 1)
	require.Contains(t, generator.prompts[0], "Maya")
	require.Contains(t, generator.prompts[0], "Reno (1 cities)")
}
