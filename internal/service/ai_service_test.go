package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/insight"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
)

type stubTransformer struct {
	creators []insight.CreatorProfile
	gaps     []insight.CityGap
	viral    insight.ViralContent
	err      error
	calls    int
}

func (s *stubTransformer) RecruitCreators(ctx context.Context, city string) ([]insight.CreatorProfile, error) {
	s.calls++
	return s.creators, s.err
}

func (s *stubTransformer) AnalyzeGaps(ctx context.Context) ([]insight.CityGap, error) {
	s.calls++
	return s.gaps, s.err
}

func (s *stubTransformer) GenerateViralContent(ctx context.Context, userName string, cities []string, cuisine string) (insight.ViralContent, error) {
	s.calls++
	return s.viral, s.err
}

type aiFixture struct {
	service  AIService
	creators repository.CreatorRepository
	gaps     repository.GapRepository
	viral    repository.ViralContentRepository
	activity *recordingActivity
	close    func()
}

func newAIFixture(t *testing.T, transformer InsightTransformer) aiFixture {
	t.Helper()
	db, registry := setupServiceDB(t)
	logger := testLogger()
	fixture := aiFixture{
		creators: repository.NewCreatorRepository(db, registry, logger),
		gaps:     repository.NewGapRepository(db, registry, logger),
		viral:    repository.NewViralContentRepository(db, registry, logger),
		activity: &recordingActivity{},
		close:    func() { closeServiceDB(t, db) },
	}
	fixture.service = NewAIService(transformer, fixture.creators, fixture.gaps, fixture.viral, fixture.activity, logger)
	return fixture
}

func TestAIServiceUnavailable(t *testing.T) {
	fixture := newAIFixture(t, nil)
	require.False(t, fixture.service.Available())

	_, err := fixture.service.Dispatch(context.Background(), dto.AIRequest{Type: dto.AIRequestAnalyzeGaps, Data: &dto.AIRequestData{}})
	require.ErrorIs(t, err, ErrAIUnavailable)
}

func TestAIServiceRequestErrors(t *testing.T) {
	transformer := &stubTransformer{}
	fixture := newAIFixture(t, transformer)
	ctx := context.Background()

	cases := []struct {
		name    string
		request dto.AIRequest
		message string
	}{
		{"missing data", dto.AIRequest{Type: dto.AIRequestAnalyzeGaps}, "Invalid request: type and data are required"},
		{"missing type", dto.AIRequest{Data: &dto.AIRequestData{City: "Austin"}}, "Invalid request: type and data are required"},
		{"missing city", dto.AIRequest{Type: dto.AIRequestRecruitCreators, Data: &dto.AIRequestData{City: "  "}}, "City is required for recruit-creators"},
		{"missing cities", dto.AIRequest{Type: dto.AIRequestGenerateViral, Data: &dto.AIRequestData{UserName: "Sam", Cuisine: "Thai"}}, "userName, cities, and cuisine are required for generate-viral"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.service.Dispatch(ctx, tc.request)
			var requestErr *RequestError
			require.True(t, errors.As(err, &requestErr))
			require.Equal(t, tc.message, requestErr.Message)
		})
	}

	_, err := fixture.service.Dispatch(ctx, dto.AIRequest{Type: "summarise", Data: &dto.AIRequestData{}})
	require.ErrorIs(t, err, ErrUnknownAIRequest)
	require.Zero(t, transformer.calls)
}

func TestAIServiceRecruitCreatorsPersists(t *testing.T) {
	transformer := &stubTransformer{creators: []insight.CreatorProfile{
		{Name: "Sarah Martinez", InstagramHandle: "@sarahEats", Followers: "12.4K", EngagementRate: "8.2%", FitReason: "Loves <script>x</script>tacos", Initial: "SM"},
		{Name: "Leo Park", InstagramHandle: "@leo", Followers: "9K", EngagementRate: "6%", FitReason: "Brunch", Initial: "LP"},
	}}
	fixture := newAIFixture(t, transformer)
	ctx := context.Background()

	result, err := fixture.service.Dispatch(ctx, dto.AIRequest{Type: dto.AIRequestRecruitCreators, Data: &dto.AIRequestData{City: "Austin"}})
	require.NoError(t, err)
	response, ok := result.(dto.CreatorsResponse)
	require.True(t, ok)
	require.Len(t, response.Creators, 2)

	page := fixture.creators.List(ctx, repository.CreatorFilter{City: "Austin"}, repository.ListOptions{})
	require.EqualValues(t, 2, page.Total)
	for _, creator := range page.Items {
		require.NotContains(t, creator.FitReason, "<script>")
	}

	recorded := fixture.activity.recorded()
	require.Len(t, recorded, 1)
	require.Equal(t, models.ActivityCreatorRecruitment, recorded[0].Type)
	require.Equal(t, "Found 2 creators in Austin", recorded[0].Description)
}

func TestAIServiceAnalyzeGapsPersists(t *testing.T) {
	transformer := &stubTransformer{gaps: []insight.CityGap{
		{City: "Reno", State: "NV", Coverage: 35, Priority: models.PriorityMedium, MissingCategories: []string{"BBQ"}},
	}}
	fixture := newAIFixture(t, transformer)
	ctx := context.Background()

	result, err := fixture.service.Dispatch(ctx, dto.AIRequest{Type: dto.AIRequestAnalyzeGaps, Data: &dto.AIRequestData{}})
	require.NoError(t, err)
	require.Len(t, result.(dto.GapsResponse).Gaps, 1)

	page := fixture.gaps.List(ctx, repository.GapFilter{}, repository.ListOptions{})
	require.Len(t, page.Items, 1)
	require.Equal(t, []string{"BBQ"}, []string(page.Items[0].MissingCategories))
	require.False(t, page.Items[0].CampaignActive)
	require.Empty(t, fixture.activity.recorded())
}

func TestAIServicePersistenceFailureIsNotSurfaced(t *testing.T) {
	transformer := &stubTransformer{viral: insight.ViralContent{
		Caption: "Tacos in three cities",
		Badges:  []models.Badge{{Name: "Taco Hunter", Emoji: "🌮", Color: "from-yellow-400 to-orange-500"}},
	}}
	fixture := newAIFixture(t, transformer)
	fixture.close()

	result, err := fixture.service.Dispatch(context.Background(), dto.AIRequest{
		Type: dto.AIRequestGenerateViral,
		Data: &dto.AIRequestData{UserName: "Sam", Cities: []string{"Austin", "Reno", "Boise"}, Cuisine: "Mexican"},
	})
	require.NoError(t, err)
	content := result.(insight.ViralContent)
	require.Equal(t, "Tacos in three cities", content.Caption)
	require.Len(t, fixture.activity.recorded(), 1)
}

func TestAIServiceUpstreamFailure(t *testing.T) {
	transformer := &stubTransformer{err: insight.ErrNoJSON}
	fixture := newAIFixture(t, transformer)

	_, err := fixture.service.Dispatch(context.Background(), dto.AIRequest{Type: dto.AIRequestAnalyzeGaps, Data: &dto.AIRequestData{}})
	require.ErrorIs(t, err, insight.ErrNoJSON)
	require.Equal(t, 1, transformer.calls)
}
