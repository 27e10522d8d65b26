package repository

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// MetricFilter narrows engagement and social media queries by platform and day window.
type MetricFilter struct {
	Platform string
	Start    time.Time
	End      time.Time
}

func (f MetricFilter) predicates() []Predicate {
	var predicates []Predicate
	if platform := strings.TrimSpace(f.Platform); platform != "" {
		predicates = append(predicates, Equal("platform", platform))
	}
	return append(predicates, Within("date", f.Start, f.End)...)
}

// EngagementRepository persists engagement metrics.
type EngagementRepository interface {
	Save(ctx context.Context, metric *models.EngagementMetric) (string, error)
	List(ctx context.Context, filter MetricFilter, opts ListOptions) Page[models.EngagementMetric]
}

type engagementRepository struct {
	store store[models.EngagementMetric]
}

// NewEngagementRepository constructs the engagement repository.
func NewEngagementRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) EngagementRepository {
	return &engagementRepository{store: newStore[models.EngagementMetric](db, ensurer, schema.KindEngagement, logger)}
}

func (r *engagementRepository) Save(ctx context.Context, metric *models.EngagementMetric) (string, error) {
	if err := r.store.create(ctx, metric); err != nil {
		return "", err
	}
	return metric.ID, nil
}

func (r *engagementRepository) List(ctx context.Context, filter MetricFilter, opts ListOptions) Page[models.EngagementMetric] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// SocialMediaRepository persists social media post metrics.
type SocialMediaRepository interface {
	Save(ctx context.Context, post *models.SocialMediaPost) (string, error)
	List(ctx context.Context, filter MetricFilter, opts ListOptions) Page[models.SocialMediaPost]
}

type socialMediaRepository struct {
	store store[models.SocialMediaPost]
}

// NewSocialMediaRepository constructs the social media repository.
func NewSocialMediaRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) SocialMediaRepository {
	return &socialMediaRepository{store: newStore[models.SocialMediaPost](db, ensurer, schema.KindSocialMedia, logger)}
}

func (r *socialMediaRepository) Save(ctx context.Context, post *models.SocialMediaPost) (string, error) {
	if err := r.store.create(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

func (r *socialMediaRepository) List(ctx context.Context, filter MetricFilter, opts ListOptions) Page[models.SocialMediaPost] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// CompetitorFilter narrows competitor observations.
type CompetitorFilter struct {
	CompetitorName string
	Metric         string
}

func (f CompetitorFilter) predicates() []Predicate {
	var predicates []Predicate
	if name := strings.TrimSpace(f.CompetitorName); name != "" {
		predicates = append(predicates, Equal("competitor_name", name))
	}
	if metric := strings.TrimSpace(f.Metric); metric != "" {
		predicates = append(predicates, Equal("metric", metric))
	}
	return predicates
}

// CompetitorRepository persists competitor metric observations.
type CompetitorRepository interface {
	Save(ctx context.Context, competitor *models.Competitor) (string, error)
	List(ctx context.Context, filter CompetitorFilter, opts ListOptions) Page[models.Competitor]
}

type competitorRepository struct {
	store store[models.Competitor]
}

// NewCompetitorRepository constructs the competitor repository.
func NewCompetitorRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) CompetitorRepository {
	return &competitorRepository{store: newStore[models.Competitor](db, ensurer, schema.KindCompetitors, logger)}
}

func (r *competitorRepository) Save(ctx context.Context, competitor *models.Competitor) (string, error) {
	if err := r.store.create(ctx, competitor); err != nil {
		return "", err
	}
	return competitor.ID, nil
}

func (r *competitorRepository) List(ctx context.Context, filter CompetitorFilter, opts ListOptions) Page[models.Competitor] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}
