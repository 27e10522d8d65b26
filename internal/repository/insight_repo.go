package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// CreatorFilter lists creators recruited for one city, optionally within a creation window.
type CreatorFilter struct {
	City    string
	Created Window
}

func (f CreatorFilter) predicates() []Predicate {
	predicates := f.Created.predicates("created_at")
	if city := strings.TrimSpace(f.City); city != "" {
		predicates = append(predicates, Equal("city", city))
	}
	return predicates
}

// CreatorRepository persists AI-recruited creators.
type CreatorRepository interface {
	Save(ctx context.Context, creator *models.Creator) (string, error)
	List(ctx context.Context, filter CreatorFilter, opts ListOptions) Page[models.Creator]
}

type creatorRepository struct {
	store store[models.Creator]
}

// NewCreatorRepository constructs the creator repository.
func NewCreatorRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) CreatorRepository {
	return &creatorRepository{store: newStore[models.Creator](db, ensurer, schema.KindCreators, logger)}
}

func (r *creatorRepository) Save(ctx context.Context, creator *models.Creator) (string, error) {
	if err := r.store.create(ctx, creator); err != nil {
		return "", err
	}
	return creator.ID, nil
}

func (r *creatorRepository) List(ctx context.Context, filter CreatorFilter, opts ListOptions) Page[models.Creator] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// GapFilter lists gaps by priority, optionally within a creation window.
type GapFilter struct {
	Priority string
	Created  Window
}

func (f GapFilter) predicates() []Predicate {
	predicates := f.Created.predicates("created_at")
	if priority := strings.TrimSpace(f.Priority); priority != "" {
		predicates = append(predicates, Equal("priority", priority))
	}
	return predicates
}

// GapRepository persists AI-analysed city coverage gaps.
type GapRepository interface {
	Save(ctx context.Context, gap *models.Gap) (string, error)
	List(ctx context.Context, filter GapFilter, opts ListOptions) Page[models.Gap]
	UpdateCampaignStatus(ctx context.Context, city, state string, active bool) (int64, error)
}

type gapRepository struct {
	store store[models.Gap]
}

// NewGapRepository constructs the gap repository.
func NewGapRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) GapRepository {
	return &gapRepository{store: newStore[models.Gap](db, ensurer, schema.KindGaps, logger)}
}

func (r *gapRepository) Save(ctx context.Context, gap *models.Gap) (string, error) {
	if err := r.store.create(ctx, gap); err != nil {
		return "", err
	}
	return gap.ID, nil
}

func (r *gapRepository) List(ctx context.Context, filter GapFilter, opts ListOptions) Page[models.Gap] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

func (r *gapRepository) UpdateCampaignStatus(ctx context.Context, city, state string, active bool) (int64, error) {
	r.store.ensure(ctx)
	result := r.store.db.WithContext(ctx).
		Model(&models.Gap{}).
		Where("city = ? AND state = ?", city, state).
		Update("campaign_active", active)
	return result.RowsAffected, result.Error
}

// ViralContentFilter narrows viral captions to a creation window.
type ViralContentFilter struct {
	Created Window
}

func (f ViralContentFilter) predicates() []Predicate {
	return f.Created.predicates("created_at")
}

// ViralContentRepository persists generated viral captions.
type ViralContentRepository interface {
	Save(ctx context.Context, content *models.ViralContent) (string, error)
	List(ctx context.Context, filter ViralContentFilter, opts ListOptions) Page[models.ViralContent]
}

type viralContentRepository struct {
	store store[models.ViralContent]
}

// NewViralContentRepository constructs the viral content repository.
func NewViralContentRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) ViralContentRepository {
	return &viralContentRepository{store: newStore[models.ViralContent](db, ensurer, schema.KindViralContent, logger)}
}

func (r *viralContentRepository) Save(ctx context.Context, content *models.ViralContent) (string, error) {
	if err := r.store.create(ctx, content); err != nil {
		return "", err
	}
	return content.ID, nil
}

func (r *viralContentRepository) List(ctx context.Context, filter ViralContentFilter, opts ListOptions) Page[models.ViralContent] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}
