package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// CampaignFilter narrows campaign queries.
type CampaignFilter struct {
	Status   string
	Platform string
}

func (f CampaignFilter) predicates() []Predicate {
	var predicates []Predicate
	if status := strings.TrimSpace(f.Status); status != "" {
		predicates = append(predicates, Equal("status", status))
	}
	if platform := strings.TrimSpace(f.Platform); platform != "" {
		predicates = append(predicates, Equal("platform", platform))
	}
	return predicates
}

// CampaignRepository persists marketing campaigns.
type CampaignRepository interface {
	Save(ctx context.Context, campaign *models.Campaign) (string, error)
	List(ctx context.Context, filter CampaignFilter, opts ListOptions) Page[models.Campaign]
}

type campaignRepository struct {
	store store[models.Campaign]
}

// NewCampaignRepository constructs the campaign repository.
func NewCampaignRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) CampaignRepository {
	return &campaignRepository{store: newStore[models.Campaign](db, ensurer, schema.KindCampaigns, logger)}
}

func (r *campaignRepository) Save(ctx context.Context, campaign *models.Campaign) (string, error) {
	if err := r.store.create(ctx, campaign); err != nil {
		return "", err
	}
	return campaign.ID, nil
}

func (r *campaignRepository) List(ctx context.Context, filter CampaignFilter, opts ListOptions) Page[models.Campaign] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// BudgetFilter narrows budget queries. Month only applies together with Year.
type BudgetFilter struct {
	Month string
	Year  int
}

func (f BudgetFilter) predicates() []Predicate {
	if f.Year <= 0 {
		return nil
	}
	predicates := []Predicate{Equal("year", f.Year)}
	if month := strings.TrimSpace(f.Month); month != "" {
		predicates = append(predicates, Equal("month", month))
	}
	return predicates
}

// BudgetRepository persists monthly budget allocations.
type BudgetRepository interface {
	Save(ctx context.Context, budget *models.Budget) (string, error)
	List(ctx context.Context, filter BudgetFilter, opts ListOptions) Page[models.Budget]
}

type budgetRepository struct {
	store store[models.Budget]
}

// NewBudgetRepository constructs the budget repository.
func NewBudgetRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) BudgetRepository {
	return &budgetRepository{store: newStore[models.Budget](db, ensurer, schema.KindBudgets, logger)}
}

func (r *budgetRepository) Save(ctx context.Context, budget *models.Budget) (string, error) {
	if err := r.store.create(ctx, budget); err != nil {
		return "", err
	}
	return budget.ID, nil
}

func (r *budgetRepository) List(ctx context.Context, filter BudgetFilter, opts ListOptions) Page[models.Budget] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// ConversionFilter narrows conversions to one campaign.
type ConversionFilter struct {
	CampaignID string
}

func (f ConversionFilter) predicates() []Predicate {
	var predicates []Predicate
	if id := strings.TrimSpace(f.CampaignID); id != "" {
		predicates = append(predicates, Equal("campaign_id", id))
	}
	return predicates
}

// ConversionRepository persists funnel conversion events.
type ConversionRepository interface {
	Save(ctx context.Context, conversion *models.Conversion) (string, error)
	List(ctx context.Context, filter ConversionFilter, opts ListOptions) Page[models.Conversion]
}

type conversionRepository struct {
	store store[models.Conversion]
}

// NewConversionRepository constructs the conversion repository.
func NewConversionRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) ConversionRepository {
	return &conversionRepository{store: newStore[models.Conversion](db, ensurer, schema.KindConversions, logger)}
}

func (r *conversionRepository) Save(ctx context.Context, conversion *models.Conversion) (string, error) {
	if err := r.store.create(ctx, conversion); err != nil {
		return "", err
	}
	return conversion.ID, nil
}

func (r *conversionRepository) List(ctx context.Context, filter ConversionFilter, opts ListOptions) Page[models.Conversion] {
	order := []Order{{Column: "date", Desc: true}, {Column: "id", Desc: true}}
	return r.store.list(ctx, filter.predicates(), order, opts)
}
