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

// AlertFilter narrows alert queries.
type AlertFilter struct {
	Status   string
	Severity string
}

func (f AlertFilter) predicates() []Predicate {
	var predicates []Predicate
	if status := strings.TrimSpace(f.Status); status != "" {
		predicates = append(predicates, Equal("status", status))
	}
	if severity := strings.TrimSpace(f.Severity); severity != "" {
		predicates = append(predicates, Equal("severity", severity))
	}
	return predicates
}

// AlertRepository persists alerts and their status transitions.
type AlertRepository interface {
	Save(ctx context.Context, alert *models.Alert) (string, error)
	List(ctx context.Context, filter AlertFilter, opts ListOptions) Page[models.Alert]
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

type alertRepository struct {
	store store[models.Alert]
}

// NewAlertRepository constructs the alert repository.
func NewAlertRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) AlertRepository {
	return &alertRepository{store: newStore[models.Alert](db, ensurer, schema.KindAlerts, logger)}
}

func (r *alertRepository) Save(ctx context.Context, alert *models.Alert) (string, error) {
	if err := r.store.create(ctx, alert); err != nil {
		return "", err
	}
	return alert.ID, nil
}

func (r *alertRepository) List(ctx context.Context, filter AlertFilter, opts ListOptions) Page[models.Alert] {
	return r.store.list(ctx, filter.predicates(), newestFirst(), opts)
}

// UpdateStatus sets status and keeps resolved_at in step: stamped with at when the
// alert becomes Resolved, cleared otherwise. Unknown ids yield gorm.ErrRecordNotFound.
func (r *alertRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	r.store.ensure(ctx)

	updates := map[string]interface{}{
		"status":      status,
		"resolved_at": nil,
	}
	if status == models.AlertStatusResolved {
		updates["resolved_at"] = at
	}

	result := r.store.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ContentCalendarFilter narrows calendar items by status and scheduled window.
type ContentCalendarFilter struct {
	Status string
	Start  time.Time
	End    time.Time
}

func (f ContentCalendarFilter) predicates() []Predicate {
	var predicates []Predicate
	if status := strings.TrimSpace(f.Status); status != "" {
		predicates = append(predicates, Equal("status", status))
	}
	return append(predicates, Within("scheduled_date", f.Start, f.End)...)
}

// ContentCalendarRepository persists scheduled content.
type ContentCalendarRepository interface {
	Save(ctx context.Context, item *models.ContentCalendarItem) (string, error)
	List(ctx context.Context, filter ContentCalendarFilter, opts ListOptions) Page[models.ContentCalendarItem]
}

type contentCalendarRepository struct {
	store store[models.ContentCalendarItem]
}

// NewContentCalendarRepository constructs the content calendar repository.
func NewContentCalendarRepository(db *gorm.DB, ensurer schema.Ensurer, logger zerolog.Logger) ContentCalendarRepository {
	return &contentCalendarRepository{store: newStore[models.ContentCalendarItem](db, ensurer, schema.KindContentCalendar, logger)}
}

func (r *contentCalendarRepository) Save(ctx context.Context, item *models.ContentCalendarItem) (string, error) {
	if err := r.store.create(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *contentCalendarRepository) List(ctx context.Context, filter ContentCalendarFilter, opts ListOptions) Page[models.ContentCalendarItem] {
	order := []Order{{Column: "scheduled_date"}, {Column: "id"}}
	return r.store.list(ctx, filter.predicates(), order, opts)
}
