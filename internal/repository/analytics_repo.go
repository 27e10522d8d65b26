package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/islandgo-api/internal/schema"
)

// GroupByMonth groups rows by the calendar month of created_at.
const GroupByMonth = "created_at:month"

const monthLayout = "Jan 2006"

// TimeWindow restricts aggregates to rows created in [Start, End). A zero bound is open.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// AggregateQuery describes one grouped count over a kind.
type AggregateQuery struct {
	Kind    schema.Kind
	GroupBy string
	Window  TimeWindow
	Limit   int
}

// GroupCount is one bucket of an aggregate.
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:group_count"`
}

// AnalyticsRepository supplies counts for the analytics dashboard and reports.
type AnalyticsRepository interface {
	Count(ctx context.Context, kind schema.Kind, window TimeWindow) (int64, error)
	Aggregate(ctx context.Context, query AggregateQuery) ([]GroupCount, error)
}

type analyticsRepository struct {
	db     *gorm.DB
	schema schema.Ensurer
}

// NewAnalyticsRepository constructs the analytics repository.
func NewAnalyticsRepository(db *gorm.DB, ensurer schema.Ensurer) AnalyticsRepository {
	return &analyticsRepository{db: db, schema: ensurer}
}

func (r *analyticsRepository) scoped(ctx context.Context, kind schema.Kind, window TimeWindow) (*gorm.DB, error) {
	def, ok := schema.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	if r.schema != nil {
		r.schema.EnsureSchema(ctx)
	}
	q := Query{Predicates: Within("created_at", window.Start, window.End)}
	return q.Where(r.db.WithContext(ctx).Model(def.Model)), nil
}

func (r *analyticsRepository) Count(ctx context.Context, kind schema.Kind, window TimeWindow) (int64, error) {
	query, err := r.scoped(ctx, kind, window)
	if err != nil {
		return 0, err
	}
	var count int64
	err = query.Count(&count).Error
	return count, err
}

// Aggregate returns buckets ordered by count descending. Month buckets are ordered
// most recent first instead.
func (r *analyticsRepository) Aggregate(ctx context.Context, aggregate AggregateQuery) ([]GroupCount, error) {
	query, err := r.scoped(ctx, aggregate.Kind, aggregate.Window)
	if err != nil {
		return nil, err
	}
	if aggregate.GroupBy == GroupByMonth {
		return r.byMonth(query, aggregate.Limit)
	}

	column := clause.Column{Name: aggregate.GroupBy}
	query = query.
		Select("? AS group_key, COUNT(*) AS group_count", column).
		Group(aggregate.GroupBy).
		Order("group_count DESC").
		Order(clause.OrderByColumn{Column: column})
	if aggregate.Limit > 0 {
		query = query.Limit(aggregate.Limit)
	}

	groups := make([]GroupCount, 0)
	if err := query.Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Months are bucketed in Go so the same code runs on every SQL dialect.
func (r *analyticsRepository) byMonth(query *gorm.DB, limit int) ([]GroupCount, error) {
	var created []time.Time
	if err := query.Pluck("created_at", &created).Error; err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int64)
	for _, ts := range created {
		utc := ts.UTC()
		month := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[month]++
	}

	months := make([]time.Time, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].After(months[j]) })
	if limit > 0 && len(months) > limit {
		months = months[:limit]
	}

	groups := make([]GroupCount, 0, len(months))
	for _, month := range months {
		groups = append(groups, GroupCount{Key: month.Format(monthLayout), Count: counts[month]})
	}
	return groups, nil
}
