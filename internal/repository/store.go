package repository

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/schema"
)

// store holds the insert and list paths shared by every kind.
type store[T any] struct {
	db     *gorm.DB
	schema schema.Ensurer
	def    schema.Definition
	logger zerolog.Logger
}

func newStore[T any](db *gorm.DB, ensurer schema.Ensurer, kind schema.Kind, logger zerolog.Logger) store[T] {
	return store[T]{
		db:     db,
		schema: ensurer,
		def:    schema.MustLookup(kind),
		logger: logger.With().Str("component", "repository").Str("kind", string(kind)).Logger(),
	}
}

func (s store[T]) ensure(ctx context.Context) {
	if s.schema != nil {
		s.schema.EnsureSchema(ctx)
	}
}

func (s store[T]) create(ctx context.Context, record *T) error {
	s.ensure(ctx)
	return s.db.WithContext(ctx).Create(record).Error
}

func (s store[T]) list(ctx context.Context, predicates []Predicate, order []Order, opts ListOptions) Page[T] {
	s.ensure(ctx)
	opts = opts.Normalized()

	q := Query{
		Predicates:    predicates,
		Search:        opts.Search,
		SearchColumns: s.def.SearchColumns,
		Order:         order,
	}

	query := q.Where(s.db.WithContext(ctx).Model(new(T)))

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		s.logger.Error().Err(err).Msg("failed to count records")
		return degradedPage[T](err)
	}

	if !opts.All {
		query = query.Offset(opts.offset()).Limit(opts.PageSize)
	}

	items := make([]T, 0)
	if err := q.sorted(query).Find(&items).Error; err != nil {
		s.logger.Error().Err(err).Msg("failed to list records")
		return degradedPage[T](err)
	}

	return Page[T]{Items: items, Total: total}
}
