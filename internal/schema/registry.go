package schema

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Ensurer makes sure the backing tables exist before they are used.
type Ensurer interface {
	EnsureSchema(ctx context.Context)
}

// Registry creates tables and indexes for every kind on demand.
//
// EnsureSchema never fails the caller. When the store is unreachable the error is
// logged and the caller's own query reports the real failure. A successful run is
// remembered; a failed run is attempted again by the next caller. Concurrent callers
// share one attempt instead of queueing behind each other.
type Registry struct {
	db     *gorm.DB
	logger zerolog.Logger

	group singleflight.Group
	ready atomic.Bool
}

// NewRegistry constructs a schema registry bound to db.
func NewRegistry(db *gorm.DB, logger zerolog.Logger) *Registry {
	return &Registry{
		db:     db,
		logger: logger.With().Str("component", "schema_registry").Logger(),
	}
}

// EnsureSchema creates any missing table or index. It is safe for concurrent use.
func (r *Registry) EnsureSchema(ctx context.Context) {
	if r == nil || r.db == nil || r.ready.Load() {
		return
	}

	_, _, _ = r.group.Do("schema", func() (interface{}, error) {
		if r.ready.Load() {
			return nil, nil
		}

		start := time.Now()
		if err := r.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
			r.logger.Error().Err(err).Msg("failed to initialise database schema")
			return nil, err
		}

		r.ready.Store(true)
		r.logger.Info().Dur("duration", time.Since(start)).Int("tables", len(definitions)).Msg("database schema ready")
		return nil, nil
	})
}

// Ready reports whether a schema run has completed successfully.
func (r *Registry) Ready() bool {
	return r != nil && r.ready.Load()
}
