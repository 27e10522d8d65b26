package schema

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:schema_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestEnsureSchemaConcurrentCallersCreateEveryTable(t *testing.T) {
	db := openTestDB(t)
	registry := NewRegistry(db, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.EnsureSchema(context.Background())
		}()
	}
	wg.Wait()

	require.True(t, registry.Ready())
	for _, def := range Definitions() {
		require.True(t, db.Migrator().HasTable(def.Model), string(def.Kind))
	}
}

func TestEnsureSchemaRetriesAfterFailure(t *testing.T) {
	db := openTestDB(t)
	var logs bytes.Buffer
	registry := NewRegistry(db, zerolog.New(&logs))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	registry.EnsureSchema(context.Background())
	registry.EnsureSchema(context.Background())
	require.False(t, registry.Ready())
	require.Equal(t, 2, strings.Count(logs.String(), "failed to initialise database schema"))
}

func TestEnsureSchemaSkipsWorkOnceReady(t *testing.T) {
	db := openTestDB(t)
	var logs bytes.Buffer
	registry := NewRegistry(db, zerolog.New(&logs))

	registry.EnsureSchema(context.Background())
	require.True(t, registry.Ready())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	registry.EnsureSchema(context.Background())
	require.True(t, registry.Ready())
	require.NotContains(t, logs.String(), "failed to initialise")
}
