package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ISLANDGO_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAcceptsPlatformAliases(t *testing.T) {
	t.Setenv("ISLANDGO_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URL", "postgres://islandgo@localhost:5432/islandgo")
	t.Setenv("ISLANDGO_AI_API_KEY", "")
	t.Setenv("ISLANDGO_AI_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("ISLANDGO_ANALYTICS_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://islandgo@localhost:5432/islandgo", cfg.DatabaseURL)
	require.Equal(t, "anthropic", cfg.AIProvider)
	require.Equal(t, "sk-ant-test", cfg.AIAPIKey)
	require.Equal(t, 30*time.Second, cfg.AnalyticsTTL)
	require.Equal(t, 10, cfg.ActivityLimit)
}

func TestLoadPrefersPrefixedValues(t *testing.T) {
	t.Setenv("ISLANDGO_DATABASE_URL", "sqlite://islandgo.db")
	t.Setenv("DATABASE_URL", "postgres://ignored")
	t.Setenv("ISLANDGO_AI_PROVIDER", "OpenAI")
	t.Setenv("ISLANDGO_AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ISLANDGO_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite://islandgo.db", cfg.DatabaseURL)
	require.Equal(t, "openai", cfg.AIProvider)
	require.Equal(t, "sk-openai", cfg.AIAPIKey)
	require.Equal(t, ":9090", cfg.HTTPAddress())
}

func TestLoadRejectsInvalidTTL(t *testing.T) {
	t.Setenv("ISLANDGO_DATABASE_URL", "sqlite://islandgo.db")
	t.Setenv("ISLANDGO_ANALYTICS_CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
