package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	DatabaseURL      string
	RedisURL         string
	NATSURL          string
	AnalyticsTTL     time.Duration
	ActivityLimit    int
	AIProvider       string
	AIAPIKey         string
	AIModel          string
	AIBaseURL        string
	AIMaxTokens      int
	AIRateLimit      int
	AIRateLimitEvery time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load reads configuration values from environment variables and optional .env file.
// Every key can be set as ISLANDGO_<KEY>; the conventional unprefixed names of the
// hosting platform are accepted as fallbacks.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ISLANDGO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "IslandGo Insights API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("analytics.cache_ttl", "2m")
	v.SetDefault("activity.limit", 10)
	v.SetDefault("ai.provider", "anthropic")
	v.SetDefault("ai.max_tokens", 2000)
	v.SetDefault("ai.rate_limit", 10)
	v.SetDefault("ai.rate_window", "1m")

	aliases := map[string][]string{
		"database.url": {"ISLANDGO_DATABASE_URL", "DATABASE_URL", "POSTGRES_URL"},
		"redis.url":    {"ISLANDGO_REDIS_URL", "REDIS_URL"},
		"nats.url":     {"ISLANDGO_NATS_URL", "NATS_URL"},
		"app.port":     {"ISLANDGO_APP_PORT", "PORT"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	ttl, err := parseDuration(v.GetString("analytics.cache_ttl"), 2*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analytics cache ttl: %w", err)
	}

	rateWindow, err := parseDuration(v.GetString("ai.rate_window"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid ai rate window: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      strings.TrimSpace(v.GetString("database.url")),
		RedisURL:         strings.TrimSpace(v.GetString("redis.url")),
		NATSURL:          strings.TrimSpace(v.GetString("nats.url")),
		AnalyticsTTL:     ttl,
		ActivityLimit:    v.GetInt("activity.limit"),
		AIProvider:       strings.ToLower(strings.TrimSpace(v.GetString("ai.provider"))),
		AIModel:          v.GetString("ai.model"),
		AIBaseURL:        v.GetString("ai.base_url"),
		AIMaxTokens:      v.GetInt("ai.max_tokens"),
		AIRateLimit:      v.GetInt("ai.rate_limit"),
		AIRateLimitEvery: rateWindow,
	}

	cfg.AIAPIKey = strings.TrimSpace(v.GetString("ai.api_key"))
	if cfg.AIAPIKey == "" {
		cfg.AIAPIKey = providerKey(v, cfg.AIProvider)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.ActivityLimit <= 0 {
		cfg.ActivityLimit = 10
	}

	return cfg, nil
}

// providerKey reads the vendor's conventional API key variable.
func providerKey(v *viper.Viper, provider string) string {
	key := "anthropic_api_key"
	if provider == "openai" {
		key = "openai_api_key"
	}
	if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
		return ""
	}
	return strings.TrimSpace(v.GetString(key))
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
