// Package config loads the application configuration once at startup. The
// value source depends on the environment: plain process env (optionally
// topped up from a .env file) in development, Google Secret Manager in
// production.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppTitle string
	Env      string
	Port     int
	Debug    bool

	OmdbAPIKey  string
	OmdbBaseURL string

	RedisURL         string
	OtelCollectorURL string
	SeedCount        int

	DB DBConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

const (
	defaultPort         = 8000
	defaultSeedCount    = 10
	defaultMaxOpenConns = 25
	defaultMaxIdleTime  = 15 * time.Minute
)

// Load selects a provider by ENV and reads every configuration key through
// it. Missing required keys fail startup; optional keys fall back to
// defaults.
func Load(ctx context.Context) (Config, error) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	provider, err := newProvider(ctx, env)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:         env,
		OmdbBaseURL: getOptional(provider, "OMDB_BASE_URL", "https://www.omdbapi.com/"),
		RedisURL:    getOptional(provider, "REDIS_URL", ""),

		OtelCollectorURL: getOptional(provider, "OTEL_COLLECTOR_URL", ""),
		DB: DBConfig{
			MaxOpenConns: defaultMaxOpenConns,
			MaxIdleTime:  defaultMaxIdleTime,
		},
	}

	cfg.AppTitle, err = provider.Get("APP_TITLE")
	if err != nil {
		return Config{}, err
	}

	cfg.OmdbAPIKey, err = provider.Get("OMDB_API_KEY")
	if err != nil {
		return Config{}, err
	}

	cfg.DB.DSN, err = provider.Get("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	cfg.Port, err = getOptionalInt(provider, "PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}

	cfg.SeedCount, err = getOptionalInt(provider, "SEED_COUNT", defaultSeedCount)
	if err != nil {
		return Config{}, err
	}

	debug := getOptional(provider, "DEBUG", "false")
	cfg.Debug = debug == "true" || debug == "1" || debug == "yes"

	return cfg, nil
}

func newProvider(ctx context.Context, env string) (Provider, error) {
	switch env {
	case "dev", "test":
		return NewEnvProvider(), nil
	case "prod":
		projectID := os.Getenv("GCP_PROJECT_ID")
		if projectID == "" {
			return nil, fmt.Errorf("missing required GCP_PROJECT_ID for production")
		}

		return NewSecretManagerProvider(ctx, projectID)
	default:
		return nil, fmt.Errorf("unsupported environment: %s", env)
	}
}

func getOptional(provider Provider, key, fallback string) string {
	value, err := provider.Get(key)
	if err != nil {
		return fallback
	}

	return value
}

func getOptionalInt(provider Provider, key string, fallback int) (int, error) {
	value, err := provider.Get(key)
	if err != nil {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration %s must be an integer: %w", key, err)
	}

	return parsed, nil
}
