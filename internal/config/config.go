package config

import (
	"coastal-day-planner/internal/platform/db"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderMock      = "mock"
	ProviderOpenMeteo = "open-meteo"
)

// Config holds runtime settings read from the environment (a .env file is
// loaded first by the commands).
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath      string `envconfig:"DB_PATH" default:"data/app.db"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	SeedPath    string `envconfig:"SEED_PATH" default:"data/seeds/catalog.json"`
	SeedOnStart bool   `envconfig:"SEED_ON_START" default:"true"`

	ConditionsProvider   string        `envconfig:"CONDITIONS_PROVIDER" default:"mock"`
	OpenMeteoForecastURL string        `envconfig:"OPEN_METEO_FORECAST_URL"`
	OpenMeteoMarineURL   string        `envconfig:"OPEN_METEO_MARINE_URL"`
	HTTPClientTimeout    time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	d, err := db.ParseDialect(c.DBDriver)
	if err != nil {
		return fmt.Errorf("DB_DRIVER: %w", err)
	}

	if d == db.Postgres && strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
	}

	if d == db.SQLite && strings.TrimSpace(c.DBPath) == "" {
		return errors.New("DB_PATH must not be empty when DB_DRIVER=sqlite")
	}

	switch c.ConditionsProvider {
	case ProviderMock, ProviderOpenMeteo:
	default:
		return fmt.Errorf("CONDITIONS_PROVIDER: unsupported provider %q", c.ConditionsProvider)
	}

	if c.HTTPClientTimeout <= 0 {
		return errors.New("HTTP_CLIENT_TIMEOUT must be positive")
	}

	return nil
}

// Dialect is the parsed DB_DRIVER. Call after Validate.
func (c *Config) Dialect() db.Dialect {
	d, _ := db.ParseDialect(c.DBDriver)
	return d
}

// DSN returns the sqlite path or the postgres URL, by dialect.
func (c *Config) DSN() string {
	if c.Dialect() == db.Postgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func (c *Config) Addr() string { return ":" + c.Port }
