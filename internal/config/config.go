package config

import (
	"fmt"
	"strings"

	pkgconfig "github.com/gungun-1908/InsightCart/pkg/config"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Catalog backend
	CatalogBaseURL string `env:"CATALOG_BASE_URL" envDefault:"http://localhost:5000"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Client state TTL in hours (cart, session and cookie; default: 7 days)
	ClientTTL int `env:"CLIENT_TTL_HOURS" envDefault:"168"`

	// Auth endpoint rate limiting (requests per second per client IP)
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateBurst int `env:"AUTH_RATE_BURST" envDefault:"10"`

	// Tracing
	TracingEnabled  bool   `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" envDefault:"localhost:4318"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if !strings.HasPrefix(c.CatalogBaseURL, "http://") && !strings.HasPrefix(c.CatalogBaseURL, "https://") {
		return fmt.Errorf("invalid catalog base URL: %s", c.CatalogBaseURL)
	}
	if c.ClientTTL < 1 {
		return fmt.Errorf("client TTL must be at least 1 hour, got %d", c.ClientTTL)
	}
	return nil
}
