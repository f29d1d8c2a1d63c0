// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, relay) via constructors.
  - Optional Backends: PostgreSQL and Redis are optional. Without them the
    contact archive is disabled and key-value state lives in process memory.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). Empty disables the contact archive.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value store (Redis). Empty falls back to an in-process cache.
	RedisURL string `env:"REDIS_URL"`

	// Static assets served under /assets (log images, logsGrouped.json).
	AssetsDir string `env:"ASSETS_DIR" envDefault:"./public/assets"`

	// LogsSource is either an http(s) URL or a filesystem path to the grouped log file.
	LogsSource       string        `env:"LOGS_SOURCE"        envDefault:"./public/assets/logsGrouped.json"`
	LogsFetchTimeout time.Duration `env:"LOGS_FETCH_TIMEOUT" envDefault:"10s"`

	// Contact form relay
	ContactRelayURL     string        `env:"CONTACT_RELAY_URL"     envDefault:"https://formspree.io/f/xanevoke"`
	ContactRelayTimeout time.Duration `env:"CONTACT_RELAY_TIMEOUT" envDefault:"10s"`
	ContactEmail        string        `env:"CONTACT_EMAIL"         envDefault:"lee.sanggean@gmail.com"`

	// SearchLogsSource is the flat log list scanned by search (URL or path).
	SearchLogsSource string `env:"SEARCH_LOGS_SOURCE" envDefault:"./public/assets/logsData.json"`

	// SearchEmptyQuery decides what an empty query returns: "all" or "none".
	SearchEmptyQuery string `env:"SEARCH_EMPTY_QUERY" envDefault:"all"`

	// GallerySessionTTL bounds how long an idle gallery session is kept.
	GallerySessionTTL time.Duration `env:"GALLERY_SESSION_TTL" envDefault:"30m"`

	// VisitorStateTTL bounds how long globe focus and first-visit flags are kept.
	VisitorStateTTL time.Duration `env:"VISITOR_STATE_TTL" envDefault:"8760h"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"sjlee.co.kr"`
	ExtraOrigins        string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Reject unknown search policies early instead of at the first request.
	switch cfg.SearchEmptyQuery {
	case "all", "none":
	default:
		return nil, fmt.Errorf("config: SEARCH_EMPTY_QUERY must be \"all\" or \"none\", got %q", cfg.SearchEmptyQuery)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginAllowed reports whether a browser origin may call the API in production.
func (c *Config) OriginAllowed(origin string) bool {
	if c.AllowedOriginSuffix != "" && strings.HasSuffix(origin, c.AllowedOriginSuffix) {
		return true
	}
	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if extra = strings.TrimSpace(extra); extra != "" && extra == origin {
			return true
		}
	}
	return false
}

// HasDatabase reports whether a PostgreSQL DSN was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis reports whether a Redis URL was configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}
