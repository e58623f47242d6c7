package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/caarlos0/env/v11"
)

// Backend names a persistence implementation
type Backend string

const (
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// IsValid reports whether the backend is known
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendMemory, BackendRedis, BackendSQLite, BackendPostgres:
		return true
	}
	return false
}

// Config holds all configuration for the application
type Config struct {
	Storage   StorageConfig
	Redis     RedisConfig
	Tracker   TrackerConfig
	Telemetry TelemetryConfig
}

// StorageConfig selects where the tracker is saved
type StorageConfig struct {
	Backend Backend   `env:"TRACKER_STORAGE_BACKEND" envDefault:"file"`
	Mirrors []Backend `env:"TRACKER_STORAGE_MIRRORS" envSeparator:","`
	SaveKey string    `env:"TRACKER_SAVE_KEY"        envDefault:"auto.save"`
	SaveDir string    `env:"TRACKER_SAVE_DIR"        envDefault:"."`

	SQLitePath  string `env:"TRACKER_SQLITE_PATH"  envDefault:"tracker.db"`
	PostgresDSN string `env:"TRACKER_POSTGRES_DSN"`
}

// Uses reports whether b is the primary backend or one of the mirrors
func (s StorageConfig) Uses(b Backend) bool {
	if s.Backend == b {
		return true
	}
	for _, m := range s.Mirrors {
		if m == b {
			return true
		}
	}
	return false
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string        `env:"REDIS_URL"         envDefault:"redis://localhost:6379/0"`
	TTL time.Duration `env:"TRACKER_REDIS_TTL" envDefault:"0s"`
}

// TrackerConfig holds the initial settings of a fresh tracker
type TrackerConfig struct {
	UndoSize int                `env:"TRACKER_UNDO_SIZE" envDefault:"128"`
	TieBreak character.TieBreak `env:"TRACKER_TIE_BREAK" envDefault:"foes_first"`
}

// Settings converts the configuration into tracker settings
func (t TrackerConfig) Settings() tracker.Settings {
	return tracker.Settings{
		UndoSize: t.UndoSize,
		TieBreak: t.TieBreak,
	}
}

// TelemetryConfig enables tracing when Endpoint is set
type TelemetryConfig struct {
	Endpoint    string `env:"TRACKER_OTEL_ENDPOINT"`
	ServiceName string `env:"TRACKER_OTEL_SERVICE" envDefault:"pathtracker"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot
func (c *Config) Validate() error {
	if !c.Storage.Backend.IsValid() {
		return fmt.Errorf("TRACKER_STORAGE_BACKEND: unknown backend %q", c.Storage.Backend)
	}
	for _, m := range c.Storage.Mirrors {
		if !m.IsValid() {
			return fmt.Errorf("TRACKER_STORAGE_MIRRORS: unknown backend %q", m)
		}
		if m == c.Storage.Backend {
			return fmt.Errorf("TRACKER_STORAGE_MIRRORS: %q is already the primary backend", m)
		}
	}
	if strings.TrimSpace(c.Storage.SaveKey) == "" {
		return fmt.Errorf("TRACKER_SAVE_KEY is required")
	}
	if c.Storage.Uses(BackendPostgres) && c.Storage.PostgresDSN == "" {
		return fmt.Errorf("TRACKER_POSTGRES_DSN is required for the postgres backend")
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("TRACKER_REDIS_TTL must not be negative")
	}
	if err := c.Tracker.Settings().Validate(); err != nil {
		return fmt.Errorf("tracker settings: %w", err)
	}
	return nil
}
