package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client configuration read from FIELDSYNC_* environment
// variables. Per-invocation overrides (server URL, database paths) are
// layered on top by command-line flags in main.
type Config struct {
	ServerURL string `env:"FIELDSYNC_SERVER_URL" envDefault:"http://localhost:8080"`
	DBPath    string `env:"FIELDSYNC_DB_PATH" envDefault:"fieldsync.db"`
	CachePath string `env:"FIELDSYNC_CACHE_PATH" envDefault:"fieldsync-cache.db"`

	// OfflineMode enables the offline operation queue. When disabled,
	// mutations that cannot reach the server fail immediately instead of
	// being queued.
	OfflineMode bool `env:"FIELDSYNC_OFFLINE_ENABLED" envDefault:"true"`

	// MaxRetries is the retry budget per queued operation. An operation
	// that fails this many times is dropped.
	MaxRetries int `env:"FIELDSYNC_MAX_RETRIES" envDefault:"3"`

	// SyncInterval is the periodic sync safety net in watch mode.
	SyncInterval time.Duration `env:"FIELDSYNC_SYNC_INTERVAL" envDefault:"60s"`

	// ProbeInterval is how often the connectivity monitor polls the
	// server health endpoint in watch mode.
	ProbeInterval time.Duration `env:"FIELDSYNC_PROBE_INTERVAL" envDefault:"15s"`

	LogLevel string `env:"FIELDSYNC_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.SyncInterval <= 0 {
		return fmt.Errorf("sync interval must be positive, got %s", c.SyncInterval)
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("probe interval must be positive, got %s", c.ProbeInterval)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	return nil
}
