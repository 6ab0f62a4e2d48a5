// Package config holds runtime settings for the sharepad CLI and agent.
//
// Values are resolved in order: built-in defaults, then a JSON file
// (-c/-config), then environment variables (with .env support), then
// command-line flags. Later sources take precedence.
package config

import (
	"fmt"
	"time"
)

// Config holds every recognized option.
type Config struct {
	// paste service
	APIBaseURL     string
	RequestTimeout time.Duration
	MaxTextLength  int
	RetryAttempts  int
	RetryDelay     time.Duration

	// share history
	HistoryCapacity int
	PreviewLength   int
	StoreType       string // memory | sqlite | redis
	SQLitePath      string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	// agent surfaces
	HTTPAddr      string
	PollInterval  time.Duration
	NotifyEnabled bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://paste.rs/"
	c.RequestTimeout = 30 * time.Second
	c.MaxTextLength = 500_000
	c.RetryAttempts = 3
	c.RetryDelay = 1 * time.Second

	c.HistoryCapacity = 50
	c.PreviewLength = 100
	c.StoreType = "sqlite"
	c.SQLitePath = "sharepad.db"
	c.RedisAddr = "localhost:6379"

	c.HTTPAddr = "127.0.0.1:8787"
	c.PollInterval = 1 * time.Second
	c.NotifyEnabled = true
}

// Validate fails fast on settings the application cannot start with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	switch c.StoreType {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("invalid store type: %s (must be 'memory', 'sqlite' or 'redis')", c.StoreType)
	}
	if c.StoreType == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("sqlite path is required when store type is 'sqlite'")
	}
	if c.StoreType == "redis" && c.RedisAddr == "" {
		return fmt.Errorf("redis addr is required when store type is 'redis'")
	}
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("history capacity must be at least 1")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
