package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the pizza store CLI.
type Config struct {
	ServerURL           string
	StatusCheckInterval time.Duration
	RequestTimeout      time.Duration
	LogLevel            string
	LogBackend          string
	// MetricsAddr enables the /metrics endpoint when non-empty.
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.StatusCheckInterval = 30 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
	c.LogBackend = "zerolog"
	c.MetricsAddr = ""
}

// LoadConfig builds a Config from defaults, then the JSON file, the
// environment and finally args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	return load(context.Background(), args, envconfig.OsLookuper())
}

func load(ctx context.Context, args []string, env envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, env); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server url must not be empty")
	}
	if c.StatusCheckInterval <= 0 {
		return fmt.Errorf("status check interval must be positive, got %s", c.StatusCheckInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// String is used in debug logs; it has no secrets to hide.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s interval=%s timeout=%s log=%s/%s metrics=%q",
		c.ServerURL, c.StatusCheckInterval, c.RequestTimeout, c.LogBackend, c.LogLevel, c.MetricsAddr)
}

