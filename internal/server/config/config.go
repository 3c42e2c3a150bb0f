// Package config handles configuration for the development backend,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: listen address for the HTTP API.
//   - CompanyDomain: email domain that marks an account as staff.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
//   - SessionIdleTimeout: idle time after which a login session is dropped.
//   - LogLevel / LogBackend: see logging.Options.
type Config struct {
	Addr               string
	CompanyDomain      string
	ShutdownTimeout    time.Duration
	SessionIdleTimeout time.Duration
	LogLevel           string
	LogBackend         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.CompanyDomain = "pizzastore.com"
	c.ShutdownTimeout = 5 * time.Second
	c.SessionIdleTimeout = 30 * time.Minute
	c.LogLevel = "info"
	c.LogBackend = "zerolog"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, PIZZASRV_* variables and finally args.
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

	cfg.CompanyDomain = strings.TrimPrefix(strings.TrimSpace(cfg.CompanyDomain), "@")
	if cfg.Addr == "" {
		return nil, fmt.Errorf("listen address must not be empty")
	}
	if cfg.CompanyDomain == "" {
		return nil, fmt.Errorf("company domain must not be empty")
	}
	return cfg, nil
}
