package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type envConfig struct {
	ServerURL           string        `env:"SERVER_URL"`
	StatusCheckInterval time.Duration `env:"STATUS_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogBackend          string        `env:"LOG_BACKEND"`
	MetricsAddr         string        `env:"METRICS_ADDR"`
}

const envPrefix = "PIZZA_"

// parseEnv overlays cfg with PIZZA_* variables that are set and non-empty.
func parseEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	var ec envConfig
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(envPrefix, lookuper),
	})
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.StatusCheckInterval != 0 {
		cfg.StatusCheckInterval = ec.StatusCheckInterval
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
	if ec.MetricsAddr != "" {
		cfg.MetricsAddr = ec.MetricsAddr
	}
	return nil
}
