package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type envConfig struct {
	Addr               string        `env:"ADDR"`
	CompanyDomain      string        `env:"COMPANY_DOMAIN"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`
	LogLevel           string        `env:"LOG_LEVEL"`
	LogBackend         string        `env:"LOG_BACKEND"`
}

const envPrefix = "PIZZASRV_"

func parseEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	var ec envConfig
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(envPrefix, lookuper),
	})
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if ec.Addr != "" {
		cfg.Addr = ec.Addr
	}
	if ec.CompanyDomain != "" {
		cfg.CompanyDomain = ec.CompanyDomain
	}
	if ec.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = ec.ShutdownTimeout
	}
	if ec.SessionIdleTimeout != 0 {
		cfg.SessionIdleTimeout = ec.SessionIdleTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
	return nil
}
