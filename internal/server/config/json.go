package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pizzastore/internal/flagx"
	"github.com/dmitrijs2005/pizzastore/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations accept "5s" or
// integer nanoseconds.
type JsonConfig struct {
	Addr               *string         `json:"addr"`
	CompanyDomain      *string         `json:"company_domain"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout"`
	SessionIdleTimeout *timex.Duration `json:"session_idle_timeout"`
	LogLevel           *string         `json:"log_level"`
	LogBackend         *string         `json:"log_backend"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.CompanyDomain != nil {
		cfg.CompanyDomain = *jc.CompanyDomain
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.SessionIdleTimeout != nil {
		cfg.SessionIdleTimeout = jc.SessionIdleTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	return nil
}
