// Package config loads runtime configuration for the pizza store CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed PIZZA_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend, e.g. http://127.0.0.1:8080
//	-i int      connectivity check interval (seconds)
//	-t int      per-request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-b string   log backend (slog, zerolog, zap)
//	-m string   address to serve Prometheus metrics on; empty disables
//
// # JSON schema
//
// Durations go through timex.Duration, so they can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "status_check_interval": "30s",
//	  "request_timeout": "10s",
//	  "log_level": "warn",
//	  "log_backend": "zerolog",
//	  "metrics_addr": ""
//	}
package config
