package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/pizzastore/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address (e.g., ":8080")
//	-d string   company email domain
//	-s int      shutdown timeout, seconds
//	-l string   log level
//	-b string   log backend
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-l", "-b"})

	fs := flag.NewFlagSet("pizzastore-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.CompanyDomain, "d", cfg.CompanyDomain, "company email domain")
	shutdown := fs.Int("s", int(cfg.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend: slog, zerolog or zap")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			cfg.ShutdownTimeout = time.Duration(*shutdown) * time.Second
		}
	})
	return nil
}
