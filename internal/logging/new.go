package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
	BackendZap     = "zap"
)

// Options controls how New builds a Logger.
type Options struct {
	// Backend is one of slog, zerolog or zap. Empty means zerolog.
	Backend string
	// Level is the minimum level: debug, info, warn, error. Unknown values mean info.
	Level string
	// Pretty switches zerolog to its human-friendly console writer.
	Pretty bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger for the requested backend.
func New(opts Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := normalizeLevel(opts.Level)

	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendZerolog:
		return newZerolog(out, level, opts.Pretty), nil
	case BackendZap:
		return newZap(out, level), nil
	case BackendSlog:
		return newSlog(out, level), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func normalizeLevel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return "debug"
	case "warn", "warning":
		return "warn"
	case "error":
		return "error"
	default:
		return "info"
	}
}

func newZerolog(out io.Writer, level string, pretty bool) Logger {
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return NewZerologLogger(zerolog.New(out).Level(lvl).With().Timestamp().Logger())
}

func newZap(out io.Writer, level string) Logger {
	lvl := zapcore.InfoLevel
	_ = lvl.Set(level)

	encCfg := zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		TimeKey:     "ts",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(out), zap.NewAtomicLevelAt(lvl))
	return NewZapLogger(zap.New(core))
}

func newSlog(out io.Writer, level string) Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})
	return NewSlogLogger(slog.New(h))
}
