package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and tunes a Logger implementation.
type Options struct {
	Backend string
	Level   string
	Format  string
}

// New builds a Logger writing to w. The zap backend always writes to
// stderr through its production config; w only applies to slog.
func New(opts Options, w io.Writer) (Logger, error) {
	switch opts.Backend {
	case "", BackendSlog:
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(orDefault(opts.Level, "info")))); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		ho := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		if opts.Format == FormatJSON {
			h = slog.NewJSONHandler(w, ho)
		} else {
			h = slog.NewTextHandler(w, ho)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		level, err := zapcore.ParseLevel(orDefault(opts.Level, "info"))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		if opts.Format != FormatJSON {
			cfg.Encoding = "console"
		}
		l, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("build zap logger: %w", err)
		}
		return NewZapLogger(l), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
