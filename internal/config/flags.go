package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/Roop3005/path-darshak/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-l", "-b", "-f"}

// parseFlags overlays cfg with the flags it knows about. Other flags on
// the command line are ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("pathpradarshak", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver (sqlite, bolt, memory)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "store file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog, zap)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
