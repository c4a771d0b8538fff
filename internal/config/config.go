package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Roop3005/path-darshak/internal/logging"
	"github.com/Roop3005/path-darshak/internal/storage"
)

// Config holds runtime settings for the CLI.
type Config struct {
	StoreDriver      string
	StorePath        string
	StoreLockTimeout time.Duration

	LogBackend string
	LogLevel   string
	LogFormat  string
}

func (c *Config) LoadDefaults() {
	c.StoreDriver = storage.DriverSQLite
	c.StorePath = "pathpradarshak.db"
	c.StoreLockTimeout = time.Second
	c.LogBackend = logging.BackendSlog
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// LoadConfig applies defaults, then the config file, then flags, and
// validates the result. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	cfg.StorePath = expandHome(cfg.StorePath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	drivers := []string{storage.DriverSQLite, storage.DriverBolt, storage.DriverMemory}
	if !slices.Contains(drivers, c.StoreDriver) {
		return fmt.Errorf("invalid store driver %q, want one of %s", c.StoreDriver, strings.Join(drivers, ", "))
	}
	if c.StoreDriver != storage.DriverMemory && c.StorePath == "" {
		return fmt.Errorf("store path is required for driver %q", c.StoreDriver)
	}
	if c.StoreLockTimeout < 0 {
		return fmt.Errorf("store lock timeout must not be negative")
	}

	backends := []string{logging.BackendSlog, logging.BackendZap}
	if !slices.Contains(backends, c.LogBackend) {
		return fmt.Errorf("invalid log backend %q, want one of %s", c.LogBackend, strings.Join(backends, ", "))
	}
	formats := []string{logging.FormatText, logging.FormatJSON}
	if !slices.Contains(formats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q, want one of %s", c.LogFormat, strings.Join(formats, ", "))
	}
	return nil
}

// StorageOptions converts the store settings for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{Driver: c.StoreDriver, Path: c.StorePath, LockTimeout: c.StoreLockTimeout}
}

// LoggingOptions converts the log settings for logging.New.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat}
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
