package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Roop3005/path-darshak/internal/flagx"
)

// fileConfig is the on-disk shape. Pointer fields tell a missing key from
// an empty value.
type fileConfig struct {
	StoreDriver      *string `json:"store_driver" yaml:"store_driver"`
	StorePath        *string `json:"store_path" yaml:"store_path"`
	StoreLockTimeout *string `json:"store_lock_timeout" yaml:"store_lock_timeout"`
	LogBackend       *string `json:"log_backend" yaml:"log_backend"`
	LogLevel         *string `json:"log_level" yaml:"log_level"`
	LogFormat        *string `json:"log_format" yaml:"log_format"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set(&cfg.StoreDriver, fc.StoreDriver)
	set(&cfg.StorePath, fc.StorePath)
	set(&cfg.LogBackend, fc.LogBackend)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	if fc.StoreLockTimeout != nil {
		d, err := time.ParseDuration(*fc.StoreLockTimeout)
		if err != nil {
			return fmt.Errorf("parse config %s: store_lock_timeout: %w", path, err)
		}
		cfg.StoreLockTimeout = d
	}
	return nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
