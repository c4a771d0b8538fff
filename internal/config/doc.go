// Package config loads runtime configuration for the PathPradarshak CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   store driver: sqlite, bolt or memory
//	-s string   store file path
//	-l string   log level: debug, info, warn or error
//	-b string   log backend: slog or zap
//	-f string   log format: text or json
//
// # File schema
//
//	store_driver: bolt
//	store_path: ~/.pathpradarshak/data.bolt
//	store_lock_timeout: 2s
//	log_backend: zap
//	log_level: debug
//	log_format: json
//
// The JSON form uses the same keys. Keys left out keep their default.
package config
