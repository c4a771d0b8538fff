package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(defaults(), *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	yamlPath := writeFile(t, "cfg.yaml", "store_driver: bolt\nstore_path: /tmp/pp.bolt\nstore_lock_timeout: 3s\nlog_backend: zap\nlog_level: debug\n")
	jsonPath := writeFile(t, "cfg.json", `{"store_driver":"memory","log_format":"json"}`)

	tests := []struct {
		name string
		args []string
		want func(c *Config)
	}{
		{
			name: "yaml file",
			args: []string{"-c", yamlPath},
			want: func(c *Config) {
				c.StoreDriver = "bolt"
				c.StorePath = "/tmp/pp.bolt"
				c.StoreLockTimeout = 3 * time.Second
				c.LogBackend = "zap"
				c.LogLevel = "debug"
			},
		},
		{
			name: "json file keeps missing keys",
			args: []string{"-config", jsonPath},
			want: func(c *Config) {
				c.StoreDriver = "memory"
				c.LogFormat = "json"
			},
		},
		{
			name: "flags override file",
			args: []string{"-c", yamlPath, "-d", "sqlite", "-s", "/tmp/x.db", "-l", "error", "-unknown", "v"},
			want: func(c *Config) {
				c.StoreDriver = "sqlite"
				c.StorePath = "/tmp/x.db"
				c.StoreLockTimeout = 3 * time.Second
				c.LogBackend = "zap"
				c.LogLevel = "error"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := defaults()
			tt.want(&want)

			got, err := LoadConfig(tt.args)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, *got))
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	badJSON := writeFile(t, "bad.json", `{ not json`)
	badTimeout := writeFile(t, "t.yml", "store_lock_timeout: soon\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"-c", filepath.Join(t.TempDir(), "nope.json")}},
		{"bad json", []string{"-c", badJSON}},
		{"bad timeout", []string{"-c", badTimeout}},
		{"bad driver", []string{"-d", "postgres"}},
		{"bad backend", []string{"-b", "logrus"}},
		{"bad format", []string{"-f", "xml"}},
		{"empty path", []string{"-s", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := LoadConfig([]string{"-s", "~/pp/data.db"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "pp", "data.db"), cfg.StorePath)
}

func TestConfig_Options(t *testing.T) {
	c := defaults()
	so := c.StorageOptions()
	assert.Equal(t, c.StoreDriver, so.Driver)
	assert.Equal(t, c.StorePath, so.Path)
	assert.Equal(t, c.StoreLockTimeout, so.LockTimeout)

	lo := c.LoggingOptions()
	assert.Equal(t, c.LogBackend, lo.Backend)
	assert.Equal(t, c.LogLevel, lo.Level)
	assert.Equal(t, c.LogFormat, lo.Format)
}
