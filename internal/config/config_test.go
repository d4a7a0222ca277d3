package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Server.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Server.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "learnpath", "learnpath.log"), cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  base_url: https://learn.example.com
  timeout: 30s
log:
  level: debug
export:
  dir: /tmp/out
`), 0o600))
	t.Setenv("LEARNPATH_EXPORT_DIR", "/srv/exports")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "https://learn.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/exports", cfg.Export.Dir, "env wins over file")
}

func TestLoad_DiscoversFileInConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "learnpath")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "learnpath.yaml"), []byte("log:\n  level: warn\n"), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(viper.New(), filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{BaseURL: "http://localhost:5000"},
			Log:    LogConfig{Level: "info"},
			Export: ExportConfig{Dir: "."},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"relative url", func(c *Config) { c.Server.BaseURL = "/api" }, true},
		{"ftp url", func(c *Config) { c.Server.BaseURL = "ftp://host" }, true},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEARNPATH_LOG_LEVEL=error\n"), 0o600))
	t.Setenv("LEARNPATH_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LEARNPATH_LOG_LEVEL"))

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
