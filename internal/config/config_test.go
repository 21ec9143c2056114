package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/paths"
)

// isolate points every search path at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigDirEnv, dir)
	return dir
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, DefaultServeAddr, viper.GetString("serve.addr"))
	assert.Equal(t, DefaultProbeTimeout, viper.GetDuration("probe.timeout"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultReleaseOwner, cfg.Release.Owner)
	assert.Equal(t, DefaultReleaseRepo, cfg.Release.Repo)
	assert.Equal(t, DefaultProbeConcurrency, cfg.Probe.Concurrency)
	assert.NotEmpty(t, cfg.SettingsFile)
	assert.Empty(t, FileUsed())
}

func TestDefault_MatchesLoadWithoutFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, Validate(Default()))
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	assert.Equal(t, filepath.Join(dir, FileName), DefaultPath())

	t.Setenv(ConfigDirEnv, "")
	assert.Equal(t, filepath.Join(paths.ConfigDir(), FileName), DefaultPath())
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`version: 1
settings_file: /tmp/mcphub/settings.json
release:
  owner: acme
  repo: tools
  base_url: https://ghe.example.com/api/v3
probe:
  timeout: 750ms
serve:
  addr: ":9000"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	Init()
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mcphub/settings.json", cfg.SettingsFile)
	assert.Equal(t, ReleaseConfig{Owner: "acme", Repo: "tools", BaseURL: "https://ghe.example.com/api/v3"}, cfg.Release)
	assert.Equal(t, 750*time.Millisecond, cfg.Probe.Timeout)
	assert.Equal(t, DefaultProbeConcurrency, cfg.Probe.Concurrency, "unset keys keep defaults")
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.Equal(t, path, FileUsed())
}

func TestLoad_SearchesConfigDir(t *testing.T) {
	isolate(t)
	dirB := t.TempDir()
	t.Setenv(ConfigDirEnv, dirB)
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "config.yaml"), []byte("serve:\n  addr: 0.0.0.0:1234\n"), 0o600))

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1234", cfg.Serve.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MCPHUB_SERVE_ADDR", "127.0.0.1:1")
	t.Setenv("MCPHUB_RELEASE_OWNER", "someone")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1", cfg.Serve.Addr)
	assert.Equal(t, "someone", cfg.Release.Owner)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: "validating config: 2: unsupported config version",
		},
		{
			name:    "bad timeout",
			content: "probe:\n  timeout: 0s\n",
			wantErr: "validating config: probe.timeout: invalid value: 0s",
		},
		{
			name:    "bad addr",
			content: "serve:\n  addr: localhost\n",
			wantErr: "validating config: serve.addr: invalid value: localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			Init()
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dir := isolate(t)
	fileA := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(fileA, []byte("serve:\n  addr: 127.0.0.1:1111\n"), 0o600))

	Init()
	_, err := Load(fileA)
	require.NoError(t, err)

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Version:      1,
			SettingsFile: "/data/settings.json",
			StatusFile:   "/data/status.json",
			Release:      ReleaseConfig{Owner: "o", Repo: "r"},
			Probe:        ProbeConfig{Timeout: time.Second, Concurrency: 1},
			Serve:        ServeConfig{Addr: "127.0.0.1:8787"},
		}
	}

	assert.Empty(t, Validate(valid()))
	assert.Len(t, Validate(nil), 1)

	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"empty settings path", func(c *Config) { c.SettingsFile = "" }, ErrInvalidPath},
		{"nul in status path", func(c *Config) { c.StatusFile = "a\x00b" }, ErrInvalidPath},
		{"missing repo", func(c *Config) { c.Release.Repo = "" }, ErrInvalidValue},
		{"relative base url", func(c *Config) { c.Release.BaseURL = "api/v3" }, ErrInvalidValue},
		{"zero concurrency", func(c *Config) { c.Probe.Concurrency = 0 }, ErrInvalidValue},
		{"version", func(c *Config) { c.Version = 0 }, ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			errs := Validate(cfg)
			require.Len(t, errs, 1)
			assert.True(t, errors.Is(errs[0], tt.target))
		})
	}
}
