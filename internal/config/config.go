// Package config provides configuration management for mcphub using Viper.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/paths"
)

// EnvPrefix prefixes every environment variable read by mcphub.
const EnvPrefix = "MCPHUB"

// ConfigDirEnv overrides the directory searched for config.yaml.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// FileName is the config file searched for in each config path.
const FileName = "config.yaml"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version      int           `mapstructure:"version" yaml:"version"`
	SettingsFile string        `mapstructure:"settings_file" yaml:"settings_file"`
	StatusFile   string        `mapstructure:"status_file" yaml:"status_file"`
	Release      ReleaseConfig `mapstructure:"release" yaml:"release"`
	Probe        ProbeConfig   `mapstructure:"probe" yaml:"probe"`
	Serve        ServeConfig   `mapstructure:"serve" yaml:"serve"`
}

// ReleaseConfig locates the repository whose releases the update check reads.
type ReleaseConfig struct {
	Owner string `mapstructure:"owner" yaml:"owner"`
	Repo  string `mapstructure:"repo" yaml:"repo"`

	// BaseURL overrides the GitHub API root. Empty means api.github.com.
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

// ProbeConfig tunes the availability refresh.
type ProbeConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency"`
}

// ServeConfig configures `mcphub serve`.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default values.
const (
	DefaultReleaseOwner     = "thoreinstein"
	DefaultReleaseRepo      = "mcphub"
	DefaultProbeTimeout     = 5 * time.Second
	DefaultProbeConcurrency = 4
	DefaultServeAddr        = "127.0.0.1:8787"
)

// Init resets Viper and installs mcphub's search paths, environment binding
// and defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}
}

// Defaults returns the default value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"version":           CurrentVersion,
		"settings_file":     paths.SettingsPath(),
		"status_file":       paths.StatusPath(),
		"release.owner":     DefaultReleaseOwner,
		"release.repo":      DefaultReleaseRepo,
		"release.base_url":  "",
		"probe.timeout":     DefaultProbeTimeout,
		"probe.concurrency": DefaultProbeConcurrency,
		"serve.addr":        DefaultServeAddr,
	}
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Version:      CurrentVersion,
		SettingsFile: paths.SettingsPath(),
		StatusFile:   paths.StatusPath(),
		Release: ReleaseConfig{
			Owner: DefaultReleaseOwner,
			Repo:  DefaultReleaseRepo,
		},
		Probe: ProbeConfig{
			Timeout:     DefaultProbeTimeout,
			Concurrency: DefaultProbeConcurrency,
		},
		Serve: ServeConfig{Addr: DefaultServeAddr},
	}
}

// Load reads the configuration file and validates the result.
// If path is empty, the default locations are searched and a missing file
// means defaults. If path is set, the file must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// No config file; defaults apply.
		case path != "" && errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// DefaultPath returns where a new config file is written: inside
// $MCPHUB_CONFIG_DIR when set, otherwise the XDG config directory.
func DefaultPath() string {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		dir = paths.ConfigDir()
	}
	return filepath.Join(dir, FileName)
}

// FileUsed returns the config file Viper read, or "" if none.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
