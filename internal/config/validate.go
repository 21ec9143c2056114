package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidValue indicates a field holds a value outside its range.
	ErrInvalidValue = errors.New("invalid value")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	if err := validatePath(cfg.SettingsFile); err != nil {
		errs = append(errs, &FieldError{Field: "settings_file", Value: cfg.SettingsFile, Err: err})
	}
	if err := validatePath(cfg.StatusFile); err != nil {
		errs = append(errs, &FieldError{Field: "status_file", Value: cfg.StatusFile, Err: err})
	}

	if cfg.Release.Owner == "" || cfg.Release.Repo == "" {
		errs = append(errs, &FieldError{
			Field: "release",
			Value: cfg.Release.Owner + "/" + cfg.Release.Repo,
			Err:   ErrInvalidValue,
		})
	}
	if cfg.Release.BaseURL != "" {
		if u, err := url.Parse(cfg.Release.BaseURL); err != nil || !u.IsAbs() {
			errs = append(errs, &FieldError{Field: "release.base_url", Value: cfg.Release.BaseURL, Err: ErrInvalidValue})
		}
	}

	if cfg.Probe.Timeout <= 0 {
		errs = append(errs, &FieldError{Field: "probe.timeout", Value: cfg.Probe.Timeout.String(), Err: ErrInvalidValue})
	}
	if cfg.Probe.Concurrency < 1 {
		errs = append(errs, &FieldError{Field: "probe.concurrency", Value: fmt.Sprint(cfg.Probe.Concurrency), Err: ErrInvalidValue})
	}

	if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
		errs = append(errs, &FieldError{Field: "serve.addr", Value: cfg.Serve.Addr, Err: ErrInvalidValue})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError reports an invalid value for one config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
