package validator

import (
	"net"
	"net/url"

	"github.com/thoreinstein/mcphub/internal/mcp"
)

// Entry is one named server configuration to validate.
type Entry struct {
	Name   string
	Config mcp.ServerConfig
}

// Option configures a Validator.
type Option func(*Validator)

// Validator validates sets of server configurations.
type Validator struct {
	// allowEmpty permits sets with no servers.
	// Default is true; an empty settings document is normal.
	allowEmpty bool

	// allowInsecure suppresses the plain-HTTP warning.
	allowInsecure bool
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		allowEmpty: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithAllowEmpty configures whether an empty set of servers is allowed.
func WithAllowEmpty(allow bool) Option {
	return func(v *Validator) {
		v.allowEmpty = allow
	}
}

// WithAllowInsecure configures whether plain http:// URLs to non-loopback
// hosts are accepted without a warning.
func WithAllowInsecure(allow bool) Option {
	return func(v *Validator) {
		v.allowInsecure = allow
	}
}

// Validate checks entries for issues.
// Returns a slice of validation errors/warnings, or nil if valid.
// Use [HasErrors] to check if any errors (vs warnings) were found.
func (v *Validator) Validate(entries []Entry) []*ValidationError {
	var errs []*ValidationError

	if !v.allowEmpty && len(entries) == 0 {
		errs = append(errs, &ValidationError{
			Message:  "config has no servers",
			Severity: SeverityError,
			Err:      ErrEmptyConfig,
		})
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name != "" && seen[e.Name] {
			errs = append(errs, &ValidationError{
				ServerName: e.Name,
				Field:      "name",
				Message:    "server name is used more than once",
				Severity:   SeverityError,
				Err:        ErrDuplicateServerName,
			})
		}
		seen[e.Name] = true
		errs = append(errs, v.validateEntry(e)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateEntry validates a single server configuration.
func (v *Validator) validateEntry(e Entry) []*ValidationError {
	var errs []*ValidationError

	if e.Name == "" {
		errs = append(errs, &ValidationError{
			Field:    "name",
			Message:  "server name is required",
			Severity: SeverityError,
			Err:      ErrMissingServerName,
		})
	}

	if err := mcp.Validate(e.Config); err != nil {
		field := ""
		if cfgErr, ok := err.(*mcp.ConfigError); ok {
			field = cfgErr.Field
		}
		errs = append(errs, &ValidationError{
			ServerName: e.Name,
			Field:      field,
			Message:    err.Error(),
			Severity:   SeverityError,
			Err:        err,
		})
		return errs
	}

	switch c := e.Config.(type) {
	case *mcp.StdioConfig:
		errs = append(errs, v.validateEnv(e.Name, c.Env)...)
	case *mcp.RemoteConfig:
		errs = append(errs, v.validateURL(e.Name, c.URL)...)
		errs = append(errs, v.validateHeaders(e.Name, c.Headers)...)
	}

	return errs
}

// validateURL checks that a remote endpoint is an absolute http(s) URL and
// warns when it is plain HTTP to anything but a loopback host.
func (v *Validator) validateURL(name, raw string) []*ValidationError {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return []*ValidationError{{
			ServerName: name,
			Field:      "url",
			Message:    "url must be an absolute http(s) URL: " + raw,
			Severity:   SeverityError,
			Err:        ErrInvalidURL,
		}}
	}

	if u.Scheme == "http" && !v.allowInsecure && !isLoopback(u.Hostname()) {
		return []*ValidationError{{
			ServerName: name,
			Field:      "url",
			Message:    "credentials in headers would be sent unencrypted to " + u.Host,
			Severity:   SeverityWarning,
			Err:        ErrInsecureURL,
		}}
	}

	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// validateEnv validates that environment variable keys are non-empty.
func (v *Validator) validateEnv(name string, env map[string]string) []*ValidationError {
	for key := range env {
		if key == "" {
			return []*ValidationError{{
				ServerName: name,
				Field:      "env",
				Message:    "environment variable key cannot be empty",
				Severity:   SeverityError,
				Err:        ErrEmptyEnvKey,
			}}
		}
	}
	return nil
}

// validateHeaders validates that HTTP header keys are non-empty.
func (v *Validator) validateHeaders(name string, headers map[string]string) []*ValidationError {
	for key := range headers {
		if key == "" {
			return []*ValidationError{{
				ServerName: name,
				Field:      "headers",
				Message:    "header key cannot be empty",
				Severity:   SeverityError,
				Err:        ErrEmptyHeaderKey,
			}}
		}
	}
	return nil
}
