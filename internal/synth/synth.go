// Package synth turns a catalog template plus user-supplied field values into
// a concrete server configuration.
package synth

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mcphub/internal/catalog"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
)

// Validation failure codes.
const (
	CodeNameRequired  = "name_required"
	CodeFieldRequired = "field_required"
)

var (
	// ErrNameRequired indicates the server name was empty after trimming.
	ErrNameRequired = errors.New("server name is required")

	// ErrFieldRequired indicates a required template field had no value.
	ErrFieldRequired = errors.New("required field is missing")
)

// ValidationError reports the first input that failed validation.
type ValidationError struct {
	// Code is CodeNameRequired or CodeFieldRequired.
	Code string

	// Field is the label of the missing field. Empty for CodeNameRequired.
	Field string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	if e.Code == CodeNameRequired {
		return "Server name is required"
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Unwrap maps the code onto its sentinel.
func (e *ValidationError) Unwrap() error {
	if e.Code == CodeNameRequired {
		return ErrNameRequired
	}
	return ErrFieldRequired
}

// Header names produced from field keys.
const (
	headerAuthorization = "Authorization"
	headerAPIKey        = "X-API-Key"
)

// Synthesize validates serverName and values against t and builds the
// resulting configuration. The template is never modified.
//
// Remote templates get one header per non-empty field value and may have
// their URL replaced by the "host" or "url" field, in that order of
// precedence. Stdio templates are returned as a copy of the base.
func Synthesize(t catalog.Template, serverName string, values map[string]string) (mcp.ServerConfig, error) {
	if strings.TrimSpace(serverName) == "" {
		return nil, &ValidationError{Code: CodeNameRequired}
	}
	for _, f := range t.Fields {
		if f.Required && strings.TrimSpace(values[f.Key]) == "" {
			return nil, &ValidationError{Code: CodeFieldRequired, Field: f.Label}
		}
	}

	switch base := t.Config.(type) {
	case *mcp.StdioConfig:
		return base.Clone(), nil
	case *mcp.RemoteConfig:
		return synthesizeRemote(base, t.Fields, values), nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "template %q has no base configuration", t.ID)
	}
}

func synthesizeRemote(base *mcp.RemoteConfig, fields []catalog.Field, values map[string]string) *mcp.RemoteConfig {
	cfg := base.Clone().(*mcp.RemoteConfig)

	headers := make(map[string]string)
	for _, f := range fields {
		v := strings.TrimSpace(values[f.Key])
		if v == "" {
			continue
		}
		name, value := header(f.Key, v)
		headers[name] = value
	}

	if host := strings.TrimSpace(values["host"]); host != "" {
		cfg.URL = host
	} else if u := strings.TrimSpace(values["url"]); u != "" {
		cfg.URL = u
	}

	if len(headers) > 0 {
		cfg.Headers = headers
	}
	return cfg
}

// header maps a field key and its value to an HTTP header.
func header(key, value string) (string, string) {
	switch key {
	case "apiKey", "token", "accessToken":
		return headerAuthorization, "Bearer " + value
	case "projectApiKey":
		return headerAPIKey, value
	default:
		return "X-" + key, value
	}
}
