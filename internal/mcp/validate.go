package mcp

import (
	"fmt"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// Sentinel errors for configuration invariants.
var (
	// ErrMissingCommand indicates a stdio server has no command.
	ErrMissingCommand = errors.New("Command is required for STDIO servers")

	// ErrMissingURL indicates a remote server has no URL.
	ErrMissingURL = errors.New("URL is required for SSE/HTTP servers")

	// ErrInvalidTransport indicates an unrecognized transport value.
	ErrInvalidTransport = errors.New("invalid transport type")
)

// ConfigError reports which field of a server configuration is invalid.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks the ServerConfig invariant: a stdio config carries a
// non-empty command and a remote config carries a known type and a
// non-empty URL. It is also the "test connection" check offered before a
// server is saved.
func Validate(cfg ServerConfig) error {
	switch c := cfg.(type) {
	case *StdioConfig:
		if c.Command == "" {
			return &ConfigError{Field: "command", Err: ErrMissingCommand}
		}
	case *RemoteConfig:
		if !c.Type.IsRemote() {
			return &ConfigError{Field: "type", Value: string(c.Type), Err: ErrInvalidTransport}
		}
		if c.URL == "" {
			return &ConfigError{Field: "url", Err: ErrMissingURL}
		}
	case nil:
		return &ConfigError{Field: "type", Err: ErrInvalidTransport}
	default:
		return &ConfigError{Field: "type", Value: string(c.Transport()), Err: ErrInvalidTransport}
	}
	return nil
}
