package mcp

import (
	"encoding/json"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// Raw is the flat, serializable shape of a ServerConfig as it appears in the
// settings document, the embedded catalog, and the export formats:
//
//	{"type": "stdio", "command": "npx", "args": ["-y", "server-github"]}
//	{"type": "streamable-http", "url": "https://api.stripe.com/mcp", "headers": {...}}
type Raw struct {
	Type    string            `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Command string            `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`
	Args    []string          `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"`
	URL     string            `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" toml:"headers,omitempty"`
}

// Flatten converts a ServerConfig into its serializable form.
func Flatten(cfg ServerConfig) Raw {
	switch c := cfg.(type) {
	case *StdioConfig:
		return Raw{
			Type:    string(TransportStdio),
			Command: c.Command,
			Args:    c.Args,
			Env:     c.Env,
		}
	case *RemoteConfig:
		return Raw{
			Type:    string(c.Type),
			URL:     c.URL,
			Headers: c.Headers,
		}
	default:
		return Raw{}
	}
}

// Config builds the ServerConfig variant selected by r.Type and validates it.
// When Type is empty the transport is inferred: a command means stdio, a URL
// alone means sse.
func (r Raw) Config() (ServerConfig, error) {
	transport := Transport(r.Type)
	if transport == "" {
		switch {
		case r.Command != "":
			transport = TransportStdio
		case r.URL != "":
			transport = TransportSSE
		}
	}

	var cfg ServerConfig
	switch {
	case transport == TransportStdio:
		cfg = &StdioConfig{Command: r.Command, Args: r.Args, Env: r.Env}
	case transport.IsRemote():
		cfg = &RemoteConfig{Type: transport, URL: r.URL, Headers: r.Headers}
	default:
		return nil, &ConfigError{Field: "type", Value: r.Type, Err: ErrInvalidTransport}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses a JSON server configuration into its variant.
func Decode(data []byte) (ServerConfig, error) {
	var r Raw
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "decoding server config")
	}
	return r.Config()
}

// MarshalJSON implements json.Marshaler.
func (c *StdioConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(Flatten(c))
}

// MarshalJSON implements json.Marshaler.
func (c *RemoteConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(Flatten(c))
}
