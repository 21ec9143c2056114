package mcp

import (
	"maps"
	"slices"
)

// Transport identifies how a configured server is reached.
type Transport string

// Transport kinds.
const (
	// TransportStdio launches a local subprocess and talks over stdin/stdout.
	TransportStdio Transport = "stdio"

	// TransportSSE connects to a remote endpoint using Server-Sent Events.
	TransportSSE Transport = "sse"

	// TransportStreamableHTTP connects to a remote endpoint using streamable HTTP.
	TransportStreamableHTTP Transport = "streamable-http"
)

// Transports lists every supported transport kind.
func Transports() []Transport {
	return []Transport{TransportStdio, TransportSSE, TransportStreamableHTTP}
}

// Valid reports whether t is a known transport kind.
func (t Transport) Valid() bool {
	return slices.Contains(Transports(), t)
}

// IsRemote reports whether t reaches a network endpoint.
func (t Transport) IsRemote() bool {
	return t == TransportSSE || t == TransportStreamableHTTP
}

// ServerConfig is the configuration of one MCP server. It is a closed set of
// variants: [*StdioConfig] and [*RemoteConfig]. Consumers switch on the
// concrete type:
//
//	switch c := cfg.(type) {
//	case *mcp.StdioConfig:
//	    run(c.Command, c.Args)
//	case *mcp.RemoteConfig:
//	    dial(c.URL, c.Headers)
//	}
type ServerConfig interface {
	// Transport returns the transport kind of the variant.
	Transport() Transport

	// Clone returns a deep copy.
	Clone() ServerConfig

	serverConfig()
}

// StdioConfig describes a server launched as a local subprocess.
type StdioConfig struct {
	// Command is the executable to launch. Required.
	Command string

	// Args are passed to Command in order.
	Args []string

	// Env holds extra environment variables for the process.
	Env map[string]string
}

// Transport implements ServerConfig.
func (*StdioConfig) Transport() Transport { return TransportStdio }

// Clone implements ServerConfig.
func (c *StdioConfig) Clone() ServerConfig {
	return &StdioConfig{
		Command: c.Command,
		Args:    slices.Clone(c.Args),
		Env:     maps.Clone(c.Env),
	}
}

func (*StdioConfig) serverConfig() {}

// RemoteConfig describes a server reached over the network.
type RemoteConfig struct {
	// Type is TransportSSE or TransportStreamableHTTP.
	Type Transport

	// URL is the endpoint. Required.
	URL string

	// Headers are sent with every request. Nil when no headers are configured.
	Headers map[string]string
}

// Transport implements ServerConfig.
func (c *RemoteConfig) Transport() Transport { return c.Type }

// Clone implements ServerConfig.
func (c *RemoteConfig) Clone() ServerConfig {
	return &RemoteConfig{
		Type:    c.Type,
		URL:     c.URL,
		Headers: maps.Clone(c.Headers),
	}
}

func (*RemoteConfig) serverConfig() {}

// Status is the live availability of a configured server.
type Status string

// Availability states reported by the store.
const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusError       Status = "error"
)

// Tool is one tool a server has enumerated.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}

// Server is a configured server together with its last known availability.
type Server struct {
	// Name is the unique key of the server in the settings document.
	Name string

	// Config is the server's configuration.
	Config ServerConfig

	// Status is the outcome of the most recent availability check.
	Status Status

	// Tools holds the tools discovered on the server, keyed by tool name.
	Tools map[string]Tool

	// Error is an optional human-readable reason for a non-available status.
	Error string
}

// Available reports whether the server's status is StatusAvailable.
func (s *Server) Available() bool {
	return s.Status == StatusAvailable
}

// ToolNames returns the names of the discovered tools in sorted order.
func (s *Server) ToolNames() []string {
	return slices.Sorted(maps.Keys(s.Tools))
}
