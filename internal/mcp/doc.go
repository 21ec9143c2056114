// Package mcp defines the configuration of MCP (Model Context Protocol)
// servers and their live availability.
//
// # Server Configuration
//
// [ServerConfig] is a closed union over transport kinds. A local server is a
// [*StdioConfig]; a remote server is a [*RemoteConfig] whose Type is either
// [TransportSSE] or [TransportStreamableHTTP]:
//
//	local := &mcp.StdioConfig{
//	    Command: "npx",
//	    Args:    []string{"-y", "@modelcontextprotocol/server-github"},
//	}
//
//	remote := &mcp.RemoteConfig{
//	    Type:    mcp.TransportStreamableHTTP,
//	    URL:     "https://api.stripe.com/mcp",
//	    Headers: map[string]string{"Authorization": "Bearer ${STRIPE_KEY}"},
//	}
//
// Adding a transport kind means adding a variant; every type switch over
// ServerConfig then needs a new case.
//
// # Serialization
//
// Both variants serialize through [Raw], the flat shape used by the settings
// document (`{"type": ..., "command"|"url": ...}`). Use [Decode] or
// [Raw.Config] to go back to a variant; both enforce [Validate].
//
// [Encode] writes a set of named configurations as JSON, YAML or TOML.
//
// # Availability
//
// [Server] pairs a configuration with the [Status], discovered tools, and
// optional error message reported by the last availability check.
package mcp
