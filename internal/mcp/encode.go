package mcp

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// Format selects an export encoding for server configurations.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates an unsupported export format.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (valid: json, yaml, toml)", s)
}

// document is the exported shape, keyed the same way as the settings file.
type document struct {
	MCPServers map[string]Raw `json:"mcpServers" yaml:"mcpServers" toml:"mcpServers"`
}

// Encode writes servers to w in the given format.
func Encode(w io.Writer, f Format, servers map[string]ServerConfig) error {
	doc := document{MCPServers: make(map[string]Raw, len(servers))}
	for name, cfg := range servers {
		doc.MCPServers[name] = Flatten(cfg)
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding TOML")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}
