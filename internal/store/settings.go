package store

import (
	"encoding/json"
	"io/fs"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
	"github.com/thoreinstein/mcphub/internal/paths"
	"github.com/thoreinstein/mcphub/pkg/fileutil"
)

// ErrInvalidSettings indicates the settings document could not be decoded.
var ErrInvalidSettings = errors.New("invalid settings")

// Servers is an insertion-ordered mapping of server name to configuration.
// Its JSON form is an object whose key order is kept on read and write.
type Servers struct {
	om *orderedmap.OrderedMap[string, mcp.ServerConfig]
}

// NewServers returns an empty mapping.
func NewServers() *Servers {
	return &Servers{om: orderedmap.New[string, mcp.ServerConfig]()}
}

// Len returns the number of servers.
func (s *Servers) Len() int {
	if s == nil || s.om == nil {
		return 0
	}
	return s.om.Len()
}

// Get returns the configuration for name.
func (s *Servers) Get(name string) (mcp.ServerConfig, bool) {
	if s == nil || s.om == nil {
		return nil, false
	}
	return s.om.Get(name)
}

// Set adds or replaces name. A new name is appended; an existing name keeps
// its position. Unlike the read methods, Set needs a non-nil receiver; reach
// the mapping through Settings.Servers when it may not exist yet.
func (s *Servers) Set(name string, cfg mcp.ServerConfig) {
	if s.om == nil {
		s.om = orderedmap.New[string, mcp.ServerConfig]()
	}
	s.om.Set(name, cfg)
}

// Delete removes name and reports whether it was present.
func (s *Servers) Delete(name string) bool {
	if s == nil || s.om == nil {
		return false
	}
	_, ok := s.om.Delete(name)
	return ok
}

// Names returns the server names in insertion order.
func (s *Servers) Names() []string {
	names := make([]string, 0, s.Len())
	s.each(func(name string, _ mcp.ServerConfig) {
		names = append(names, name)
	})
	return names
}

// Clone returns a deep copy.
func (s *Servers) Clone() *Servers {
	out := NewServers()
	s.each(func(name string, cfg mcp.ServerConfig) {
		out.om.Set(name, cfg.Clone())
	})
	return out
}

func (s *Servers) each(fn func(string, mcp.ServerConfig)) {
	if s == nil || s.om == nil {
		return
	}
	for pair := s.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON writes the servers as an object in insertion order.
func (s *Servers) MarshalJSON() ([]byte, error) {
	raw := orderedmap.New[string, mcp.Raw](s.Len())
	s.each(func(name string, cfg mcp.ServerConfig) {
		raw.Set(name, mcp.Flatten(cfg))
	})
	return json.Marshal(raw)
}

// UnmarshalJSON reads an object of server configurations, keeping key order.
// Every entry must be a valid configuration.
func (s *Servers) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, mcp.Raw]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}

	out := orderedmap.New[string, mcp.ServerConfig](raw.Len())
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		cfg, err := pair.Value.Config()
		if err != nil {
			return errors.Wrapf(err, "server %q", pair.Key)
		}
		out.Set(pair.Key, cfg)
	}
	s.om = out
	return nil
}

// MCPConfig is the MCP section of the settings document.
type MCPConfig struct {
	Servers *Servers `json:"mcpServers"`
}

// Settings is the persisted settings document.
type Settings struct {
	MCPConfig MCPConfig `json:"mcpConfig"`
}

// NewSettings returns settings with no servers.
func NewSettings() *Settings {
	return &Settings{MCPConfig: MCPConfig{Servers: NewServers()}}
}

// Servers returns the server mapping, creating it for settings that were
// built as a zero value rather than by NewSettings or ParseSettings.
func (s *Settings) Servers() *Servers {
	if s.MCPConfig.Servers == nil {
		s.MCPConfig.Servers = NewServers()
	}
	return s.MCPConfig.Servers
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	return &Settings{MCPConfig: MCPConfig{Servers: s.MCPConfig.Servers.Clone()}}
}

// ParseSettings decodes a settings document. Empty input yields empty settings.
func ParseSettings(data []byte) (*Settings, error) {
	if len(data) == 0 {
		return NewSettings(), nil
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(ErrInvalidSettings, "%v", err)
	}
	s.Servers()
	return &s, nil
}

// LoadSettings reads the settings document at path. A missing file yields
// empty settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSettings(), nil
		}
		return nil, errors.Wrapf(err, "reading settings %s", path)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing settings %s", path)
	}
	return s, nil
}

// SaveSettings writes s to path atomically, creating parent directories.
func SaveSettings(path string, s *Settings) error {
	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}
	s.Servers()
	if err := fileutil.AtomicWriteJSONWithPerm(path, s, 0o600); err != nil {
		return errors.Wrapf(err, "writing settings %s", path)
	}
	return nil
}
