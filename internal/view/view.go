// Package view derives the display model for the list of configured servers:
// per-entry icon category, summary line and availability, plus the count of
// available servers.
package view

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mcphub/internal/mcp"
)

// IconCategory classifies a server for its icon.
type IconCategory string

// Icon categories, matched against the server name.
const (
	IconDatabase   IconCategory = "database"
	IconFilesystem IconCategory = "filesystem"
	IconVCS        IconCategory = "vcs"
	IconChat       IconCategory = "chat"
	IconNetwork    IconCategory = "network"
	IconGeneric    IconCategory = "generic"
)

type iconRule struct {
	icon     IconCategory
	keywords []string
}

// iconRules is evaluated in order; the first rule with a keyword contained in
// the lower-cased name wins.
var iconRules = []iconRule{
	{IconDatabase, []string{"database", "db", "postgres", "sql"}},
	{IconFilesystem, []string{"file", "fs"}},
	{IconVCS, []string{"github", "git"}},
	{IconChat, []string{"slack"}},
	{IconNetwork, []string{"fetch", "http", "api"}},
}

// Icon returns the icon category for a server name.
func Icon(name string) IconCategory {
	lower := strings.ToLower(name)
	for _, r := range iconRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.icon
			}
		}
	}
	return IconGeneric
}

// Summary returns the one-line description of a configuration: the URL for
// remote servers, or the command followed by its arguments for stdio servers.
func Summary(cfg mcp.ServerConfig) string {
	switch c := cfg.(type) {
	case *mcp.RemoteConfig:
		return c.URL
	case *mcp.StdioConfig:
		return strings.Join(append([]string{c.Command}, c.Args...), " ")
	default:
		return ""
	}
}

// Entry is the display model of one configured server.
type Entry struct {
	Name      string
	Icon      IconCategory
	Summary   string
	Transport mcp.Transport
	Status    mcp.Status
	Available bool

	// Tools lists tool names, sorted. Only populated when Available.
	Tools []string

	// Error is the server's failure reason. Only populated when not Available.
	Error string
}

// List is the display model of all configured servers.
type List struct {
	// Entries preserves the order servers were configured in.
	Entries []Entry

	// AvailableCount is the number of entries with status available.
	AvailableCount int
}

// Empty reports whether no servers are configured.
func (l List) Empty() bool {
	return len(l.Entries) == 0
}

// Badge returns the integrations heading, e.g. "Integrations (2 available)".
// It omits the count when nothing is available.
func (l List) Badge() string {
	if l.AvailableCount == 0 {
		return "Integrations"
	}
	return fmt.Sprintf("Integrations (%d available)", l.AvailableCount)
}

// Build derives the display model from servers, which must be in
// configuration order.
func Build(servers []mcp.Server) List {
	list := List{Entries: make([]Entry, 0, len(servers))}
	for i := range servers {
		s := &servers[i]
		e := Entry{
			Name:      s.Name,
			Icon:      Icon(s.Name),
			Summary:   Summary(s.Config),
			Status:    s.Status,
			Available: s.Available(),
		}
		if s.Config != nil {
			e.Transport = s.Config.Transport()
		}
		if e.Available {
			list.AvailableCount++
			if len(s.Tools) > 0 {
				e.Tools = s.ToolNames()
			}
		} else {
			e.Error = s.Error
		}
		list.Entries = append(list.Entries, e)
	}
	return list
}
