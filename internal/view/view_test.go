package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcphub/internal/mcp"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name string
		want IconCategory
	}{
		{"postgres-main", IconDatabase},
		{"MySQL", IconDatabase},
		{"supabase-db", IconDatabase},
		{"filesystem", IconFilesystem},
		{"local-fs", IconFilesystem},
		{"GitHub", IconVCS},
		{"gitlab", IconVCS},
		{"slack", IconChat},
		{"fetch", IconNetwork},
		{"stripe-api", IconNetwork},
		{"HTTP-proxy", IconNetwork},
		{"notion", IconGeneric},
		{"", IconGeneric},
		// Earlier rules win.
		{"github-db", IconDatabase},
		{"git-files", IconFilesystem},
		{"slack-api", IconChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Icon(tt.name))
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		cfg  mcp.ServerConfig
		want string
	}{
		{
			name: "sse",
			cfg:  &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "https://a.example.com/sse"},
			want: "https://a.example.com/sse",
		},
		{
			name: "streamable-http",
			cfg:  &mcp.RemoteConfig{Type: mcp.TransportStreamableHTTP, URL: "https://api.stripe.com/mcp"},
			want: "https://api.stripe.com/mcp",
		},
		{
			name: "stdio with args",
			cfg:  &mcp.StdioConfig{Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-filesystem", "/tmp"}},
			want: "npx -y @modelcontextprotocol/server-filesystem /tmp",
		},
		{
			name: "stdio without args",
			cfg:  &mcp.StdioConfig{Command: "mcp-server"},
			want: "mcp-server",
		},
		{
			name: "nil",
			cfg:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.cfg))
		})
	}
}

func TestBuild(t *testing.T) {
	servers := []mcp.Server{
		{
			Name:   "zeta-github",
			Config: &mcp.RemoteConfig{Type: mcp.TransportStreamableHTTP, URL: "https://api.github.com/mcp"},
			Status: mcp.StatusAvailable,
			Tools: map[string]mcp.Tool{
				"search_issues": {Name: "search_issues"},
				"create_pr":     {Name: "create_pr"},
			},
		},
		{
			Name:   "alpha-fs",
			Config: &mcp.StdioConfig{Command: "npx", Args: []string{"server-fs"}},
			Status: mcp.StatusError,
			Error:  "spawn npx ENOENT",
		},
		{
			Name:   "slack",
			Config: &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "https://slack.com/api/mcp"},
			Status: mcp.StatusUnavailable,
		},
		{
			Name:   "postgres",
			Config: &mcp.StdioConfig{Command: "pg-mcp"},
			Status: mcp.StatusAvailable,
			Error:  "stale message",
		},
	}

	list := Build(servers)
	require.Len(t, list.Entries, 4)
	assert.Equal(t, 2, list.AvailableCount)
	assert.False(t, list.Empty())

	names := make([]string, len(list.Entries))
	for i, e := range list.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"zeta-github", "alpha-fs", "slack", "postgres"}, names)

	assert.Equal(t, Entry{
		Name:      "zeta-github",
		Icon:      IconVCS,
		Summary:   "https://api.github.com/mcp",
		Transport: mcp.TransportStreamableHTTP,
		Status:    mcp.StatusAvailable,
		Available: true,
		Tools:     []string{"create_pr", "search_issues"},
	}, list.Entries[0])

	assert.Equal(t, Entry{
		Name:      "alpha-fs",
		Icon:      IconFilesystem,
		Summary:   "npx server-fs",
		Transport: mcp.TransportStdio,
		Status:    mcp.StatusError,
		Error:     "spawn npx ENOENT",
	}, list.Entries[1])

	assert.Empty(t, list.Entries[2].Error)
	assert.Equal(t, IconChat, list.Entries[2].Icon)

	assert.Empty(t, list.Entries[3].Error, "error is hidden for available servers")
	assert.Nil(t, list.Entries[3].Tools)
}

func TestBuild_IsStable(t *testing.T) {
	servers := []mcp.Server{
		{Name: "b", Config: &mcp.StdioConfig{Command: "b"}},
		{Name: "a", Config: &mcp.StdioConfig{Command: "a"}},
	}
	assert.Equal(t, Build(servers), Build(servers))
}

func TestList_Badge(t *testing.T) {
	assert.Equal(t, "Integrations", List{}.Badge())
	assert.Equal(t, "Integrations (3 available)", List{AvailableCount: 3}.Badge())
	assert.True(t, Build(nil).Empty())
}
