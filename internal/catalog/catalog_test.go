package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
)

func TestDefault_Loads(t *testing.T) {
	templates := Default()
	require.Len(t, templates, 11)

	ids := make([]string, len(templates))
	for i, tmpl := range templates {
		ids[i] = tmpl.ID
		assert.NotEmpty(t, tmpl.Name, tmpl.ID)
		assert.True(t, tmpl.Category.Valid(), tmpl.ID)
		assert.NoError(t, mcp.Validate(tmpl.Config), tmpl.ID)
	}
	assert.Equal(t, []string{
		"supabase", "claude-code", "stripe", "posthog", "hubspot", "github",
		"vercel", "slack", "notion", "openai", "21st-dev",
	}, ids)
}

func TestDefault_Stripe(t *testing.T) {
	stripe, err := Lookup(Default(), "stripe")
	require.NoError(t, err)

	assert.Equal(t, "Stripe", stripe.Name)
	assert.Equal(t, CategoryPayment, stripe.Category)
	assert.Equal(t, &mcp.RemoteConfig{
		Type: mcp.TransportStreamableHTTP,
		URL:  "https://api.stripe.com/mcp",
	}, stripe.Config)
	assert.Equal(t, []Field{
		{Key: "apiKey", Label: "Secret Key", Placeholder: "sk_test_...", Kind: InputPassword, Required: true},
	}, stripe.Fields)
}

func TestDefault_PostHogHostIsOptional(t *testing.T) {
	posthog, err := Lookup(Default(), "posthog")
	require.NoError(t, err)
	require.Len(t, posthog.Fields, 2)

	assert.Equal(t, "projectApiKey", posthog.Fields[0].Key)
	assert.True(t, posthog.Fields[0].Required)
	assert.Equal(t, "host", posthog.Fields[1].Key)
	assert.False(t, posthog.Fields[1].Required)
	assert.Equal(t, InputURL, posthog.Fields[1].Kind)
}

func TestDefault_ReturnsCopies(t *testing.T) {
	first := Default()
	first[0].Name = "mutated"
	first[0].Fields[0].Label = "mutated"
	first[0].Config.(*mcp.RemoteConfig).URL = "https://mutated"

	second := Default()
	assert.Equal(t, "Supabase", second[0].Name)
	assert.Equal(t, "Project URL", second[0].Fields[0].Label)
	assert.Equal(t, "https://api.supabase.com/mcp", second[0].Config.(*mcp.RemoteConfig).URL)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup(Default(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownTemplate))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryDatabase, CategoryAI, CategoryPayment, CategoryAnalytics,
		CategoryProductivity, CategoryDevelopment,
	}, Categories(Default()))
	assert.Empty(t, Categories(nil))
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Database", CategoryDatabase.Label())
	assert.Equal(t, "Ai", CategoryAI.Label())
	assert.Equal(t, "", Category("").Label())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate id",
			doc: `templates:
  - {id: a, name: A, category: ai, config: {type: sse, url: "https://a"}}
  - {id: a, name: B, category: ai, config: {type: sse, url: "https://b"}}`,
		},
		{
			name: "unknown category",
			doc: `templates:
  - {id: a, name: A, category: games, config: {type: sse, url: "https://a"}}`,
		},
		{
			name: "invalid base config",
			doc: `templates:
  - {id: a, name: A, category: ai, config: {type: sse}}`,
		},
		{
			name: "field without label",
			doc: `templates:
  - id: a
    name: A
    category: ai
    config: {type: sse, url: "https://a"}
    fields:
      - {key: apiKey}`,
		},
		{
			name: "unknown key",
			doc: `templates:
  - {id: a, name: A, category: ai, colour: red, config: {type: sse, url: "https://a"}}`,
		},
		{
			name: "missing name",
			doc: `templates:
  - {id: a, category: ai, config: {type: sse, url: "https://a"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_Stdio(t *testing.T) {
	templates, err := Parse([]byte(`templates:
  - id: fs
    name: Filesystem
    category: development
    config: {type: stdio, command: npx, args: ["-y", "@modelcontextprotocol/server-filesystem"]}
`))
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, &mcp.StdioConfig{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-filesystem"},
	}, templates[0].Config)
}
