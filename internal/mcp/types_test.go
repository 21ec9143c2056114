package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTransport(t *testing.T) {
	tests := []struct {
		transport  Transport
		wantValid  bool
		wantRemote bool
	}{
		{TransportStdio, true, false},
		{TransportSSE, true, true},
		{TransportStreamableHTTP, true, true},
		{"http", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.transport), func(t *testing.T) {
			if got := tt.transport.Valid(); got != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", got, tt.wantValid)
			}
			if got := tt.transport.IsRemote(); got != tt.wantRemote {
				t.Errorf("IsRemote() = %v, want %v", got, tt.wantRemote)
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	remote := &RemoteConfig{
		Type:    TransportSSE,
		URL:     "https://api.openai.com/mcp",
		Headers: map[string]string{"Authorization": "Bearer a"},
	}
	c := remote.Clone().(*RemoteConfig)
	c.Headers["Authorization"] = "Bearer b"
	c.URL = "https://changed"

	if remote.Headers["Authorization"] != "Bearer a" || remote.URL != "https://api.openai.com/mcp" {
		t.Error("Clone() shares state with the original RemoteConfig")
	}

	stdio := &StdioConfig{Command: "npx", Args: []string{"-y", "pkg"}}
	s := stdio.Clone().(*StdioConfig)
	s.Args[0] = "--changed"
	if stdio.Args[0] != "-y" {
		t.Error("Clone() shares Args with the original StdioConfig")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr error
	}{
		{"valid stdio", &StdioConfig{Command: "npx"}, nil},
		{"valid sse", &RemoteConfig{Type: TransportSSE, URL: "https://x"}, nil},
		{"valid streamable", &RemoteConfig{Type: TransportStreamableHTTP, URL: "https://x"}, nil},
		{"stdio without command", &StdioConfig{Args: []string{"a"}}, ErrMissingCommand},
		{"remote without url", &RemoteConfig{Type: TransportSSE}, ErrMissingURL},
		{"remote with stdio type", &RemoteConfig{Type: TransportStdio, URL: "https://x"}, ErrInvalidTransport},
		{"nil config", nil, ErrInvalidTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error is %T, want *ConfigError", err)
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	if got := Validate(&StdioConfig{}).Error(); got != "Command is required for STDIO servers" {
		t.Errorf("stdio message = %q", got)
	}
	if got := Validate(&RemoteConfig{Type: TransportSSE}).Error(); got != "URL is required for SSE/HTTP servers" {
		t.Errorf("remote message = %q", got)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ServerConfig
		wantErr error
	}{
		{
			name:  "stdio",
			input: `{"type":"stdio","command":"npx","args":["-y","@modelcontextprotocol/server-github"]}`,
			want:  &StdioConfig{Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-github"}},
		},
		{
			name:  "streamable-http with headers",
			input: `{"type":"streamable-http","url":"https://api.stripe.com/mcp","headers":{"Authorization":"Bearer sk"}}`,
			want: &RemoteConfig{
				Type:    TransportStreamableHTTP,
				URL:     "https://api.stripe.com/mcp",
				Headers: map[string]string{"Authorization": "Bearer sk"},
			},
		},
		{
			name:  "type inferred from command",
			input: `{"command":"uvx","args":["mcp-server-fetch"]}`,
			want:  &StdioConfig{Command: "uvx", Args: []string{"mcp-server-fetch"}},
		},
		{
			name:  "type inferred from url",
			input: `{"url":"https://slack.com/api/mcp"}`,
			want:  &RemoteConfig{Type: TransportSSE, URL: "https://slack.com/api/mcp"},
		},
		{
			name:    "unknown type",
			input:   `{"type":"websocket","url":"wss://x"}`,
			wantErr: ErrInvalidTransport,
		},
		{
			name:    "empty object",
			input:   `{}`,
			wantErr: ErrInvalidTransport,
		},
		{
			name:    "stdio missing command",
			input:   `{"type":"stdio"}`,
			wantErr: ErrMissingCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := Decode([]byte(`{"type":`)); err == nil {
		t.Fatal("Decode() should fail on truncated JSON")
	}
}

func TestMarshalJSON_EmitsType(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{
			name: "stdio",
			cfg:  &StdioConfig{Command: "npx", Args: []string{"-y", "x"}},
			want: `{"type":"stdio","command":"npx","args":["-y","x"]}`,
		},
		{
			name: "remote without headers omits headers",
			cfg:  &RemoteConfig{Type: TransportSSE, URL: "https://api.openai.com/mcp"},
			want: `{"type":"sse","url":"https://api.openai.com/mcp"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cfg)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestServer_ToolNamesSorted(t *testing.T) {
	s := &Server{
		Status: StatusAvailable,
		Tools: map[string]Tool{
			"search_issues": {Name: "search_issues"},
			"create_issue":  {Name: "create_issue"},
		},
	}
	if !s.Available() {
		t.Error("Available() = false, want true")
	}
	if got := s.ToolNames(); !reflect.DeepEqual(got, []string{"create_issue", "search_issues"}) {
		t.Errorf("ToolNames() = %v", got)
	}
}

func TestEncode(t *testing.T) {
	servers := map[string]ServerConfig{
		"my-stripe": &RemoteConfig{
			Type:    TransportStreamableHTTP,
			URL:     "https://api.stripe.com/mcp",
			Headers: map[string]string{"Authorization": "Bearer sk_test_123"},
		},
	}

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatJSON, []string{`"mcpServers"`, `"my-stripe"`, `"type": "streamable-http"`}},
		{FormatYAML, []string{"mcpServers:", "my-stripe:", "type: streamable-http"}},
		{FormatTOML, []string{"[mcpServers.my-stripe]", "type = 'streamable-http'", "Authorization = 'Bearer sk_test_123'"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.format, servers); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("Encode(%s) output missing %q:\n%s", tt.format, w, buf.String())
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml", "toml"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) = %v, want ErrUnknownFormat", err)
	}
}
