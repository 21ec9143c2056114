package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/thoreinstein/mcphub/internal/mcp"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name           string
		entries        []Entry
		opts           []Option
		wantErrCount   int
		wantWarnCount  int
		wantServerName string
		wantField      string
		wantMsgContain string
		wantErr        error
	}{
		{
			name: "valid stdio server",
			entries: []Entry{
				{Name: "github", Config: &mcp.StdioConfig{Command: "npx", Args: []string{"-y", "server-github"}}},
			},
		},
		{
			name: "valid streamable-http server",
			entries: []Entry{
				{Name: "my-stripe", Config: &mcp.RemoteConfig{
					Type:    mcp.TransportStreamableHTTP,
					URL:     "https://api.stripe.com/mcp",
					Headers: map[string]string{"Authorization": "Bearer sk"},
				}},
			},
		},
		{
			name:    "empty set allowed by default",
			entries: nil,
		},
		{
			name:           "empty set rejected",
			entries:        nil,
			opts:           []Option{WithAllowEmpty(false)},
			wantErrCount:   1,
			wantMsgContain: "no servers",
			wantErr:        ErrEmptyConfig,
		},
		{
			name: "missing name",
			entries: []Entry{
				{Config: &mcp.StdioConfig{Command: "npx"}},
			},
			wantErrCount: 1,
			wantField:    "name",
			wantErr:      ErrMissingServerName,
		},
		{
			name: "duplicate name",
			entries: []Entry{
				{Name: "fs", Config: &mcp.StdioConfig{Command: "a"}},
				{Name: "fs", Config: &mcp.StdioConfig{Command: "b"}},
			},
			wantErrCount:   1,
			wantServerName: "fs",
			wantErr:        ErrDuplicateServerName,
		},
		{
			name: "stdio without command",
			entries: []Entry{
				{Name: "broken", Config: &mcp.StdioConfig{}},
			},
			wantErrCount:   1,
			wantServerName: "broken",
			wantField:      "command",
			wantErr:        mcp.ErrMissingCommand,
		},
		{
			name: "remote without url",
			entries: []Entry{
				{Name: "broken", Config: &mcp.RemoteConfig{Type: mcp.TransportSSE}},
			},
			wantErrCount: 1,
			wantField:    "url",
			wantErr:      mcp.ErrMissingURL,
		},
		{
			name: "relative url",
			entries: []Entry{
				{Name: "rel", Config: &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "/mcp"}},
			},
			wantErrCount: 1,
			wantErr:      ErrInvalidURL,
		},
		{
			name: "plain http warns",
			entries: []Entry{
				{Name: "lan", Config: &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "http://10.0.0.5:8080/mcp"}},
			},
			wantWarnCount:  1,
			wantMsgContain: "unencrypted",
			wantErr:        ErrInsecureURL,
		},
		{
			name: "plain http to localhost is fine",
			entries: []Entry{
				{Name: "dev", Config: &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "http://127.0.0.1:3000/mcp"}},
			},
		},
		{
			name: "plain http allowed by option",
			entries: []Entry{
				{Name: "lan", Config: &mcp.RemoteConfig{Type: mcp.TransportSSE, URL: "http://10.0.0.5/mcp"}},
			},
			opts: []Option{WithAllowInsecure(true)},
		},
		{
			name: "empty header key",
			entries: []Entry{
				{Name: "h", Config: &mcp.RemoteConfig{
					Type:    mcp.TransportSSE,
					URL:     "https://x.example.com",
					Headers: map[string]string{"": "v"},
				}},
			},
			wantErrCount: 1,
			wantField:    "headers",
			wantErr:      ErrEmptyHeaderKey,
		},
		{
			name: "empty env key",
			entries: []Entry{
				{Name: "e", Config: &mcp.StdioConfig{Command: "x", Env: map[string]string{"": "v"}}},
			},
			wantErrCount: 1,
			wantField:    "env",
			wantErr:      ErrEmptyEnvKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := New(tt.opts...).Validate(tt.entries)

			if got := len(Errors(errs)); got != tt.wantErrCount {
				t.Errorf("error count = %d, want %d: %v", got, tt.wantErrCount, errs)
			}
			if got := len(Warnings(errs)); got != tt.wantWarnCount {
				t.Errorf("warning count = %d, want %d: %v", got, tt.wantWarnCount, errs)
			}
			if tt.wantErrCount == 0 && tt.wantWarnCount == 0 {
				if errs != nil {
					t.Errorf("Validate() = %v, want nil", errs)
				}
				return
			}

			first := errs[0]
			if tt.wantServerName != "" && first.ServerName != tt.wantServerName {
				t.Errorf("ServerName = %q, want %q", first.ServerName, tt.wantServerName)
			}
			if tt.wantField != "" && first.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", first.Field, tt.wantField)
			}
			if tt.wantMsgContain != "" && !strings.Contains(first.Message, tt.wantMsgContain) {
				t.Errorf("Message = %q, want to contain %q", first.Message, tt.wantMsgContain)
			}
			if tt.wantErr != nil && !errors.Is(first, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", first, tt.wantErr)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "server and field",
			err:  &ValidationError{ServerName: "s", Field: "url", Message: "bad", Severity: SeverityError},
			want: `error: server "s" field "url": bad`,
		},
		{
			name: "server only warning",
			err:  &ValidationError{ServerName: "s", Message: "meh", Severity: SeverityWarning},
			want: `warning: server "s": meh`,
		},
		{
			name: "message only",
			err:  &ValidationError{Message: "config has no servers"},
			want: "error: config has no servers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasErrorsAndWarnings(t *testing.T) {
	errs := []*ValidationError{
		{Severity: SeverityWarning},
	}
	if HasErrors(errs) {
		t.Error("HasErrors() = true for warnings only")
	}
	if !HasWarnings(errs) {
		t.Error("HasWarnings() = false")
	}
	errs = append(errs, &ValidationError{Severity: SeverityError})
	if !HasErrors(errs) {
		t.Error("HasErrors() = false with an error present")
	}
}
