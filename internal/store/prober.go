package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/thoreinstein/mcphub/internal/logging"
	"github.com/thoreinstein/mcphub/internal/mcp"
)

// DefaultProbeTimeout bounds a single remote availability check.
const DefaultProbeTimeout = 5 * time.Second

// ProbeResult is the outcome of checking one server.
type ProbeResult struct {
	Status mcp.Status
	Error  string
}

// Prober checks whether a configured server is reachable.
type Prober interface {
	Probe(ctx context.Context, name string, cfg mcp.ServerConfig) ProbeResult
}

// DefaultProber resolves stdio commands on PATH and issues a GET to remote
// endpoints. Any remote response below 500 counts as available.
type DefaultProber struct {
	client   *resty.Client
	lookPath func(string) (string, error)
}

// NewProber creates a DefaultProber. A zero timeout uses DefaultProbeTimeout.
func NewProber(timeout time.Duration) *DefaultProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", "mcphub")
	return &DefaultProber{client: client, lookPath: exec.LookPath}
}

// Probe implements Prober.
func (p *DefaultProber) Probe(ctx context.Context, name string, cfg mcp.ServerConfig) ProbeResult {
	logger := logging.FromContext(ctx).With(slog.String("server", name))

	switch c := cfg.(type) {
	case *mcp.StdioConfig:
		path, err := p.lookPath(c.Command)
		if err != nil {
			logger.Debug("command not found", "command", c.Command, "error", err)
			return ProbeResult{Status: mcp.StatusError, Error: fmt.Sprintf("command %q not found", c.Command)}
		}
		logger.Log(ctx, logging.LevelTrace, "command resolved", "path", path)
		return ProbeResult{Status: mcp.StatusAvailable}

	case *mcp.RemoteConfig:
		resp, err := p.client.R().
			SetContext(ctx).
			SetHeaders(c.Headers).
			SetDoNotParseResponse(true).
			Get(c.URL)
		if err != nil {
			logger.Debug("request failed", "url", c.URL, "error", err)
			return ProbeResult{Status: mcp.StatusError, Error: err.Error()}
		}
		if body := resp.RawBody(); body != nil {
			_ = body.Close()
		}

		code := resp.StatusCode()
		logger.Log(ctx, logging.LevelTrace, "probe response", "url", c.URL, "status", code)
		if code >= http.StatusInternalServerError {
			return ProbeResult{Status: mcp.StatusUnavailable, Error: fmt.Sprintf("server responded %d", code)}
		}
		return ProbeResult{Status: mcp.StatusAvailable}

	default:
		return ProbeResult{Status: mcp.StatusError, Error: mcp.ErrInvalidTransport.Error()}
	}
}
