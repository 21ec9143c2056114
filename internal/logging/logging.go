package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/redact"
)

// Format selects how records are rendered on the primary output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value. Matching ignores case and
// surrounding space.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", errors.Newf("invalid log format %q", s)
}

// Config describes the logger built by New.
type Config struct {
	Level  slog.Level
	Format Format
	// Output receives the primary stream. Nil means os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every record regardless of
	// Format, such as the --log-file target.
	File io.Writer
}

// New builds the CLI logger. Unknown formats fall back to text. Both the
// primary stream and the file copy mask credential-looking attributes.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	jsonOpts := &slog.HandlerOptions{Level: cfg.Level, ReplaceAttr: redactAttr}

	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, jsonOpts)
	} else {
		h = NewHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	}

	if cfg.File != nil {
		h = fanout{h, slog.NewJSONHandler(cfg.File, jsonOpts)}
	}
	return slog.New(h)
}

// redactAttr masks attributes whose key names a credential, or whose string
// value carries a known token prefix. It has the slog ReplaceAttr signature.
func redactAttr(_ []string, a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch {
	case v.Kind() == slog.KindGroup:
		return a
	case redact.ShouldMask(a.Key):
		return slog.String(a.Key, redact.Header(v.String()))
	case v.Kind() == slog.KindString && redact.ContainsTokenPrefix(v.String()):
		return slog.String(a.Key, redact.Header(v.String()))
	}
	return a
}

// ForTest returns a Debug-level text logger that writes through tb.Log, so
// output shows up only for failing tests or under -v.
func ForTest(tb testing.TB) *slog.Logger {
	tb.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: tbWriter{tb},
	})
}

type tbWriter struct {
	tb testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
