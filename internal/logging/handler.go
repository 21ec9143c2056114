package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler writes one human-readable line per record:
//
//	3:04PM WARN  server unreachable name=github url=https://api.githubcopilot.com/mcp/
//
// Attributes inside groups are printed as "group.key". Credential-looking
// values are masked the same way the JSON outputs of New mask them. Color is
// used only when the writer supports it.
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	prefix string
	bound  []boundAttr
	colors palette
}

// boundAttr is an attribute added by WithAttrs, with the group prefix that
// was open at the time.
type boundAttr struct {
	prefix string
	attr   slog.Attr
}

type palette struct {
	time, key, trace, debug, info, warn, err *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.time, p.key, p.trace, p.debug, p.info, p.warn, p.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forLevel(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// NewHandler returns a Handler writing to out. Only opts.Level is consulted;
// a nil level means Info.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{
		level:  level,
		out:    out,
		mu:     &sync.Mutex{},
		colors: newPalette(SupportsColor(out)),
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(h.colors.time.Sprint(r.Time.Format(time.Kitchen)))
		b.WriteByte(' ')
	}
	b.WriteString(h.colors.forLevel(r.Level).Sprint(fmt.Sprintf("%-5s", levelName(r.Level))))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, ba := range h.bound {
		h.writeAttr(&b, ba.prefix, ba.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			h.writeAttr(b, prefix, member)
		}
		return
	}

	a = redactAttr(nil, a)
	b.WriteByte(' ')
	b.WriteString(h.colors.key.Sprint(prefix + a.Key))
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.bound = make([]boundAttr, len(h.bound), len(h.bound)+len(attrs))
	copy(next.bound, h.bound)
	for _, a := range attrs {
		next.bound = append(next.bound, boundAttr{prefix: h.prefix, attr: a})
	}
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelName(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}
	return l.String()
}
