// Package store holds the configured MCP servers: the persisted settings
// document, the last known availability of each server and the refresh that
// updates it.
package store

import (
	"context"
	"log/slog"
	"maps"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/logging"
	"github.com/thoreinstein/mcphub/internal/mcp"
	"github.com/thoreinstein/mcphub/internal/mcp/validator"
	"github.com/thoreinstein/mcphub/internal/paths"
	"github.com/thoreinstein/mcphub/pkg/fileutil"
)

// Store is the source of configured servers and their availability.
type Store interface {
	// Initialize loads persisted state. It is safe to call more than once.
	Initialize(ctx context.Context) error

	// Servers returns the configured servers in configuration order.
	Servers(ctx context.Context) ([]mcp.Server, error)

	// CheckAvailability probes every configured server and records the results.
	// On error, previously recorded statuses are left untouched.
	CheckAvailability(ctx context.Context) error

	// Settings returns a copy of the current settings.
	Settings(ctx context.Context) (*Settings, error)

	// UpdateSettings validates and persists s as the whole settings document.
	UpdateSettings(ctx context.Context, s *Settings) error
}

// DefaultConcurrency is the number of servers probed at once.
const DefaultConcurrency = 4

// serverStatus is the cached availability of one server.
type serverStatus struct {
	Status    mcp.Status          `json:"status"`
	Tools     map[string]mcp.Tool `json:"tools,omitempty"`
	Error     string              `json:"error,omitempty"`
	CheckedAt time.Time           `json:"checkedAt"`
}

// FileStore keeps settings in a JSON file and availability in a second JSON
// file next to it.
type FileStore struct {
	settingsPath string
	statusPath   string
	prober       Prober
	validator    *validator.Validator
	concurrency  int
	now          func() time.Time

	mu          sync.Mutex
	initialized bool
	settings    *Settings
	status      map[string]serverStatus
}

var _ Store = (*FileStore)(nil)

// Option configures a FileStore.
type Option func(*FileStore)

// WithProber sets the availability prober.
func WithProber(p Prober) Option {
	return func(s *FileStore) { s.prober = p }
}

// WithStatusPath sets where availability results are cached. An empty path
// keeps them in memory only.
func WithStatusPath(path string) Option {
	return func(s *FileStore) { s.statusPath = path }
}

// WithConcurrency sets how many servers are probed at once.
func WithConcurrency(n int) Option {
	return func(s *FileStore) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithValidator replaces the settings validator.
func WithValidator(v *validator.Validator) Option {
	return func(s *FileStore) { s.validator = v }
}

// NewFileStore creates a store backed by the settings file at settingsPath.
func NewFileStore(settingsPath string, opts ...Option) *FileStore {
	s := &FileStore{
		settingsPath: settingsPath,
		prober:       NewProber(DefaultProbeTimeout),
		validator:    validator.New(),
		concurrency:  DefaultConcurrency,
		now:          time.Now,
		status:       make(map[string]serverStatus),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize implements Store.
func (s *FileStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked(ctx)
}

func (s *FileStore) initLocked(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	settings, err := LoadSettings(s.settingsPath)
	if err != nil {
		return err
	}

	status := make(map[string]serverStatus)
	if s.statusPath != "" {
		status, err = loadStatus(s.statusPath)
		if err != nil {
			// A corrupt cache only loses statuses.
			logging.FromContext(ctx).Warn("ignoring availability cache", "path", s.statusPath, "error", err)
			status = make(map[string]serverStatus)
		}
	}

	s.settings = settings
	s.status = status
	s.initialized = true
	logging.FromContext(ctx).Debug("store initialized",
		slog.String("settings", s.settingsPath),
		slog.Int("servers", settings.MCPConfig.Servers.Len()),
	)
	return nil
}

// Servers implements Store. Servers never checked report StatusUnavailable.
func (s *FileStore) Servers(ctx context.Context) ([]mcp.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return nil, err
	}

	servers := make([]mcp.Server, 0, s.settings.MCPConfig.Servers.Len())
	s.settings.MCPConfig.Servers.each(func(name string, cfg mcp.ServerConfig) {
		srv := mcp.Server{Name: name, Config: cfg.Clone(), Status: mcp.StatusUnavailable}
		if st, ok := s.status[name]; ok {
			srv.Status = st.Status
			srv.Tools = maps.Clone(st.Tools)
			srv.Error = st.Error
		}
		servers = append(servers, srv)
	})
	return servers, nil
}

// Settings implements Store.
func (s *FileStore) Settings(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return nil, err
	}
	return s.settings.Clone(), nil
}

// UpdateSettings implements Store. Validation errors wrap
// errors.ErrInvalidConfig; warnings are logged.
func (s *FileStore) UpdateSettings(ctx context.Context, settings *Settings) error {
	if settings == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "settings are nil")
	}
	logger := logging.FromContext(ctx)

	entries := make([]validator.Entry, 0, settings.MCPConfig.Servers.Len())
	settings.MCPConfig.Servers.each(func(name string, cfg mcp.ServerConfig) {
		entries = append(entries, validator.Entry{Name: name, Config: cfg})
	})
	results := s.validator.Validate(entries)
	for _, w := range validator.Warnings(results) {
		logger.Warn(w.Error())
	}
	if validator.HasErrors(results) {
		msgs := make([]string, 0, len(results))
		for _, e := range validator.Errors(results) {
			msgs = append(msgs, e.Error())
		}
		return errors.Wrap(errors.ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return err
	}

	next := settings.Clone()
	if err := SaveSettings(s.settingsPath, next); err != nil {
		return err
	}
	s.settings = next

	pruned := false
	for name := range s.status {
		if _, ok := next.MCPConfig.Servers.Get(name); !ok {
			delete(s.status, name)
			pruned = true
		}
	}
	if pruned {
		if err := s.saveStatusLocked(); err != nil {
			logger.Warn("failed to update availability cache", "error", err)
		}
	}

	logger.Info("settings saved", "path", s.settingsPath, "servers", next.MCPConfig.Servers.Len())
	return nil
}

// CheckAvailability implements Store.
func (s *FileStore) CheckAvailability(ctx context.Context) error {
	s.mu.Lock()
	if err := s.initLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.settings.MCPConfig.Servers.Clone()
	s.mu.Unlock()

	logger := logging.FromContext(ctx)
	names := snapshot.Names()
	results := make([]ProbeResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		cfg, _ := snapshot.Get(name)
		g.Go(func() error {
			results[i] = s.prober.Probe(gctx, name, cfg)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "checking availability")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.status)
	checkedAt := s.now()
	for i, name := range names {
		prev := next[name]
		st := serverStatus{
			Status:    results[i].Status,
			Error:     results[i].Error,
			CheckedAt: checkedAt,
		}
		// Tools are only known from an earlier enumeration; keep them while available.
		if st.Status == mcp.StatusAvailable {
			st.Tools = prev.Tools
		}
		next[name] = st
		logger.Debug("probed server", "server", name, "status", st.Status)
	}

	prev := s.status
	s.status = next
	if err := s.saveStatusLocked(); err != nil {
		s.status = prev
		return err
	}
	return nil
}

func (s *FileStore) saveStatusLocked() error {
	if s.statusPath == "" {
		return nil
	}
	if err := paths.EnsureDir(filepath.Dir(s.statusPath), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating data directory")
	}
	if err := fileutil.AtomicWriteJSON(s.statusPath, s.status); err != nil {
		return errors.Wrapf(err, "writing availability cache %s", s.statusPath)
	}
	return nil
}
