// Package flags provides shared state for CLI commands: the loaded
// configuration and factories for the collaborators commands talk to.
// This package exists to avoid import cycles between the root command
// and noun subpackages (market, server, update).
package flags

import (
	"context"
	"net/http"

	"github.com/thoreinstein/mcphub/cmd"
	"github.com/thoreinstein/mcphub/internal/config"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/release"
	"github.com/thoreinstein/mcphub/internal/store"
)

// StoreFactory builds the store commands read and write servers through.
type StoreFactory func(cfg *config.Config) store.Store

// Checker reports whether a newer release exists.
type Checker interface {
	Check(ctx context.Context) (release.Result, error)
}

// CheckerFactory builds the update checker.
type CheckerFactory func(cfg *config.Config) (Checker, error)

var (
	cfg            *config.Config
	storeFactory   StoreFactory   = NewFileStore
	checkerFactory CheckerFactory = NewReleaseChecker
)

// Config returns the loaded configuration, or defaults if none was loaded.
func Config() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// SetConfig sets the configuration seen by subcommands.
func SetConfig(c *config.Config) {
	cfg = c
}

// SetStoreFactory replaces the store factory and returns a function that
// restores the previous one.
func SetStoreFactory(f StoreFactory) (restore func()) {
	prev := storeFactory
	storeFactory = f
	return func() { storeFactory = prev }
}

// SetCheckerFactory replaces the checker factory and returns a function that
// restores the previous one.
func SetCheckerFactory(f CheckerFactory) (restore func()) {
	prev := checkerFactory
	checkerFactory = f
	return func() { checkerFactory = prev }
}

// OpenStore builds the store and initializes it.
func OpenStore(ctx context.Context) (store.Store, error) {
	s := storeFactory(Config())
	if err := s.Initialize(ctx); err != nil {
		return nil, errors.NewSystemError(
			errors.Wrap(err, "loading settings"),
			"Check that the settings file is valid JSON: mcphub config show",
		)
	}
	return s, nil
}

// NewChecker builds the update checker.
func NewChecker() (Checker, error) {
	return checkerFactory(Config())
}

// NewFileStore is the default StoreFactory.
func NewFileStore(c *config.Config) store.Store {
	return store.NewFileStore(c.SettingsFile,
		store.WithStatusPath(c.StatusFile),
		store.WithProber(store.NewProber(c.Probe.Timeout)),
		store.WithConcurrency(c.Probe.Concurrency),
	)
}

// NewReleaseChecker is the default CheckerFactory. It reads releases from
// GitHub.
func NewReleaseChecker(c *config.Config) (Checker, error) {
	var opts []release.GitHubOption
	if c.Release.BaseURL != "" {
		opts = append(opts, release.WithBaseURL(c.Release.BaseURL))
	}
	src, err := release.NewGitHubSource(http.DefaultClient, c.Release.Owner, c.Release.Repo, opts...)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return release.NewChecker(src, cmd.Version), nil
}
