package release

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/logging"
	"github.com/thoreinstein/mcphub/internal/version"
)

// NoReleasesMessage is reported when the repository has no releases yet.
const NoReleasesMessage = "No releases found. You are running the latest development version."

// Result is the outcome of an update check.
type Result struct {
	UpdateAvailable bool
	CurrentVersion  string

	// The fields below are set only when a release was found.
	LatestVersion string
	ReleaseURL    string
	ReleaseNotes  string
	PublishedAt   time.Time

	// Message is set when no release was found.
	Message string
}

// Checker compares the running version against the latest release.
type Checker struct {
	Source  Source
	Current string
}

// NewChecker creates a Checker for the running version current.
func NewChecker(src Source, current string) *Checker {
	return &Checker{Source: src, Current: current}
}

// Check fetches the latest release and compares it with the running version.
// A leading "v" on the release tag is ignored. When the repository has no
// releases the result reports no update and carries NoReleasesMessage.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	logger := logging.FromContext(ctx)

	rel, err := c.Source.Latest(ctx)
	if errors.Is(err, ErrNoReleases) {
		logger.Debug("no releases published", "current", c.Current)
		return Result{CurrentVersion: c.Current, Message: NoReleasesMessage}, nil
	}
	if err != nil {
		return Result{}, err
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	ord, err := version.Compare(latest, c.Current)
	if err != nil {
		return Result{}, errors.Wrap(err, "comparing versions")
	}

	logger.Debug("release fetched",
		slog.String("current", c.Current),
		slog.String("latest", latest),
		slog.String("ordering", ord.String()),
	)

	return Result{
		UpdateAvailable: ord == version.Greater,
		CurrentVersion:  c.Current,
		LatestVersion:   latest,
		ReleaseURL:      rel.HTMLURL,
		ReleaseNotes:    rel.Body,
		PublishedAt:     rel.PublishedAt,
	}, nil
}
