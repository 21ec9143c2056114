// Package release fetches published release metadata and decides whether a
// newer version than the running one exists.
package release

import (
	"context"
	"time"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// ErrNoReleases indicates the repository has not published any release.
var ErrNoReleases = errors.New("no releases found")

// Release is the metadata of the latest published release.
type Release struct {
	TagName     string
	HTMLURL     string
	Body        string
	PublishedAt time.Time
}

// Source returns the latest published release.
type Source interface {
	Latest(ctx context.Context) (*Release, error)
}
