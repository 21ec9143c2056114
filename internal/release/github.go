package release

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v41/github"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// DefaultUserAgent identifies mcphub to the GitHub API.
const DefaultUserAgent = "mcphub"

// GitHubSource reads the latest release of a GitHub repository.
type GitHubSource struct {
	client *github.Client
	owner  string
	repo   string
}

// GitHubOption configures a GitHubSource.
type GitHubOption func(*GitHubSource) error

// WithBaseURL points the source at a different API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(raw string) GitHubOption {
	return func(s *GitHubSource) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "parsing base URL %q", raw)
		}
		s.client.BaseURL = u
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) GitHubOption {
	return func(s *GitHubSource) error {
		s.client.UserAgent = ua
		return nil
	}
}

// NewGitHubSource creates a source for owner/repo. A nil httpClient uses
// http.DefaultClient.
func NewGitHubSource(httpClient *http.Client, owner, repo string, opts ...GitHubOption) (*GitHubSource, error) {
	if owner == "" || repo == "" {
		return nil, errors.Newf("release repository must be owner/repo, got %q/%q", owner, repo)
	}

	client := github.NewClient(httpClient)
	client.UserAgent = DefaultUserAgent

	s := &GitHubSource{client: client, owner: owner, repo: repo}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Latest returns the latest release. A 404 from the API maps to ErrNoReleases.
func (s *GitHubSource) Latest(ctx context.Context) (*Release, error) {
	rel, resp, err := s.client.Repositories.GetLatestRelease(ctx, s.owner, s.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNoReleases
		}
		return nil, errors.Wrapf(err, "fetching latest release of %s/%s", s.owner, s.repo)
	}

	return &Release{
		TagName:     rel.GetTagName(),
		HTMLURL:     rel.GetHTMLURL(),
		Body:        rel.GetBody(),
		PublishedAt: rel.GetPublishedAt().Time,
	}, nil
}
