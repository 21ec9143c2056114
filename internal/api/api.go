// Package api serves the update-check action and the metrics endpoint over
// HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thoreinstein/mcphub/internal/release"
)

// Routes.
const (
	UpdatePath  = "/api/update"
	MetricsPath = "/metrics"
)

// UpdateChecker performs an update check.
type UpdateChecker interface {
	Check(ctx context.Context) (release.Result, error)
}

// UpdateResponse is the success body of the update-check action.
type UpdateResponse struct {
	UpdateAvailable bool   `json:"updateAvailable"`
	CurrentVersion  string `json:"currentVersion"`
	LatestVersion   string `json:"latestVersion,omitempty"`
	ReleaseURL      string `json:"releaseUrl,omitempty"`
	ReleaseNotes    string `json:"releaseNotes,omitempty"`
	PublishedAt     string `json:"publishedAt,omitempty"`
	Message         string `json:"message,omitempty"`
}

// ErrorResponse is the failure body of the update-check action.
type ErrorResponse struct {
	Error          string `json:"error"`
	CurrentVersion string `json:"currentVersion,omitempty"`
	Message        string `json:"message,omitempty"`
}

// API holds the handlers and their collaborators.
type API struct {
	checker UpdateChecker
	current string
	metrics *Metrics
	logger  *slog.Logger
}

// New creates an API. A nil logger uses slog.Default.
func New(checker UpdateChecker, current string, metrics *Metrics, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		checker: checker,
		current: current,
		metrics: metrics,
		logger:  logger,
	}
}

// Router builds the gin engine serving the API.
func (a *API) Router() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(a.ginlogger)
	router.Use(a.metricsMiddleware)

	router.NoMethod(a.handleMethodNotAllowed)

	router.POST(UpdatePath, a.handleUpdate)
	router.GET(MetricsPath, gin.WrapH(a.metrics.Handler()))

	return router
}

func (a *API) metricsMiddleware(c *gin.Context) {
	a.metrics.IncrementHTTPRequests()
	now := time.Now()

	c.Next()

	elapsed := float64(time.Since(now)) / float64(time.Second)

	status := c.Writer.Status()
	if status < 200 || status > 299 {
		a.metrics.IncrementHTTPErrors()
	}

	a.metrics.ObserveAPIEndpointDuration(c.FullPath(), c.Request.Method, strconv.Itoa(status), elapsed)
}

func (a *API) ginlogger(c *gin.Context) {
	c.Next()

	a.logger.Debug("request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
	)
	for _, ginErr := range c.Errors {
		a.logger.Error(ginErr.Error())
	}
}

func (a *API) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func (a *API) handleUpdate(c *gin.Context) {
	result, err := a.checker.Check(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		a.metrics.IncrementUpdateChecks(OutcomeFailed)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:          "Failed to check for updates",
			CurrentVersion: a.current,
			Message:        err.Error(),
		})
		return
	}

	a.metrics.IncrementUpdateChecks(outcome(result))
	c.JSON(http.StatusOK, NewUpdateResponse(result))
}

func outcome(r release.Result) string {
	switch {
	case r.LatestVersion == "":
		return OutcomeNoReleases
	case r.UpdateAvailable:
		return OutcomeUpdateAvailable
	default:
		return OutcomeUpToDate
	}
}

// NewUpdateResponse converts a check result to its JSON body.
func NewUpdateResponse(r release.Result) UpdateResponse {
	resp := UpdateResponse{
		UpdateAvailable: r.UpdateAvailable,
		CurrentVersion:  r.CurrentVersion,
		LatestVersion:   r.LatestVersion,
		ReleaseURL:      r.ReleaseURL,
		ReleaseNotes:    r.ReleaseNotes,
		Message:         r.Message,
	}
	if !r.PublishedAt.IsZero() {
		resp.PublishedAt = r.PublishedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
