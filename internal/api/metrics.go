package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric naming.
const (
	MetricsNamespace     = "mcphub"
	MetricsSubsystemHTTP = "http"
	MetricsSubsystemAPI  = "api"
	MetricsSubsystemApp  = "app"
)

// Update check outcomes used as the "outcome" label.
const (
	OutcomeUpdateAvailable = "update_available"
	OutcomeUpToDate        = "up_to_date"
	OutcomeNoReleases      = "no_releases"
	OutcomeFailed          = "failed"
)

// Metrics collects HTTP and update-check metrics in its own registry.
type Metrics struct {
	registry *prometheus.Registry

	apiTime           *prometheus.HistogramVec
	httpRequestsTotal prometheus.Counter
	httpErrorsTotal   prometheus.Counter
	updateChecks      *prometheus.CounterVec
}

// NewMetrics creates a collector with process and Go runtime metrics
// registered alongside the service's own.
func NewMetrics(version string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}))
	m.registry.MustRegister(collectors.NewGoCollector())

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemApp,
		Name:        "info",
		Help:        "The running mcphub version.",
		ConstLabels: prometheus.Labels{"version": version},
	})
	info.Set(1)
	m.registry.MustRegister(info)

	m.apiTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemAPI,
		Name:      "time_seconds",
		Help:      "Time to execute the api handler.",
	}, []string{"handler", "method", "status_code"})
	m.registry.MustRegister(m.apiTime)

	m.httpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of http API requests.",
	})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "errors_total",
		Help:      "The total number of http API errors.",
	})
	m.registry.MustRegister(m.httpErrorsTotal)

	m.updateChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemAPI,
		Name:      "update_checks_total",
		Help:      "The total number of update checks by outcome.",
	}, []string{"outcome"})
	m.registry.MustRegister(m.updateChecks)

	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAPIEndpointDuration records how long a handler took.
func (m *Metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	m.apiTime.WithLabelValues(handler, method, statusCode).Observe(elapsed)
}

// IncrementHTTPRequests counts a request.
func (m *Metrics) IncrementHTTPRequests() {
	m.httpRequestsTotal.Inc()
}

// IncrementHTTPErrors counts a response outside the 2xx range.
func (m *Metrics) IncrementHTTPErrors() {
	m.httpErrorsTotal.Inc()
}

// IncrementUpdateChecks counts an update check with the given outcome.
func (m *Metrics) IncrementUpdateChecks(outcome string) {
	m.updateChecks.WithLabelValues(outcome).Inc()
}
