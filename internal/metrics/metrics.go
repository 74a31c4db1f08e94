// Package metrics exposes client-side Prometheus metrics on a dedicated
// registry.
//
// Metrics:
//   - wbgnews_api_attempts_total{method,outcome}: every HTTP attempt
//   - wbgnews_api_attempt_duration_seconds{method}: attempt latency
//   - wbgnews_api_retries_total{method}: attempts scheduled after a failure
//   - wbgnews_api_failures_total{method,kind}: logical requests that failed
//   - wbgnews_refresh_total{result}: poller refreshes by success/failure
//   - wbgnews_meetings: meetings in the last successful refresh
//   - wbgnews_last_refresh_success_timestamp_seconds
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JawandS/WbgNews/internal/httpclient"
)

const namespace = "wbgnews"

// ClientMetrics implements httpclient.Observer and records poller outcomes.
type ClientMetrics struct {
	registry *prometheus.Registry

	Attempts        *prometheus.CounterVec
	AttemptDuration *prometheus.HistogramVec
	Retries         *prometheus.CounterVec
	Failures        *prometheus.CounterVec

	Refreshes          *prometheus.CounterVec
	Meetings           prometheus.Gauge
	LastRefreshSuccess prometheus.Gauge
}

var _ httpclient.Observer = (*ClientMetrics)(nil)

// New registers every collector on a fresh registry. Each call is
// independent, so tests can build as many as they like.
func New() *ClientMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &ClientMetrics{
		registry: reg,
		Attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_attempts_total",
			Help:      "HTTP attempts against the meetings API by outcome.",
		}, []string{"method", "outcome"}),
		AttemptDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_attempt_duration_seconds",
			Help:      "Latency of single HTTP attempts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		Retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_retries_total",
			Help:      "Attempts scheduled after a retryable failure.",
		}, []string{"method"}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_failures_total",
			Help:      "Logical requests that failed, by error kind.",
		}, []string{"method", "kind"}),
		Refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_total",
			Help:      "Meeting list refreshes by result.",
		}, []string{"result"}),
		Meetings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "meetings",
			Help:      "Meetings returned by the last successful refresh.",
		}),
		LastRefreshSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_refresh_success_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
	}
}

// ObserveAttempt records one HTTP attempt.
func (m *ClientMetrics) ObserveAttempt(method, outcome string, elapsed time.Duration) {
	m.Attempts.WithLabelValues(method, outcome).Inc()
	m.AttemptDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveRetry records a scheduled retry.
func (m *ClientMetrics) ObserveRetry(method string) {
	m.Retries.WithLabelValues(method).Inc()
}

// ObserveFailure records a failed logical request.
func (m *ClientMetrics) ObserveFailure(method, kind string) {
	m.Failures.WithLabelValues(method, kind).Inc()
}

// RecordRefresh records a poller refresh. count is ignored on failure.
func (m *ClientMetrics) RecordRefresh(count int, err error) {
	if err != nil {
		m.Refreshes.WithLabelValues("failure").Inc()
		return
	}
	m.Refreshes.WithLabelValues("success").Inc()
	m.Meetings.Set(float64(count))
	m.LastRefreshSuccess.SetToCurrentTime()
}

// Registry returns the registry the collectors live on.
func (m *ClientMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
