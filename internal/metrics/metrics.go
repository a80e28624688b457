// Package metrics exposes Prometheus collectors for HTTP traffic and
// generation calls.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"giftcard/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "giftcard"

type Metrics struct {
	registry           *prometheus.Registry
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// New builds a Metrics instance on its own registry so tests can create as
// many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"route", "method"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "calls_total",
			Help:      "Generation calls by operation, tier and outcome.",
		}, []string{"operation", "tier", "outcome"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Upstream generation latency by operation and tier.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		}, []string{"operation", "tier"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.generations,
		m.generationDuration,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveGeneration matches the generation.Options OnComplete signature.
func (m *Metrics) ObserveGeneration(operation, tierID string, err error, elapsed time.Duration) {
	m.generations.WithLabelValues(operation, tierID, Outcome(err)).Inc()
	m.generationDuration.WithLabelValues(operation, tierID).Observe(elapsed.Seconds())
}

// Outcome buckets an error into a low-cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, domain.ErrConfiguration):
		return "configuration"
	case errors.Is(err, domain.ErrInvalidTier):
		return "invalid_tier"
	case errors.Is(err, domain.ErrUpstreamFormat):
		return "upstream_format"
	case errors.Is(err, domain.ErrUpstreamEmptyResult):
		return "upstream_empty"
	case errors.Is(err, domain.ErrUpstreamTransport):
		return "upstream_transport"
	default:
		return "error"
	}
}
