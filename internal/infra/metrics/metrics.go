// Package metrics exposes Prometheus instrumentation for the gateway.
package metrics

import (
	"time"

	"languagebot/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "languagebot"

// NewRegistry creates the process registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewGatherer exposes the registry to the /metrics handler.
func NewGatherer(reg *prometheus.Registry) prometheus.Gatherer {
	return reg
}

// proxyMetrics implements service.ProxyMetrics.
type proxyMetrics struct {
	requestsTotal    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

// NewProxyMetrics registers the gateway collectors on reg.
func NewProxyMetrics(reg *prometheus.Registry) service.ProxyMetrics {
	factory := promauto.With(reg)

	return &proxyMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "proxy_requests_total",
				Help:      "Total number of proxied requests by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "proxy_upstream_duration_seconds",
				Help:      "Upstream round-trip duration in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		),
	}
}

func (m *proxyMetrics) ObserveRequest(outcome string) {
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *proxyMetrics) ObserveUpstreamDuration(d time.Duration) {
	m.upstreamDuration.Observe(d.Seconds())
}

// auditMetrics implements service.AuditMetrics.
type auditMetrics struct {
	eventsTotal *prometheus.CounterVec
}

// NewAuditMetrics registers the audit worker collectors on reg.
func NewAuditMetrics(reg *prometheus.Registry) service.AuditMetrics {
	return &auditMetrics{
		eventsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_events_total",
				Help:      "Audit events received by the worker, by type and result",
			},
			[]string{"type", "result"},
		),
	}
}

func (m *auditMetrics) ObserveAuditEvent(eventType string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
		eventType = "unknown"
	}
	m.eventsTotal.WithLabelValues(eventType, result).Inc()
}
