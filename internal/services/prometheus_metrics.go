package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	upstreamFetches      *prometheus.CounterVec
	upstreamFetchSeconds prometheus.Histogram
	dashboardBalance     prometheus.Gauge
	sectionItems         *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the dashboard metrics with the default
// registry. Call once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of upstream API fetches by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		upstreamFetchSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_seconds",
				Help:    "Upstream API fetch duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
		),
		dashboardBalance: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_total_balance",
				Help: "Last published total balance across the resolved user's accounts",
			},
		),
		sectionItems: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_section_items",
				Help: "Item count of each dashboard section after its last successful load",
			},
			[]string{"section"},
		),
	}
}

func (m *PrometheusMetrics) RecordUpstreamFetch(resource, outcome string, duration time.Duration) {
	m.upstreamFetches.WithLabelValues(resource, outcome).Inc()
	m.upstreamFetchSeconds.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) SetDashboardBalance(balance float64) {
	m.dashboardBalance.Set(balance)
}

func (m *PrometheusMetrics) SetSectionItemCount(section string, count int) {
	m.sectionItems.WithLabelValues(section).Set(float64(count))
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything. Used in tests
// so repeated registrations never collide with the default registry.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) RecordUpstreamFetch(string, string, time.Duration) {}
func (noopMetrics) SetDashboardBalance(float64)                       {}
func (noopMetrics) SetSectionItemCount(string, int)                   {}
