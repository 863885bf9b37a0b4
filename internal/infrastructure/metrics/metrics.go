// Package metrics exposes Prometheus instrumentation for availability checks.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cabin_checker"

// Notification status label values.
const (
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// Metrics holds the collectors updated by the checker.
type Metrics struct {
	registry      *prometheus.Registry
	checks        *prometheus.CounterVec
	notifications *prometheus.CounterVec
	cabins        *prometheus.GaugeVec
	duration      *prometheus.HistogramVec
}

// New creates the collectors and registers them on a dedicated registry,
// together with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Number of availability checks by route and outcome",
		}, []string{"route", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Number of availability notifications by status",
		}, []string{"status"}),
		cabins: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "available_cabins",
			Help:      "Allow-listed cabin categories with berths left at the last check",
		}, []string{"route"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Duration of availability checks including the booking API call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.checks,
		m.notifications,
		m.cabins,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCheck records the outcome and duration of one check.
func (m *Metrics) ObserveCheck(route, outcome string, cabins int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(route, outcome).Inc()
	m.cabins.WithLabelValues(route).Set(float64(cabins))
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveNotification records a notification attempt.
func (m *Metrics) ObserveNotification(err error) {
	if m == nil {
		return
	}
	status := NotificationSent
	if err != nil {
		status = NotificationFailed
	}
	m.notifications.WithLabelValues(status).Inc()
}

// Handler returns the HTTP handler serving the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
