// Package metrics exposes flush and send activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements ports.FlushObserver and ports.SendObserver.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	flushesTotal  *prometheus.CounterVec
	eventsFlushed *prometheus.CounterVec
	sendsTotal    *prometheus.CounterVec
	bytesSent     prometheus.Counter
	sendDuration  prometheus.Histogram
}

// NewPrometheusMetrics creates the collectors on a private registry.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	if namespace == "" {
		namespace = "concordlog"
	}

	pm := &PrometheusMetrics{registry: prometheus.NewRegistry()}

	pm.flushesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushes_total",
			Help:      "Total number of non-empty flushes",
		},
		[]string{"reason"},
	)

	pm.eventsFlushed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_flushed_total",
			Help:      "Total number of events handed to the transmitter",
		},
		[]string{"reason"},
	)

	pm.sendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sends_total",
			Help:      "Total number of batch sends",
		},
		[]string{"status"},
	)

	pm.bytesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_sent_total",
			Help:      "Total request body bytes of successful sends",
		},
	)

	pm.sendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "send_duration_seconds",
			Help:      "Duration of successful sends in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	pm.registry.MustRegister(pm.flushesTotal)
	pm.registry.MustRegister(pm.eventsFlushed)
	pm.registry.MustRegister(pm.sendsTotal)
	pm.registry.MustRegister(pm.bytesSent)
	pm.registry.MustRegister(pm.sendDuration)

	return pm
}

// Handler serves the registry in the Prometheus exposition format.
func (pm *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Registry returns the underlying registry.
func (pm *PrometheusMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// OnFlush implements ports.FlushObserver.
func (pm *PrometheusMetrics) OnFlush(reason string, eventCount int) {
	pm.flushesTotal.WithLabelValues(reason).Inc()
	pm.eventsFlushed.WithLabelValues(reason).Add(float64(eventCount))
}

// OnSendSuccess implements ports.SendObserver.
func (pm *PrometheusMetrics) OnSendSuccess(eventCount, bytesSent int, duration time.Duration) {
	pm.sendsTotal.WithLabelValues("success").Inc()
	pm.bytesSent.Add(float64(bytesSent))
	pm.sendDuration.Observe(duration.Seconds())
}

// OnSendError implements ports.SendObserver.
func (pm *PrometheusMetrics) OnSendError(err error, eventCount int) {
	pm.sendsTotal.WithLabelValues("error").Inc()
}
