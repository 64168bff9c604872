// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the API's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     prometheus.Histogram
	areasDeactivated prometheus.Counter
}

// NewCollector creates a Collector with its own registry, so tests can hold
// independent instances without duplicate-registration panics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleanupcoop_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cleanupcoop_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		areasDeactivated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cleanupcoop_areas_deactivated_total",
			Help: "Adopted areas deactivated by the expiry sweep.",
		}),
	}
	reg.MustRegister(c.httpRequests, c.httpDuration, c.areasDeactivated)
	return c
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.httpDuration.Observe(duration.Seconds())
}

// RecordAreasDeactivated records a sweep run's affected count.
func (c *Collector) RecordAreasDeactivated(n int64) {
	c.areasDeactivated.Add(float64(n))
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records status and latency for every request passing through.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		c.RecordHTTPRequest(sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
