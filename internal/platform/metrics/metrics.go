// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request-level and payment-outcome metrics.
type Collector struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpLatency    prometheus.Histogram
	paymentOutcome *prometheus.CounterVec
	loginFailures  prometheus.Counter
}

// NewCollector creates a Collector backed by its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bankportal_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankportal_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		paymentOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bankportal_payment_outcomes_total",
			Help: "Bill payment submissions by outcome.",
		}, []string{"outcome"}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bankportal_login_failures_total",
			Help: "Login attempts rejected for invalid credentials.",
		}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.paymentOutcome, c.loginFailures)
	return c
}

// RecordRequest counts a completed request and observes its latency.
func (c *Collector) RecordRequest(method, path string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(d.Seconds())
}

// RecordPaymentOutcome counts a valid payment submission by its simulated outcome.
func (c *Collector) RecordPaymentOutcome(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.paymentOutcome.WithLabelValues(outcome).Inc()
}

// RecordLoginFailure counts a credential mismatch on login.
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// Handler returns the Prometheus exposition endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.status = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.status = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// Middleware instruments every request passing through it.
// The route set is small and fixed, so the raw URL path is a safe label.
func (c *Collector) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			c.RecordRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
