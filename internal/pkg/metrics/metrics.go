// Package metrics exposes Prometheus collectors for HTTP traffic and the prescription workflow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector the application records
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	prescriptionsCreated  *prometheus.CounterVec
	prescriptionsApproved prometheus.Counter
	loginAttempts         *prometheus.CounterVec
	calculatorRequests    *prometheus.CounterVec
}

// New creates the collectors on a private registry together with the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		prescriptionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prescriptions_created_total",
				Help: "Prescriptions created, by initial status",
			},
			[]string{"status"},
		),
		prescriptionsApproved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "prescriptions_approved_total",
				Help: "Prescriptions approved by a teacher",
			},
		),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
		calculatorRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_requests_total",
				Help: "Clinical calculator requests",
			},
			[]string{"calculator", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.prescriptionsCreated,
		m.prescriptionsApproved,
		m.loginAttempts,
		m.calculatorRequests,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count and latency per route template
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// PrescriptionCreated counts a new prescription under its initial status
func (m *Metrics) PrescriptionCreated(status string) {
	m.prescriptionsCreated.WithLabelValues(status).Inc()
}

// PrescriptionApproved counts an approval
func (m *Metrics) PrescriptionApproved() {
	m.prescriptionsApproved.Inc()
}

// LoginAttempt counts a login by outcome
func (m *Metrics) LoginAttempt(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	m.loginAttempts.WithLabelValues(status).Inc()
}

// CalculatorRequest counts a calculator call by outcome
func (m *Metrics) CalculatorRequest(calculator string, ok bool) {
	status := "error"
	if ok {
		status = "success"
	}
	m.calculatorRequests.WithLabelValues(calculator, status).Inc()
}
