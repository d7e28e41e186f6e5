package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sign-in outcomes recorded by the kiosk endpoint.
const (
	OutcomeRecorded       = "recorded"
	OutcomeAlreadySigned  = "already_signed_in"
	OutcomeUnknownStudent = "unknown_student"
	OutcomeError          = "error"
)

// Metrics holds the collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SignIns         *prometheus.CounterVec
}

// New creates the collectors and registers them on a private registry
// alongside the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "register",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "register",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		SignIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "register",
			Name:      "sign_ins_total",
			Help:      "Kiosk sign-in attempts by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.SignIns,
	)
	return m
}

// SignIn counts one kiosk attempt.
func (m *Metrics) SignIn(outcome string) {
	m.SignIns.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
