package metrics

import (
	"net/http"
	"strconv"

	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the shell's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	GuardDecisions  *prometheus.CounterVec
	MarkdownRenders prometheus.Counter
	SourceLoads     *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GuardDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surveyshell_guard_decisions_total",
				Help: "Navigation guard decisions by action",
			},
			[]string{"action"},
		),
		MarkdownRenders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "surveyshell_markdown_renders_total",
				Help: "Number of markdown conversions",
			},
		),
		SourceLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surveyshell_source_loads_total",
				Help: "Survey source loads by outcome",
			},
			[]string{"outcome"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surveyshell_http_requests_total",
				Help: "HTTP requests by route pattern and status code",
			},
			[]string{"route", "code"},
		),
	}

	m.registry.MustRegister(
		m.GuardDecisions,
		m.MarkdownRenders,
		m.SourceLoads,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveGuard is a navigation.Observer that counts decisions.
func (m *Metrics) ObserveGuard(_ navigation.Target, action navigation.Action) {
	m.GuardDecisions.WithLabelValues(string(action.Kind)).Inc()
}

// ObserveRequest counts a finished HTTP request.
func (m *Metrics) ObserveRequest(route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveRender counts a markdown conversion.
func (m *Metrics) ObserveRender() {
	m.MarkdownRenders.Inc()
}

// ObserveSourceLoad counts a survey source load by outcome ("ok", "not_found", "invalid", "error").
func (m *Metrics) ObserveSourceLoad(outcome string) {
	m.SourceLoads.WithLabelValues(outcome).Inc()
}
