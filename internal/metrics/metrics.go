// Package metrics exposes generation and config counters on a private
// Prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "content_engine"

// Generation outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeEmpty      = "empty_selection"
	OutcomeValidation = "validation_error"
	OutcomeBusy       = "busy"
	OutcomeProvider   = "provider_error"
	OutcomeNoText     = "empty_response"
	OutcomeParse      = "parse_error"
)

type Metrics struct {
	registry        *prometheus.Registry
	generations     *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	productsPerRun  prometheus.Histogram
	configMutations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation requests by kind (fresh or revision) and outcome.",
		}, []string{"kind", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_seconds",
			Help:      "Latency of model calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"provider"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generations_in_flight",
			Help:      "Model calls currently pending.",
		}),
		productsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "products_per_result",
			Help:      "Products returned per successful generation.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}),
		configMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_mutations_total",
			Help:      "Persisted product and channel config changes by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		m.generations,
		m.latency,
		m.inFlight,
		m.productsPerRun,
		m.configMutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveGeneration(kind, outcome string) {
	m.generations.WithLabelValues(kind, outcome).Inc()
}

// StartCall marks a model call as pending. The returned func records its
// latency and must be called exactly once.
func (m *Metrics) StartCall(provider string) func() {
	start := time.Now()
	m.inFlight.Inc()
	return func() {
		m.inFlight.Dec()
		m.latency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveProducts(n int) {
	m.productsPerRun.Observe(float64(n))
}

func (m *Metrics) ConfigMutated(kind string) {
	m.configMutations.WithLabelValues(kind).Inc()
}
