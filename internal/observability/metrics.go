package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	RecordsLoaded  prometheus.Gauge
	DashboardReady prometheus.Gauge

	// Event dispatch metrics.
	EventsDispatched *prometheus.CounterVec // labels: event, outcome={ok,unknown}
	HandlerDuration  prometheus.Histogram
	FigureRequests   prometheus.Counter

	// Interaction stream metrics.
	InteractionsPublished *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.DashboardReady,
		m.EventsDispatched,
		m.HandlerDuration,
		m.FigureRequests,
		m.InteractionsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uninsured_dashboard",
			Name:      "records_loaded",
			Help:      "Rows held in the in-memory table since startup.",
		}),
		DashboardReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uninsured_dashboard",
			Name:      "ready",
			Help:      "1 once the event handlers are registered, 0 otherwise.",
		}),
		EventsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uninsured_dashboard",
			Name:      "events_dispatched_total",
			Help:      "UI events dispatched by event name and outcome.",
		}, []string{"event", "outcome"}),
		HandlerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uninsured_dashboard",
			Name:      "handler_duration_seconds",
			Help:      "Time spent inside an event handler.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		FigureRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uninsured_dashboard",
			Name:      "figure_requests_total",
			Help:      "Figures rendered outside event dispatch (page loads, direct API reads).",
		}),
		InteractionsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uninsured_dashboard",
			Name:      "interactions_published_total",
			Help:      "Interaction records handed to the stream by outcome.",
		}, []string{"outcome"}),
	}
}
