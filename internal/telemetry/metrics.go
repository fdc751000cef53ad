package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the report pipeline
type Metrics struct {
	// Deck generation metrics
	DeckGenerations *prometheus.CounterVec
	DeckDuration    *prometheus.HistogramVec
	DeckSlideCount  *prometheus.HistogramVec

	// Status-file load metrics
	StatusLoads      *prometheus.CounterVec
	StatusLoadErrors *prometheus.CounterVec
	StatusMilestones *prometheus.HistogramVec
	StatusRisks      *prometheus.HistogramVec

	// Watch mode metrics
	WatchRebuilds *prometheus.CounterVec

	// Error metrics (by error code from structured errors)
	Errors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		// Deck generation metrics
		DeckGenerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "podium_deck_generations_total",
				Help: "Total number of deck generations",
			},
			[]string{"success"},
		),
		DeckDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "podium_deck_duration_seconds",
				Help:    "Deck generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{},
		),
		DeckSlideCount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "podium_deck_slide_count",
				Help:    "Number of slides in generated decks",
				Buckets: []float64{1, 2, 5, 10, 20, 50},
			},
			[]string{},
		),

		// Status-file load metrics
		StatusLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "podium_status_loads_total",
				Help: "Total number of status file loads",
			},
			[]string{"format", "success"},
		),
		StatusLoadErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "podium_status_load_errors_total",
				Help: "Total number of status file load errors",
			},
			[]string{"error_code"},
		),
		StatusMilestones: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "podium_status_milestone_count",
				Help:    "Number of milestones in loaded status files",
				Buckets: []float64{1, 5, 10, 20, 50, 100, 200},
			},
			[]string{},
		),
		StatusRisks: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "podium_status_risk_count",
				Help:    "Number of risks in loaded status files",
				Buckets: []float64{1, 2, 5, 10, 20, 50},
			},
			[]string{},
		),

		// Watch mode metrics
		WatchRebuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "podium_watch_rebuilds_total",
				Help: "Total number of rebuilds triggered by watch mode",
			},
			[]string{"success"},
		),

		// Error metrics (by structured error code)
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "podium_errors_total",
				Help: "Total number of errors by error code",
			},
			[]string{"error_code", "component"},
		),
	}
}
