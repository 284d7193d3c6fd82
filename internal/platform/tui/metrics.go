package tui

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/power-crisis/internal/storage"
)

// Metrics keep label cardinality bounded: game IDs and event kinds come
// from fixed sets, never from player input.
var (
	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "powercrisis_step_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	gameEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "powercrisis_events_total",
		Help: "Simulation events drained by game sessions",
	}, []string{"kind"}) // restock, fix_equipment, destroy_equipment

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "powercrisis_sessions_active",
		Help: "Currently connected SSH sessions",
	})

	sessionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "powercrisis_sessions_rejected_total",
		Help: "SSH sessions refused before the game started",
	}, []string{"reason"}) // rate_limit, no_pty

	runsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "powercrisis_runs_total",
		Help: "Finished runs",
	}, []string{"game"})

	runSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "powercrisis_run_seconds",
		Help:    "Survival time of finished runs",
		Buckets: prometheus.ExponentialBuckets(5, 2, 8),
	})
)

func recordStep(d time.Duration, events []string) {
	stepDuration.Observe(d.Seconds())
	for _, e := range events {
		gameEvents.WithLabelValues(e).Inc()
	}
}

func recordRun(r storage.Run) {
	runsFinished.WithLabelValues(r.GameID).Inc()
	runSeconds.Observe(r.Seconds)
}

func recordRejected(reason string) {
	sessionsRejected.WithLabelValues(reason).Inc()
}

// MetricsHandler serves the Prometheus metrics page.
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
