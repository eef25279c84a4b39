package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session store metrics
var (
	// StoreTransitionsTotal counts store transitions by name and outcome
	// ("applied" or "noop").
	StoreTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlog_store_transitions_total",
			Help: "Session store transitions by transition and outcome",
		},
		[]string{"transition", "outcome"},
	)

	// StoreObserverPanics counts observer callbacks that panicked.
	StoreObserverPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liftlog_store_observer_panics_total",
			Help: "Observer callbacks that panicked while receiving a snapshot",
		},
	)
)

// Persistence metrics
var (
	// PersistenceOpsTotal counts writeback operations by operation and status.
	PersistenceOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlog_persistence_operations_total",
			Help: "Persistence operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// PersistenceFailuresTotal counts failed writes, which leave the
	// in-memory state ahead of the database.
	PersistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlog_persistence_failures_total",
			Help: "Persistence writes that failed and were dropped",
		},
		[]string{"operation"},
	)

	// PersistenceQueueDepth tracks operations waiting in the writeback queue.
	PersistenceQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "liftlog_persistence_queue_depth",
			Help: "Persistence operations waiting to run",
		},
	)

	// PersistenceOpDuration tracks writeback latency in seconds.
	PersistenceOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "liftlog_persistence_operation_duration_seconds",
			Help:    "Persistence operation duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// LoadFailuresTotal counts read paths that degraded to an empty view.
	LoadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlog_load_failures_total",
			Help: "Workout loads that failed and returned an empty result",
		},
		[]string{"query"},
	)
)

// Outcome labels for StoreTransitionsTotal.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
)

// Status labels for PersistenceOpsTotal.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ObserveTransition records a store transition outcome.
func ObserveTransition(name string, applied bool) {
	outcome := OutcomeNoop
	if applied {
		outcome = OutcomeApplied
	}
	StoreTransitionsTotal.WithLabelValues(name, outcome).Inc()
}
