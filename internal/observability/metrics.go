// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WorkoutsSaved counts committed workout sessions.
	WorkoutsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_workouts_saved_total",
		Help: "Total number of workout sessions saved",
	})

	// WorkoutSaveFailures counts workout saves that were rolled back.
	WorkoutSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_workout_save_failures_total",
		Help: "Total number of workout saves that failed and were rolled back",
	})

	// StrengthSetsSaved counts persisted strength set rows.
	StrengthSetsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_strength_sets_saved_total",
		Help: "Total number of strength sets saved",
	})

	// CardioEntriesSaved counts persisted cardio entry rows.
	CardioEntriesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlog_cardio_entries_saved_total",
		Help: "Total number of cardio entries saved",
	})

	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitlog_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitlog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// ObserveQuery records the latency of a database query started at start.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}

// RecordWorkoutSaved updates the save counters after a committed transaction.
func RecordWorkoutSaved(strengthSets, cardioEntries int) {
	WorkoutsSaved.Inc()
	StrengthSetsSaved.Add(float64(strengthSets))
	CardioEntriesSaved.Add(float64(cardioEntries))
}
