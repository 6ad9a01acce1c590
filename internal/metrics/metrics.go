// Package metrics defines the planner's Prometheus collectors. They are not
// registered anywhere; the embedding program decides where they go.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fftplan"

var (
	// PlansCreated counts successful plan constructions by transform kind.
	PlansCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_created_total",
		Help:      "Plans constructed successfully, by transform kind",
	}, []string{"kind"})

	// PlanFailures counts engine refusals by transform kind.
	PlanFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plan_failures_total",
		Help:      "Plan constructions the engine refused, by transform kind",
	}, []string{"kind"})

	// PlansLive tracks plans that have been created and not yet destroyed.
	PlansLive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "plans_live",
		Help:      "Engine plans currently alive",
	})

	// PlanningDuration observes time spent inside the engine planner.
	PlanningDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "planning_duration_seconds",
		Help:      "Time spent inside the engine planner, by transform kind",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"kind"})

	// LockWait observes how long planners waited for the construction lock.
	LockWait = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "plan_lock_wait_seconds",
		Help:      "Time spent waiting for the process-wide planning lock",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
	})
)

// Collectors returns every collector in this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{PlansCreated, PlanFailures, PlansLive, PlanningDuration, LockWait}
}

// ObservePlan records the outcome of one planning call. PlansLive is
// maintained by the plan handle itself, which also covers handles wrapped
// without going through the planner.
func ObservePlan(kind string, elapsed time.Duration, ok bool) {
	PlanningDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

	if ok {
		PlansCreated.WithLabelValues(kind).Inc()

		return
	}

	PlanFailures.WithLabelValues(kind).Inc()
}
