package fftplan

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftplan/internal/engine"
	"github.com/cwbudde/algo-fftplan/internal/logging"
	"github.com/cwbudde/algo-fftplan/internal/metrics"
	"github.com/cwbudde/algo-fftplan/internal/planlock"
)

// NativePlan is an engine plan.
type NativePlan = engine.Plan

// RawPlan owns exactly one engine plan. It knows nothing about buffers:
// executing it after the memory it was planned for is gone is undefined.
// Plan is the safe wrapper.
type RawPlan struct {
	p         NativePlan
	live      prometheus.Gauge
	cleanup   runtime.Cleanup
	destroyed bool
}

// liveGauge is captured by each handle at creation, so destruction always
// decrements the gauge that creation incremented.
var liveGauge prometheus.Gauge = metrics.PlansLive

type nativeHandle struct {
	p    NativePlan
	live prometheus.Gauge
}

// NewRawPlan calls f while holding the process-wide planning lock. It
// returns ErrConstructionFailed if f returns nil.
func NewRawPlan(f func() NativePlan) (*RawPlan, error) {
	return newRawPlan("raw", f)
}

func newRawPlan(kind string, f func() NativePlan) (*RawPlan, error) {
	var elapsed time.Duration

	p := planlock.Run(func() NativePlan {
		start := time.Now()
		defer func() { elapsed = time.Since(start) }()

		return f()
	})

	metrics.ObservePlan(kind, elapsed, p != nil)

	if p == nil {
		logging.L().Debug("plan construction failed",
			zap.String("kind", kind), zap.Duration("elapsed", elapsed))

		return nil, ErrConstructionFailed
	}

	r := NewRawPlanUnchecked(p)

	logging.L().Debug("plan created",
		zap.String("kind", kind), zap.Duration("elapsed", elapsed), zap.Stringer("plan", p))

	return r, nil
}

// NewRawPlanUnchecked wraps a plan obtained elsewhere. It takes neither the
// planning lock nor checks p for nil.
func NewRawPlanUnchecked(p NativePlan) *RawPlan {
	live := liveGauge
	live.Inc()

	r := &RawPlan{p: p, live: live}
	r.cleanup = runtime.AddCleanup(r, destroyNative, nativeHandle{p: p, live: live})

	return r
}

// destroyNative runs under the planning lock: engines treat destruction as
// a planner operation.
func destroyNative(h nativeHandle) {
	if h.p != nil {
		planlock.Do(h.p.Destroy)
	}

	h.live.Dec()
}

// Execute runs the plan against the memory it was created for.
func (r *RawPlan) Execute() {
	if r.destroyed {
		precondition(ErrClosed, "execute after destroy")
	}

	r.p.Execute()
}

// Describe renders the engine's account of the plan.
func (r *RawPlan) Describe() string {
	if r.destroyed {
		return "(destroyed)"
	}

	return r.p.String()
}

// Destroy releases the engine plan. Only the first call has an effect.
func (r *RawPlan) Destroy() {
	if r.destroyed {
		return
	}

	r.destroyed = true
	r.cleanup.Stop()

	logging.L().Debug("plan destroyed", zap.Stringer("plan", r.p))
	destroyNative(nativeHandle{p: r.p, live: r.live})
}
