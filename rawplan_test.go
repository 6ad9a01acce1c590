package fftplan

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fftplan/internal/metrics"
)

func TestNewRawPlan_NilIsConstructionFailure(t *testing.T) {
	t.Parallel()

	r, err := NewRawPlan(func() NativePlan { return nil })
	require.ErrorIs(t, err, ErrConstructionFailed)
	assert.Nil(t, r)
}

func TestRawPlan_ExecuteAndDestroyOnce(t *testing.T) {
	t.Parallel()

	stub := &stubPlan{}

	r, err := NewRawPlan(func() NativePlan { return stub })
	require.NoError(t, err)

	r.Execute()
	r.Execute()
	assert.Equal(t, int32(2), stub.executed.Load())
	assert.Equal(t, "(stub)", r.Describe())

	r.Destroy()
	r.Destroy()
	assert.Equal(t, int32(1), stub.destroyed.Load())

	requirePanicsWith(t, ErrClosed, r.Execute)
}

func TestNewRawPlanUnchecked(t *testing.T) {
	t.Parallel()

	stub := &stubPlan{}
	r := NewRawPlanUnchecked(stub)

	r.Execute()
	r.Destroy()

	assert.Equal(t, int32(1), stub.executed.Load())
	assert.Equal(t, int32(1), stub.destroyed.Load())
}

// Not parallel: it swaps the live-plan gauge.
func TestRawPlan_Metrics(t *testing.T) {
	live := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_plans_live"})

	liveGauge = live
	defer func() { liveGauge = metrics.PlansLive }()

	created := testutil.ToFloat64(metrics.PlansCreated.WithLabelValues("raw"))
	failed := testutil.ToFloat64(metrics.PlanFailures.WithLabelValues("raw"))

	r, err := NewRawPlan(func() NativePlan { return &stubPlan{} })
	require.NoError(t, err)

	_, err = NewRawPlan(func() NativePlan { return nil })
	require.Error(t, err)

	assert.Equal(t, created+1, testutil.ToFloat64(metrics.PlansCreated.WithLabelValues("raw")))
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.PlanFailures.WithLabelValues("raw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(live))

	// Restoring the package gauge must not redirect this handle.
	liveGauge = metrics.PlansLive

	r.Destroy()
	assert.Equal(t, 0.0, testutil.ToFloat64(live))
}

func TestCollectorsRegister(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	for _, c := range Collectors() {
		require.NoError(t, reg.Register(c))
	}
}
