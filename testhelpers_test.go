package fftplan

import (
	"math"
	"math/cmplx"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fftplan/internal/engine"
	"github.com/cwbudde/algo-fftplan/internal/engine/gofft"
)

// requirePanicsWith runs f and requires it to panic with an error wrapping
// target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()

	f()
}

func signal(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(math.Sin(float64(i)*0.7), math.Cos(float64(i)*0.3))
	}

	return out
}

func realSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(float64(i)*0.9) + 0.25*float64(i%3)
	}

	return out
}

func naiveDFT(src []complex128, sign int) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k := range n {
		for j := range n {
			angle := float64(sign) * 2 * math.Pi * float64(j*k) / float64(n)
			out[k] += src[j] * cmplx.Exp(complex(0, angle))
		}
	}

	return out
}

func assertComplexNear(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()

	require.Len(t, got, len(want))

	for i := range want {
		if cmplx.Abs(want[i]-got[i]) > tol {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// countingEngine wraps a real engine, counting planning calls and noticing
// if two of them ever overlap.
type countingEngine struct {
	engine.Engine

	plans     atomic.Int32
	inside    atomic.Int32
	overlap   atomic.Bool
	lastFlags atomic.Uint32
	lastSign  atomic.Int32

	refusePlans  bool
	refuseMalloc bool
}

func newCountingEngine() *countingEngine {
	return &countingEngine{Engine: gofft.New()}
}

func (c *countingEngine) enter(flags engine.Flags) func() {
	c.plans.Add(1)
	c.lastFlags.Store(uint32(flags))

	if c.inside.Add(1) != 1 {
		c.overlap.Store(true)
	}

	time.Sleep(50 * time.Microsecond)

	return func() { c.inside.Add(-1) }
}

func (c *countingEngine) PlanDFT(dims, howMany []engine.IODim, in, out unsafe.Pointer, sign engine.Sign, flags engine.Flags) engine.Plan {
	defer c.enter(flags)()

	c.lastSign.Store(int32(sign))

	if c.refusePlans {
		return nil
	}

	return c.Engine.PlanDFT(dims, howMany, in, out, sign, flags)
}

func (c *countingEngine) PlanDFTR2C(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	defer c.enter(flags)()

	if c.refusePlans {
		return nil
	}

	return c.Engine.PlanDFTR2C(dims, howMany, in, out, flags)
}

func (c *countingEngine) PlanDFTC2R(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	defer c.enter(flags)()

	if c.refusePlans {
		return nil
	}

	return c.Engine.PlanDFTC2R(dims, howMany, in, out, flags)
}

func (c *countingEngine) Malloc(size int) unsafe.Pointer {
	if c.refuseMalloc {
		return nil
	}

	return c.Engine.Malloc(size)
}

// stubPlan is a native plan that only counts calls.
type stubPlan struct {
	executed  atomic.Int32
	destroyed atomic.Int32
}

func (s *stubPlan) Execute() { s.executed.Add(1) }
func (s *stubPlan) Destroy() { s.destroyed.Add(1) }
func (s *stubPlan) String() string {
	return "(stub)"
}

// movingBuffer lets a test swap the memory behind a buffer.
type movingBuffer struct {
	s []complex128
}

func (m *movingBuffer) Slice() []complex128 { return m.s }
