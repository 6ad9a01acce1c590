package fftplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentConstructionIsSerialized(t *testing.T) {
	t.Parallel()

	const workers = 16

	eng := newCountingEngine()
	planner := Planner{}.withEngine(eng)

	plans := make([]*Plan[complex128, complex128], workers)

	var g errgroup.Group

	for i := range workers {
		g.Go(func() error {
			n := 8 + i

			var err error

			plans[i], err = planner.C2C(make(SliceBuffer[complex128], n), make(SliceBuffer[complex128], n)).Plan()

			return err
		})
	}

	require.NoError(t, g.Wait())
	assert.False(t, eng.overlap.Load(), "two engine planning calls overlapped")
	assert.Equal(t, int32(workers), eng.plans.Load())

	// Execution needs no lock; every plan runs at once on its own buffers.
	results := make([][]complex128, workers)

	var run errgroup.Group

	for i, p := range plans {
		run.Go(func() error {
			copy(p.Input(), signal(p.Len()))

			for range 20 {
				results[i] = p.Execute()
			}

			return nil
		})
	}

	require.NoError(t, run.Wait())

	for i, p := range plans {
		assertComplexNear(t, naiveDFT(signal(p.Len()), -1), results[i], 1e-9)
		p.Close()
	}
}

func TestConcurrentConstructionAcrossKinds(t *testing.T) {
	t.Parallel()

	eng := newCountingEngine()
	planner := Planner{}.withEngine(eng)

	var g errgroup.Group

	for range 4 {
		g.Go(func() error {
			p, err := planner.C2C(make(SliceBuffer[complex128], 32), make(SliceBuffer[complex128], 32)).Plan()
			if err == nil {
				p.Close()
			}

			return err
		})
		g.Go(func() error {
			p, err := planner.R2C(make(SliceBuffer[float64], 32), make(SliceBuffer[complex128], 17)).Plan()
			if err == nil {
				p.Close()
			}

			return err
		})
		g.Go(func() error {
			p, err := planner.C2R(make(SliceBuffer[complex128], 17), make(SliceBuffer[float64], 32)).Plan()
			if err == nil {
				p.Close()
			}

			return err
		})
	}

	require.NoError(t, g.Wait())
	assert.False(t, eng.overlap.Load())
	assert.Equal(t, int32(12), eng.plans.Load())
}
