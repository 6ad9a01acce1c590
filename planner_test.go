package fftplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

func TestNewPlanner_DefaultOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PlanOptions{}, NewPlanner(PlanOptions{}).Options())
	assert.Equal(t, Planner{}.Options(), NewPlanner(PlanOptions{}).Options())

	opts := Planner{}.Options()
	assert.Equal(t, RigorEstimate, opts.Rigor)
	assert.Equal(t, Forward, opts.Direction)
	assert.False(t, opts.WisdomOnly)
}

func TestNewPlanner_Normalizes(t *testing.T) {
	t.Parallel()

	opts := NewPlanner(PlanOptions{Rigor: Rigor(9), Direction: Direction(-3), WisdomOnly: true}).Options()
	assert.Equal(t, RigorEstimate, opts.Rigor)
	assert.Equal(t, Forward, opts.Direction)
	assert.True(t, opts.WisdomOnly)
}

func TestPlanner_SettersReturnCopies(t *testing.T) {
	t.Parallel()

	base := Planner{}
	tuned := base.Rigor(RigorPatient).Direction(Backward).WisdomRestriction(true)

	assert.Equal(t, PlanOptions{}, base.Options())
	assert.Equal(t, PlanOptions{Rigor: RigorPatient, Direction: Backward, WisdomOnly: true}, tuned.Options())
}

func TestPlanner_SettersRejectUnknownOptions(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, ErrInvalidOption, func() { Planner{}.Rigor(Rigor(9)) })
	requirePanicsWith(t, ErrInvalidOption, func() { Planner{}.Rigor(Rigor(-1)) })
	requirePanicsWith(t, ErrInvalidOption, func() { Planner{}.Direction(Direction(2)) })

	b := Planner{}.C2C(make(SliceBuffer[complex128], 4), make(SliceBuffer[complex128], 4))
	requirePanicsWith(t, ErrInvalidOption, func() { b.WithRigor(Rigor(4)) })
	assert.Equal(t, RigorEstimate, b.opts.Rigor)

	b.WithRigor(RigorExhaustive)
	assert.Equal(t, RigorExhaustive, b.opts.Rigor)
}

func TestPlanner_Preconditions(t *testing.T) {
	t.Parallel()

	c := func(n int) SliceBuffer[complex128] { return make(SliceBuffer[complex128], n) }
	r := func(n int) SliceBuffer[float64] { return make(SliceBuffer[float64], n) }

	tests := []struct {
		name string
		call func()
	}{
		{"c2c output shorter", func() { Planner{}.C2C(c(8), c(7)) }},
		{"r2c output shorter", func() { Planner{}.R2C(r(8), c(4)) }},
		{"r2c odd output shorter", func() { Planner{}.R2C(r(7), c(3)) }},
		{"c2r input longer", func() { Planner{}.C2R(c(6), r(8)) }},
		{"c2r empty input", func() { Planner{}.C2R(c(0), r(8)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requirePanicsWith(t, ErrLengthMismatch, tt.call)
		})
	}
}

func TestPlanner_AcceptsBoundaryLengths(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Planner{}.C2C(make(SliceBuffer[complex128], 8), make(SliceBuffer[complex128], 8))
		Planner{}.R2C(make(SliceBuffer[float64], 8), make(SliceBuffer[complex128], 5))
		Planner{}.R2C(make(SliceBuffer[float64], 1), make(SliceBuffer[complex128], 1))
		Planner{}.C2R(make(SliceBuffer[complex128], 5), make(SliceBuffer[float64], 8))
		Planner{}.InPlace().C2C(make(SliceBuffer[complex128], 3))
	})
}

func TestPlanner_TooLong(t *testing.T) {
	t.Parallel()

	n := maxLen
	assert.NotPanics(t, func() { checkLen(n) })

	n++
	requirePanicsWith(t, ErrTooLong, func() { checkLen(n) })
}

func TestPlanner_C2RCheckedBeforeEngine(t *testing.T) {
	t.Parallel()

	eng := newCountingEngine()

	requirePanicsWith(t, ErrLengthMismatch, func() {
		Planner{}.withEngine(eng).C2R(make(SliceBuffer[complex128], 6), make(SliceBuffer[float64], 8)).Plan()
	})

	assert.Zero(t, eng.plans.Load())
}

func TestPlanner_DerivedDimensions(t *testing.T) {
	t.Parallel()

	c2c := Planner{}.C2C(make(SliceBuffer[complex128], 12), make(SliceBuffer[complex128], 16))
	assert.Equal(t, Detailed{{N: 12, InStride: 1, OutStride: 1}}, c2c.dims)
	assert.Equal(t, Contiguous{1}, c2c.replication)

	r2c := Planner{}.R2C(make(SliceBuffer[float64], 9), make(SliceBuffer[complex128], 5))
	assert.Equal(t, Detailed{{N: 9, InStride: 1, OutStride: 1}}, r2c.dims)

	c2r := Planner{}.C2R(make(SliceBuffer[complex128], 5), make(SliceBuffer[float64], 8))
	assert.Equal(t, Detailed{{N: 8, InStride: 1, OutStride: 1}}, c2r.dims)

	inPlace := Planner{}.InPlace().C2C(make(SliceBuffer[complex128], 4))
	assert.True(t, inPlace.inPlace)
}

func TestBound_EngineFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rigor Rigor
		only  bool
		want  engine.Flags
	}{
		{"estimate", RigorEstimate, false, engine.Estimate},
		{"measure", RigorMeasure, false, engine.Measure},
		{"patient wisdom-only", RigorPatient, true, engine.Patient | engine.WisdomOnly},
		{"exhaustive", RigorExhaustive, false, engine.Exhaustive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng := newCountingEngine()
			eng.refusePlans = true

			_, err := NewPlanner(PlanOptions{Rigor: tt.rigor, WisdomOnly: tt.only}).withEngine(eng).
				C2C(make(SliceBuffer[complex128], 4), make(SliceBuffer[complex128], 4)).Plan()
			require.ErrorIs(t, err, ErrConstructionFailed)
			assert.Equal(t, tt.want, engine.Flags(eng.lastFlags.Load()))
		})
	}
}

func TestBound_DirectionAndPreserveInput(t *testing.T) {
	t.Parallel()

	eng := newCountingEngine()
	p := Planner{}.withEngine(eng)

	fwd, err := p.C2C(make(SliceBuffer[complex128], 4), make(SliceBuffer[complex128], 4)).Plan()
	require.NoError(t, err)
	defer fwd.Close()
	assert.Equal(t, int32(engine.SignForward), eng.lastSign.Load())

	bwd, err := p.Direction(Backward).C2C(make(SliceBuffer[complex128], 4), make(SliceBuffer[complex128], 4)).Plan()
	require.NoError(t, err)
	defer bwd.Close()
	assert.Equal(t, int32(engine.SignBackward), eng.lastSign.Load())

	c2r, err := p.C2R(make(SliceBuffer[complex128], 3), make(SliceBuffer[float64], 4)).Plan()
	require.NoError(t, err)
	defer c2r.Close()
	assert.True(t, engine.Flags(eng.lastFlags.Load()).Has(engine.PreserveInput))
}
