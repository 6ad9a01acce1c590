package fftplan

import (
	"math"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// maxLen is the longest input the engine's 32-bit entry points accept.
const maxLen = math.MaxInt32

// PlanOptions configures a Planner. The zero value plans forward
// transforms with RigorEstimate and no wisdom restriction.
type PlanOptions struct {
	Rigor     Rigor
	Direction Direction
	// WisdomOnly fails planning unless the engine already holds wisdom of
	// at least Rigor for the problem.
	WisdomOnly bool
}

// Planner binds buffers to planning options. Its setters return modified
// copies, so a Planner can be shared and specialized freely.
type Planner struct {
	opts PlanOptions
	eng  engine.Engine
}

// NewPlanner returns a planner for opts. Out-of-range values fall back to
// the defaults.
func NewPlanner(opts PlanOptions) Planner {
	if !opts.Rigor.valid() {
		opts.Rigor = RigorEstimate
	}

	if opts.Direction != Backward {
		opts.Direction = Forward
	}

	return Planner{opts: opts}
}

// Options returns the planner's options.
func (p Planner) Options() PlanOptions {
	return p.opts
}

// Rigor sets the planning rigor. It panics with ErrInvalidOption for an
// unknown rigor.
func (p Planner) Rigor(r Rigor) Planner {
	checkRigor(r)
	p.opts.Rigor = r

	return p
}

// WisdomRestriction sets whether planning may only use existing wisdom.
func (p Planner) WisdomRestriction(wisdomOnly bool) Planner {
	p.opts.WisdomOnly = wisdomOnly

	return p
}

// Direction sets the direction of complex-to-complex transforms. It panics
// with ErrInvalidOption for an unknown direction.
func (p Planner) Direction(d Direction) Planner {
	if d != Forward && d != Backward {
		precondition(ErrInvalidOption, "unknown direction %d", int(d))
	}

	p.opts.Direction = d

	return p
}

func checkRigor(r Rigor) {
	if !r.valid() {
		precondition(ErrInvalidOption, "unknown rigor %d", int(r))
	}
}

func (p Planner) withEngine(eng engine.Engine) Planner {
	p.eng = eng

	return p
}

func (p Planner) backend() engine.Engine {
	if p.eng != nil {
		return p.eng
	}

	return currentEngine()
}

// C2C binds an out-of-place complex-to-complex transform of len(in) points.
// It panics unless len(in) <= len(out).
func (p Planner) C2C(in, out Buffer[complex128]) *Bound[complex128, complex128] {
	nIn, nOut := checkInput(in), len(out.Slice())
	if nIn > nOut {
		precondition(ErrLengthMismatch, "c2c input %d longer than output %d", nIn, nOut)
	}

	return newBound(p, KindC2C, nIn, in, out, false)
}

// R2C binds a real-to-complex transform of len(in) points. It panics unless
// len(in)/2+1 <= len(out).
func (p Planner) R2C(in Buffer[float64], out Buffer[complex128]) *Bound[float64, complex128] {
	nIn, nOut := checkInput(in), len(out.Slice())
	if nIn/2+1 > nOut {
		precondition(ErrLengthMismatch, "r2c of %d points needs %d outputs, have %d", nIn, nIn/2+1, nOut)
	}

	return newBound(p, KindR2C, nIn, in, out, false)
}

// C2R binds a complex-to-real transform from the half spectrum in. The
// logical length is 2*(len(in)-1); use WithDimensions for odd lengths. It
// panics unless len(in) <= len(out)/2+1.
func (p Planner) C2R(in Buffer[complex128], out Buffer[float64]) *Bound[complex128, float64] {
	nIn, nOut := checkInput(in), len(out.Slice())
	if nIn == 0 {
		precondition(ErrLengthMismatch, "c2r input is empty")
	}

	if nIn > nOut/2+1 {
		precondition(ErrLengthMismatch, "c2r input %d longer than %d for output %d", nIn, nOut/2+1, nOut)
	}

	return newBound(p, KindC2R, 2*(nIn-1), in, out, false)
}

// InPlace returns a planner whose transforms overwrite their input.
func (p Planner) InPlace() InPlacePlanner {
	return InPlacePlanner{p: p}
}

// InPlacePlanner plans transforms whose input and output share a buffer.
type InPlacePlanner struct {
	p Planner
}

// C2C binds an in-place complex-to-complex transform of len(buf) points.
func (ip InPlacePlanner) C2C(buf Buffer[complex128]) *Bound[complex128, complex128] {
	return newBound(ip.p, KindC2C, checkInput(buf), buf, buf, true)
}

func checkInput[E Element](in Buffer[E]) int {
	n := len(in.Slice())
	checkLen(n)

	return n
}

func checkLen(n int) {
	if n > maxLen {
		precondition(ErrTooLong, "input of %d elements exceeds %d", n, maxLen)
	}
}
