package fftplan

import (
	"fmt"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Rigor is how hard the engine searches for a fast plan. Anything above
// RigorEstimate runs trial transforms while planning, and the FFTW engine
// runs them on the plan's own buffers, so fill inputs after planning.
type Rigor int

const (
	RigorEstimate Rigor = iota
	RigorMeasure
	RigorPatient
	RigorExhaustive
)

func (r Rigor) String() string {
	switch r {
	case RigorEstimate:
		return "estimate"
	case RigorMeasure:
		return "measure"
	case RigorPatient:
		return "patient"
	case RigorExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Rigor(%d)", int(r))
	}
}

func (r Rigor) valid() bool {
	return r >= RigorEstimate && r <= RigorExhaustive
}

func (r Rigor) flags() engine.Flags {
	switch r {
	case RigorMeasure:
		return engine.Measure
	case RigorPatient:
		return engine.Patient
	case RigorExhaustive:
		return engine.Exhaustive
	default:
		return engine.Estimate
	}
}

// Direction selects the exponent sign of complex-to-complex transforms.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

func (d Direction) sign() engine.Sign {
	if d == Backward {
		return engine.SignBackward
	}

	return engine.SignForward
}

// Kind is the transform kind.
type Kind int

const (
	KindC2C Kind = iota
	KindR2C
	KindC2R
	// KindR2R is reserved; no planner method produces it yet.
	KindR2R
)

func (k Kind) String() string {
	switch k {
	case KindC2C:
		return "c2c"
	case KindR2C:
		return "r2c"
	case KindC2R:
		return "c2r"
	case KindR2R:
		return "r2r"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// inLen and outLen are the element counts of one transform of logical
// length n along its last axis.
func (k Kind) inLen(n int) int {
	if k == KindC2R {
		return n/2 + 1
	}

	return n
}

func (k Kind) outLen(n int) int {
	if k == KindR2C {
		return n/2 + 1
	}

	return n
}
