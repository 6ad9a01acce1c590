package fftplan

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Precondition violations panic with an error wrapping one
// of them; only ErrConstructionFailed is ever returned.
var (
	// ErrConstructionFailed is returned when the engine could not produce a
	// plan. The configuration that was planned stays usable.
	ErrConstructionFailed = errors.New("fftplan: plan construction failed")

	// ErrLengthMismatch reports buffers too short for the transform.
	ErrLengthMismatch = errors.New("fftplan: buffer length mismatch")

	// ErrTooLong reports an input longer than the engine's 32-bit limit.
	ErrTooLong = errors.New("fftplan: input too long")

	// ErrUnsupportedRank reports a transform descriptor with other than one axis.
	ErrUnsupportedRank = errors.New("fftplan: unsupported transform rank")

	// ErrUnsupportedKind reports a transform kind the engine cannot plan.
	ErrUnsupportedKind = errors.New("fftplan: unsupported transform kind")

	// ErrInvalidDims reports a zero extent or a negative stride.
	ErrInvalidDims = errors.New("fftplan: invalid dimensions")

	// ErrInvalidOption reports an out-of-range Rigor or Direction passed to
	// a setter.
	ErrInvalidOption = errors.New("fftplan: invalid planning option")

	// ErrConsumed reports use of a Bound after it was planned.
	ErrConsumed = errors.New("fftplan: configuration already planned")

	// ErrClosed reports use of a Plan after Close or a Release call.
	ErrClosed = errors.New("fftplan: plan closed")

	// ErrBufferMoved reports a buffer whose memory changed after planning.
	ErrBufferMoved = errors.New("fftplan: buffer moved since planning")

	// ErrAllocation reports an engine allocation failure.
	ErrAllocation = errors.New("fftplan: allocation failed")
)

// ConstructionError describes a plan the engine refused to build.
type ConstructionError struct {
	Kind       Kind
	N          int
	Rigor      Rigor
	WisdomOnly bool
}

func (e *ConstructionError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%v: %v n=%d rigor=%v", ErrConstructionFailed, e.Kind, e.N, e.Rigor)

	if e.WisdomOnly {
		b.WriteString(" wisdom-only")
	}

	return b.String()
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstructionFailed
}

// precondition panics with an error wrapping sentinel.
func precondition(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}
