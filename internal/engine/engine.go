// Package engine describes the capability surface a transform engine must
// provide to the planner: guru-style plan creation for the three DFT kinds,
// plan execution and destruction, aligned allocation and wisdom I/O.
//
// The flag and sign constants carry FFTW's values so the cgo engine can pass
// them through untouched. Everything else treats them as opaque bits.
package engine

import (
	"io"
	"unsafe"
)

// IODim describes one axis of a transform or of its replication: the extent
// and the input/output strides in elements. It mirrors fftw_iodim64.
type IODim struct {
	N  int
	IS int
	OS int
}

// Sign selects the exponent sign of a complex transform.
type Sign int

const (
	SignForward  Sign = -1
	SignBackward Sign = +1
)

// Flags is the planner flag bitmask.
type Flags uint32

const (
	Measure       Flags = 0
	DestroyInput  Flags = 1 << 0
	Unaligned     Flags = 1 << 1
	Exhaustive    Flags = 1 << 3
	PreserveInput Flags = 1 << 4
	Patient       Flags = 1 << 5
	Estimate      Flags = 1 << 6
	WisdomOnly    Flags = 1 << 21
)

// Level extracts the rigor from flags as an ordinal: 0 estimate, 1 measure,
// 2 patient, 3 exhaustive.
func (f Flags) Level() int {
	switch {
	case f&Exhaustive != 0:
		return 3
	case f&Patient != 0:
		return 2
	case f&Estimate != 0:
		return 0
	default:
		return 1
	}
}

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Plan is an engine plan bound to the buffers it was created for.
type Plan interface {
	// Execute runs the transform against the bound buffers.
	Execute()
	// Destroy releases the plan. It must be called exactly once.
	Destroy()
	// String renders the plan's strategy for diagnostics.
	String() string
}

// Engine creates plans. Planning methods return a nil Plan on failure and
// are not safe for concurrent use; callers serialize them.
type Engine interface {
	Name() string

	PlanDFT(dims, howMany []IODim, in, out unsafe.Pointer, sign Sign, flags Flags) Plan
	PlanDFTR2C(dims, howMany []IODim, in, out unsafe.Pointer, flags Flags) Plan
	PlanDFTC2R(dims, howMany []IODim, in, out unsafe.Pointer, flags Flags) Plan

	// Malloc returns size bytes of memory aligned for the engine, or nil.
	Malloc(size int) unsafe.Pointer
	Free(p unsafe.Pointer)

	ImportWisdom(r io.Reader) error
	ExportWisdom(w io.Writer) error
	ForgetWisdom()
}

// Span returns the number of elements covered by an axis set where each axis
// contributes (N-1)*stride, plus one. stride selects the input or output
// stride. An empty set spans one element; any zero extent spans none.
func Span(dims []IODim, stride func(IODim) int) int {
	span := 1
	for _, d := range dims {
		if d.N <= 0 {
			return 0
		}

		span += (d.N - 1) * stride(d)
	}

	return span
}

// InStride and OutStride select a stride for Span.
func InStride(d IODim) int  { return d.IS }
func OutStride(d IODim) int { return d.OS }
