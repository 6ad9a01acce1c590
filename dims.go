package fftplan

import (
	"math"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Dim is one axis of a transform or of its replication: the extent and the
// distance, in elements, between consecutive entries in the input and the
// output.
type Dim struct {
	N         int
	InStride  int
	OutStride int
}

// Dims describes a set of axes, either as Contiguous extents or as Detailed
// triples.
type Dims interface {
	rank() int
}

// Contiguous lists per-axis extents of densely packed, row-major data.
// As a transform descriptor the strides follow from the extents; as a
// replication descriptor the innermost step is one whole transform.
type Contiguous []int

// Detailed lists axes with explicit strides.
type Detailed []Dim

func (c Contiguous) rank() int { return len(c) }
func (d Detailed) rank() int   { return len(d) }

// resolveTransform turns a transform descriptor into engine axes.
func resolveTransform(d Dims) []engine.IODim {
	switch d := d.(type) {
	case Contiguous:
		out := make([]engine.IODim, len(d))
		stride := 1

		for i := len(d) - 1; i >= 0; i-- {
			if d[i] < 1 {
				precondition(ErrInvalidDims, "axis %d has extent %d", i, d[i])
			}

			out[i] = engine.IODim{N: d[i], IS: stride, OS: stride}
			stride = mul(stride, d[i])
		}

		return out
	case Detailed:
		out := make([]engine.IODim, len(d))
		for i, a := range d {
			checkDim(i, a)
			out[i] = engine.IODim{N: a.N, IS: a.InStride, OS: a.OutStride}
		}

		return out
	default:
		precondition(ErrInvalidDims, "unknown descriptor %T", d)

		return nil
	}
}

// resolveReplication turns a replication descriptor into engine axes. idist
// and odist are the spans of one transform. Axes repeating only once are
// dropped, so a single repetition yields no axes at all. Contiguous extents
// nest exactly, so they collapse into one axis.
func resolveReplication(d Dims, idist, odist int) []engine.IODim {
	switch d := d.(type) {
	case Contiguous:
		count := 1

		for i, n := range d {
			if n < 1 {
				precondition(ErrInvalidDims, "replication axis %d has count %d", i, n)
			}

			count = mul(count, n)
		}

		if count == 1 {
			return nil
		}

		return []engine.IODim{{N: count, IS: idist, OS: odist}}
	case Detailed:
		var out []engine.IODim

		for i, a := range d {
			checkDim(i, a)

			if a.N > 1 {
				out = append(out, engine.IODim{N: a.N, IS: a.InStride, OS: a.OutStride})
			}
		}

		return out
	default:
		precondition(ErrInvalidDims, "unknown descriptor %T", d)

		return nil
	}
}

func checkDim(i int, a Dim) {
	if a.N < 1 {
		precondition(ErrInvalidDims, "axis %d has extent %d", i, a.N)
	}

	if a.InStride < 0 || a.OutStride < 0 {
		precondition(ErrInvalidDims, "axis %d has negative stride", i)
	}
}

// layout is a fully resolved problem: one transform axis, its replication,
// and the number of elements each side touches.
type layout struct {
	dims    []engine.IODim
	howMany []engine.IODim
	inSpan  int
	outSpan int
}

func resolveLayout(kind Kind, transform, replication Dims) layout {
	if r := transform.rank(); r != 1 {
		precondition(ErrUnsupportedRank, "transform has %d axes, want 1", r)
	}

	dims := resolveTransform(transform)
	d := dims[0]

	inSpan := extend(1, kind.inLen(d.N), d.IS)
	outSpan := extend(1, kind.outLen(d.N), d.OS)

	howMany := resolveReplication(replication, inSpan, outSpan)
	for _, h := range howMany {
		inSpan = extend(inSpan, h.N, h.IS)
		outSpan = extend(outSpan, h.N, h.OS)
	}

	return layout{dims: dims, howMany: howMany, inSpan: inSpan, outSpan: outSpan}
}

// extend returns span + (n-1)*stride. Operands are non-negative; a result
// past math.MaxInt panics with ErrInvalidDims.
func extend(span, n, stride int) int {
	if n > 1 && stride > (math.MaxInt-span)/(n-1) {
		precondition(ErrInvalidDims, "%d entries at stride %d overflow", n, stride)
	}

	return span + (n-1)*stride
}

func mul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		precondition(ErrInvalidDims, "extent product %d*%d overflows", a, b)
	}

	return a * b
}
