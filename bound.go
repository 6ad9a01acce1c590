package fftplan

import (
	"unsafe"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Bound is a planning configuration bound to its buffers. It owns the
// buffers until Plan succeeds, at which point they move into the Plan and
// the Bound is spent. A failed Plan leaves the Bound as it was, so it can
// be adjusted and planned again.
type Bound[X, Y Element] struct {
	opts        PlanOptions
	eng         engine.Engine
	kind        Kind
	dims        Dims
	replication Dims
	in          Buffer[X]
	out         Buffer[Y]
	inPlace     bool
	consumed    bool
}

func newBound[X, Y Element](p Planner, kind Kind, n int, in Buffer[X], out Buffer[Y], inPlace bool) *Bound[X, Y] {
	return &Bound[X, Y]{
		opts:        p.opts,
		eng:         p.backend(),
		kind:        kind,
		dims:        Detailed{{N: n, InStride: 1, OutStride: 1}},
		replication: Contiguous{1},
		in:          in,
		out:         out,
		inPlace:     inPlace,
	}
}

func (b *Bound[X, Y]) live() {
	if b.consumed {
		precondition(ErrConsumed, "%v configuration reused", b.kind)
	}
}

// WithDimensions replaces the transform descriptor.
func (b *Bound[X, Y]) WithDimensions(d Dims) *Bound[X, Y] {
	b.live()
	b.dims = d

	return b
}

// WithReplication replaces the replication descriptor.
func (b *Bound[X, Y]) WithReplication(d Dims) *Bound[X, Y] {
	b.live()
	b.replication = d

	return b
}

// WithReplicationCount repeats the transform n times over consecutive,
// densely packed blocks. The transform length derived by the Planner covers
// the whole buffer, so narrow it with WithDimensions first.
func (b *Bound[X, Y]) WithReplicationCount(n int) *Bound[X, Y] {
	return b.WithReplication(Contiguous{n})
}

// WithRigor overrides the planner's rigor. It panics with ErrInvalidOption
// for an unknown rigor.
func (b *Bound[X, Y]) WithRigor(r Rigor) *Bound[X, Y] {
	b.live()
	checkRigor(r)
	b.opts.Rigor = r

	return b
}

// WithWisdomRestriction overrides the planner's wisdom restriction.
func (b *Bound[X, Y]) WithWisdomRestriction(wisdomOnly bool) *Bound[X, Y] {
	b.live()
	b.opts.WisdomOnly = wisdomOnly

	return b
}

// Input returns the input buffer's contents, for filling before Plan.
func (b *Bound[X, Y]) Input() []X {
	b.live()

	return b.in.Slice()
}

// Plan asks the engine for a plan. On success the buffers move into the
// returned Plan and b may no longer be used. If the engine refuses, Plan
// returns a *ConstructionError and b is unchanged.
//
// Plan panics if the descriptors do not have exactly one transform axis or
// would reach outside either buffer.
func (b *Bound[X, Y]) Plan() (*Plan[X, Y], error) {
	b.live()

	lay := resolveLayout(b.kind, b.dims, b.replication)

	in := b.in.Slice()
	out := b.out.Slice()

	if lay.inSpan > len(in) {
		precondition(ErrLengthMismatch, "%v input needs %d elements, have %d", b.kind, lay.inSpan, len(in))
	}

	if lay.outSpan > len(out) {
		precondition(ErrLengthMismatch, "%v output needs %d elements, have %d", b.kind, lay.outSpan, len(out))
	}

	inPtr := unsafe.Pointer(unsafe.SliceData(in))

	outPtr := unsafe.Pointer(unsafe.SliceData(out))
	if b.inPlace {
		outPtr = inPtr
	}

	raw, err := newRawPlan(b.kind.String(), b.native(lay, inPtr, outPtr))
	if err != nil {
		return nil, &ConstructionError{
			Kind:       b.kind,
			N:          lay.dims[0].N,
			Rigor:      b.opts.Rigor,
			WisdomOnly: b.opts.WisdomOnly,
		}
	}

	b.consumed = true

	return &Plan[X, Y]{
		raw:     raw,
		kind:    b.kind,
		n:       lay.dims[0].N,
		in:      b.in,
		out:     b.out,
		inPlace: b.inPlace,
		inPtr:   inPtr,
		inLen:   len(in),
		outPtr:  outPtr,
		outLen:  len(out),
	}, nil
}

// native returns the engine call for b's kind.
func (b *Bound[X, Y]) native(lay layout, in, out unsafe.Pointer) func() NativePlan {
	flags := b.opts.Rigor.flags()
	if b.opts.WisdomOnly {
		flags |= engine.WisdomOnly
	}

	eng := b.eng

	switch b.kind {
	case KindC2C:
		sign := b.opts.Direction.sign()

		return func() NativePlan { return eng.PlanDFT(lay.dims, lay.howMany, in, out, sign, flags) }
	case KindR2C:
		return func() NativePlan { return eng.PlanDFTR2C(lay.dims, lay.howMany, in, out, flags) }
	case KindC2R:
		// The engine is otherwise free to overwrite the input spectrum.
		flags |= engine.PreserveInput

		return func() NativePlan { return eng.PlanDFTC2R(lay.dims, lay.howMany, in, out, flags) }
	default:
		precondition(ErrUnsupportedKind, "no engine entry point for %v", b.kind)

		return nil
	}
}
