package fftplan

import (
	"unsafe"
)

// Plan is an engine plan together with the buffers it was built for. It
// executes only against those buffers, and only while their memory is
// where it was at planning time. A Plan is not safe for concurrent use;
// distinct Plans are.
type Plan[X, Y Element] struct {
	raw     *RawPlan
	kind    Kind
	n       int
	in      Buffer[X]
	out     Buffer[Y]
	inPlace bool

	inPtr  unsafe.Pointer
	inLen  int
	outPtr unsafe.Pointer
	outLen int

	closed bool
}

func (p *Plan[X, Y]) live() {
	if p.closed {
		precondition(ErrClosed, "%v plan used after close", p.kind)
	}
}

// Input returns the input buffer's contents. For in-place plans this is
// the same memory Execute returns.
func (p *Plan[X, Y]) Input() []X {
	p.live()

	return p.in.Slice()
}

// Execute runs the transform and returns the output buffer's contents.
// Every call transforms the current input afresh.
func (p *Plan[X, Y]) Execute() []Y {
	p.live()

	in := p.in.Slice()
	if unsafe.Pointer(unsafe.SliceData(in)) != p.inPtr || len(in) != p.inLen {
		precondition(ErrBufferMoved, "%v input", p.kind)
	}

	out := p.out.Slice()
	if !p.inPlace && (unsafe.Pointer(unsafe.SliceData(out)) != p.outPtr || len(out) != p.outLen) {
		precondition(ErrBufferMoved, "%v output", p.kind)
	}

	p.raw.Execute()

	return out
}

// Len is the logical transform length.
func (p *Plan[X, Y]) Len() int {
	return p.n
}

// Kind is the transform kind.
func (p *Plan[X, Y]) Kind() Kind {
	return p.kind
}

// Describe renders the engine's account of the plan, for diagnostics.
func (p *Plan[X, Y]) Describe() string {
	return p.raw.Describe()
}

// ReleaseInput destroys the plan and hands the input buffer back. The
// output buffer is freed if the plan owned it.
func (p *Plan[X, Y]) ReleaseInput() Buffer[X] {
	p.live()
	p.teardown()

	if !p.inPlace {
		free(p.out)
	}

	return p.in
}

// ReleaseOutput destroys the plan and hands the output buffer back. The
// input buffer is freed if the plan owned it.
func (p *Plan[X, Y]) ReleaseOutput() Buffer[Y] {
	p.live()
	p.teardown()

	if !p.inPlace {
		free(p.in)
	}

	return p.out
}

// Close destroys the plan and frees the buffers it owns. Closing twice is
// harmless.
func (p *Plan[X, Y]) Close() {
	if p.closed {
		return
	}

	p.teardown()

	free(p.in)

	if !p.inPlace {
		free(p.out)
	}
}

func (p *Plan[X, Y]) teardown() {
	p.closed = true
	p.raw.Destroy()
}
