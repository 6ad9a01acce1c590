package gofft

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// problem is a rank-1 transform with at most one replication axis. Strides
// and distances are in elements.
type problem struct {
	kind  Kind
	n     int
	sign  int
	is    int
	os    int
	count int
	idist int
	odist int
}

func newProblem(kind Kind, dims, howMany []engine.IODim, sign engine.Sign) (problem, bool) {
	if len(dims) != 1 || len(howMany) > 1 {
		return problem{}, false
	}

	d := dims[0]
	p := problem{kind: kind, n: d.N, sign: int(sign), is: d.IS, os: d.OS, count: 1}

	if len(howMany) == 1 {
		h := howMany[0]
		p.count, p.idist, p.odist = h.N, h.IS, h.OS
	}

	if p.n < 1 || p.count < 1 || p.is < 0 || p.os < 0 || p.idist < 0 || p.odist < 0 {
		return problem{}, false
	}

	return p, true
}

// inLen and outLen are the logical lengths of one transform on each side.
func (p problem) inLen() int {
	if p.kind == KindC2R {
		return p.n/2 + 1
	}

	return p.n
}

func (p problem) outLen() int {
	if p.kind == KindR2C {
		return p.n/2 + 1
	}

	return p.n
}

func (p problem) inSpan() int {
	return 1 + (p.inLen()-1)*p.is + (p.count-1)*p.idist
}

func (p problem) outSpan() int {
	return 1 + (p.outLen()-1)*p.os + (p.count-1)*p.odist
}

// plan executes a problem against fixed memory. The input is gathered into
// private scratch before each transform, so in-place problems and
// preserve-input semantics need no special casing.
type plan struct {
	p        problem
	strategy Strategy
	rigor    int
	k        kernel

	inC  []complex128
	inR  []float64
	outC []complex128
	outR []float64

	bufC []complex128
	bufR []float64
	resC []complex128
	resR []float64

	destroyed bool
}

func newPlan(p problem, s Strategy, rigor int, in, out unsafe.Pointer) *plan {
	pl := &plan{p: p, strategy: s, rigor: rigor, k: newKernel(p, s)}

	switch p.kind {
	case KindC2C:
		pl.inC = unsafe.Slice((*complex128)(in), p.inSpan())
		pl.outC = unsafe.Slice((*complex128)(out), p.outSpan())
		pl.bufC = make([]complex128, p.n)
		pl.resC = make([]complex128, p.n)
	case KindR2C:
		pl.inR = unsafe.Slice((*float64)(in), p.inSpan())
		pl.outC = unsafe.Slice((*complex128)(out), p.outSpan())
		pl.bufR = make([]float64, p.n)
		pl.resC = make([]complex128, p.outLen())
	case KindC2R:
		pl.inC = unsafe.Slice((*complex128)(in), p.inSpan())
		pl.outR = unsafe.Slice((*float64)(out), p.outSpan())
		pl.bufC = make([]complex128, p.inLen())
		pl.resR = make([]float64, p.n)
	}

	return pl
}

func (pl *plan) Execute() {
	if pl.destroyed {
		panic("gofft: execute on destroyed plan")
	}

	p := pl.p

	for b := range p.count {
		ib, ob := b*p.idist, b*p.odist

		switch p.kind {
		case KindC2C:
			for j := range pl.bufC {
				pl.bufC[j] = pl.inC[ib+j*p.is]
			}

			pl.k.c2c(pl.resC, pl.bufC)

			for j, v := range pl.resC {
				pl.outC[ob+j*p.os] = v
			}
		case KindR2C:
			for j := range pl.bufR {
				pl.bufR[j] = pl.inR[ib+j*p.is]
			}

			pl.k.r2c(pl.resC, pl.bufR)

			for j, v := range pl.resC {
				pl.outC[ob+j*p.os] = v
			}
		case KindC2R:
			for j := range pl.bufC {
				pl.bufC[j] = pl.inC[ib+j*p.is]
			}

			pl.bufC[0] = complex(real(pl.bufC[0]), 0)
			if p.n%2 == 0 {
				pl.bufC[p.n/2] = complex(real(pl.bufC[p.n/2]), 0)
			}

			pl.k.c2r(pl.resR, pl.bufC)

			for j, v := range pl.resR {
				pl.outR[ob+j*p.os] = v
			}
		}
	}
}

func (pl *plan) Destroy() {
	pl.destroyed = true
	pl.inC, pl.inR, pl.outC, pl.outR = nil, nil, nil, nil
	pl.bufC, pl.bufR, pl.resC, pl.resR = nil, nil, nil, nil
	pl.k = kernel{}
}

func (pl *plan) String() string {
	p := pl.p

	return fmt.Sprintf("(gofft-%s %s n=%d is=%d os=%d howmany=%d idist=%d odist=%d sign=%d rigor=%s)",
		p.kind, pl.strategy, p.n, p.is, p.os, p.count, p.idist, p.odist, p.sign, rigorName(pl.rigor))
}
