//go:build fftw && cgo

// Package fftw binds libfftw3 as a transform engine. It is compiled only
// with the "fftw" build tag and requires pkg-config to locate fftw3.
//
// FFTW keeps the buffer addresses it was planned with, so Go-heap buffers
// are pinned for the lifetime of each plan.
package fftw

/*
#cgo pkg-config: fftw3
#include <stdlib.h>
#include <fftw3.h>
*/
import "C"

import (
	"errors"
	"io"
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Engine is the FFTW engine. FFTW's planner state and wisdom are global, so
// every Engine value shares them.
type Engine struct{}

var _ engine.Engine = Engine{}

// New returns the FFTW engine.
func New() Engine {
	return Engine{}
}

// Name identifies the engine.
func (Engine) Name() string {
	return "fftw3"
}

type plan struct {
	p      C.fftw_plan
	pinner runtime.Pinner
}

func (pl *plan) Execute() {
	C.fftw_execute(pl.p)
}

func (pl *plan) Destroy() {
	C.fftw_destroy_plan(pl.p)
	pl.pinner.Unpin()
}

func (pl *plan) String() string {
	s := C.fftw_sprint_plan(pl.p)
	if s == nil {
		return "(fftw3 plan)"
	}
	defer C.free(unsafe.Pointer(s))

	return C.GoString(s)
}

func iodims(dims []engine.IODim) (*C.fftw_iodim64, []C.fftw_iodim64) {
	if len(dims) == 0 {
		return nil, nil
	}

	out := make([]C.fftw_iodim64, len(dims))
	for i, d := range dims {
		out[i] = C.fftw_iodim64{n: C.ptrdiff_t(d.N), is: C.ptrdiff_t(d.IS), os: C.ptrdiff_t(d.OS)}
	}

	return &out[0], out
}

func cflags(f engine.Flags) C.uint {
	var out C.uint

	pairs := []struct {
		bit engine.Flags
		c   C.uint
	}{
		{engine.DestroyInput, C.FFTW_DESTROY_INPUT},
		{engine.Unaligned, C.FFTW_UNALIGNED},
		{engine.Exhaustive, C.FFTW_EXHAUSTIVE},
		{engine.PreserveInput, C.FFTW_PRESERVE_INPUT},
		{engine.Patient, C.FFTW_PATIENT},
		{engine.Estimate, C.FFTW_ESTIMATE},
		{engine.WisdomOnly, C.FFTW_WISDOM_ONLY},
	}
	for _, p := range pairs {
		if f&p.bit != 0 {
			out |= p.c
		}
	}

	return out
}

func csign(s engine.Sign) C.int {
	if s == engine.SignBackward {
		return C.FFTW_BACKWARD
	}

	return C.FFTW_FORWARD
}

// pinned pins in and out, then calls create. The buffers stay pinned until
// the plan is destroyed; a NULL plan unpins them and yields a nil engine.Plan.
func pinned(in, out unsafe.Pointer, create func() C.fftw_plan) engine.Plan {
	pl := &plan{}
	pl.pinner.Pin(in)
	pl.pinner.Pin(out)

	pl.p = create()
	if pl.p == nil {
		pl.pinner.Unpin()

		return nil
	}

	return pl
}

// PlanDFT plans a complex-to-complex transform with fftw_plan_guru64_dft.
func (Engine) PlanDFT(dims, howMany []engine.IODim, in, out unsafe.Pointer, sign engine.Sign, flags engine.Flags) engine.Plan {
	d, dk := iodims(dims)
	h, hk := iodims(howMany)

	defer runtime.KeepAlive(dk)
	defer runtime.KeepAlive(hk)

	return pinned(in, out, func() C.fftw_plan {
		return C.fftw_plan_guru64_dft(C.int(len(dims)), d, C.int(len(howMany)), h,
			(*C.fftw_complex)(in), (*C.fftw_complex)(out), csign(sign), cflags(flags))
	})
}

// PlanDFTR2C plans a real-to-complex transform with fftw_plan_guru64_dft_r2c.
func (Engine) PlanDFTR2C(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	d, dk := iodims(dims)
	h, hk := iodims(howMany)

	defer runtime.KeepAlive(dk)
	defer runtime.KeepAlive(hk)

	return pinned(in, out, func() C.fftw_plan {
		return C.fftw_plan_guru64_dft_r2c(C.int(len(dims)), d, C.int(len(howMany)), h,
			(*C.double)(in), (*C.fftw_complex)(out), cflags(flags))
	})
}

// PlanDFTC2R plans a complex-to-real transform with fftw_plan_guru64_dft_c2r.
func (Engine) PlanDFTC2R(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	d, dk := iodims(dims)
	h, hk := iodims(howMany)

	defer runtime.KeepAlive(dk)
	defer runtime.KeepAlive(hk)

	return pinned(in, out, func() C.fftw_plan {
		return C.fftw_plan_guru64_dft_c2r(C.int(len(dims)), d, C.int(len(howMany)), h,
			(*C.fftw_complex)(in), (*C.double)(out), cflags(flags))
	})
}

// Malloc allocates with fftw_malloc, which guarantees SIMD alignment.
func (Engine) Malloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}

	return C.fftw_malloc(C.size_t(size))
}

// Free releases memory from Malloc.
func (Engine) Free(p unsafe.Pointer) {
	if p != nil {
		C.fftw_free(p)
	}
}

// ImportWisdom merges wisdom in FFTW's text format.
func (Engine) ImportWisdom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	cs := C.CString(string(data))
	defer C.free(unsafe.Pointer(cs))

	if C.fftw_import_wisdom_from_string(cs) == 0 {
		return errors.New("fftw: wisdom rejected")
	}

	return nil
}

// ExportWisdom writes FFTW's accumulated wisdom.
func (Engine) ExportWisdom(w io.Writer) error {
	s := C.fftw_export_wisdom_to_string()
	if s == nil {
		return errors.New("fftw: wisdom export failed")
	}
	defer C.free(unsafe.Pointer(s))

	_, err := io.WriteString(w, C.GoString(s))

	return err
}

// ForgetWisdom drops FFTW's accumulated wisdom.
func (Engine) ForgetWisdom() {
	C.fftw_forget_wisdom()
}
