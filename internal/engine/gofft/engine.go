// Package gofft is the pure-Go transform engine. It implements the planner
// surface of internal/engine on top of the kernels in internal/fft and
// gonum's fourier package, choosing between them by heuristic or by
// measurement and remembering measured choices as wisdom.
package gofft

import (
	"io"
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftplan/internal/cpu"
	"github.com/cwbudde/algo-fftplan/internal/engine"
	"github.com/cwbudde/algo-fftplan/internal/logging"
	"github.com/cwbudde/algo-fftplan/internal/memory"
)

// Engine is the pure-Go engine. Each Engine has its own wisdom.
type Engine struct {
	wisdom   *Wisdom
	features uint64
}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine with empty wisdom.
func New() *Engine {
	return &Engine{
		wisdom:   NewWisdom(),
		features: cpu.DetectFeatures().Mask(),
	}
}

// Name identifies the engine.
func (e *Engine) Name() string {
	return "gofft"
}

// Wisdom exposes the engine's wisdom store.
func (e *Engine) Wisdom() *Wisdom {
	return e.wisdom
}

// PlanDFT plans a complex-to-complex transform.
func (e *Engine) PlanDFT(dims, howMany []engine.IODim, in, out unsafe.Pointer, sign engine.Sign, flags engine.Flags) engine.Plan {
	if sign != engine.SignForward && sign != engine.SignBackward {
		return nil
	}

	return e.plan(KindC2C, dims, howMany, in, out, sign, flags)
}

// PlanDFTR2C plans a real-to-complex transform.
func (e *Engine) PlanDFTR2C(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	return e.plan(KindR2C, dims, howMany, in, out, engine.SignForward, flags)
}

// PlanDFTC2R plans a complex-to-real transform.
func (e *Engine) PlanDFTC2R(dims, howMany []engine.IODim, in, out unsafe.Pointer, flags engine.Flags) engine.Plan {
	return e.plan(KindC2R, dims, howMany, in, out, engine.SignBackward, flags)
}

func (e *Engine) plan(kind Kind, dims, howMany []engine.IODim, in, out unsafe.Pointer, sign engine.Sign, flags engine.Flags) engine.Plan {
	if in == nil || out == nil {
		return nil
	}

	p, ok := newProblem(kind, dims, howMany, sign)
	if !ok {
		return nil
	}

	level := flags.Level()

	strategy, ok := e.choose(p, level, flags.Has(engine.WisdomOnly))
	if !ok {
		logging.L().Debug("gofft: no usable wisdom",
			zap.Stringer("kind", kind), zap.Int("n", p.n), zap.String("rigor", rigorName(level)))

		return nil
	}

	return newPlan(p, strategy, level, in, out)
}

// choose resolves the strategy for p: from wisdom of sufficient rigor, by
// heuristic for estimate plans, or by measurement (which is then stored).
func (e *Engine) choose(p problem, level int, wisdomOnly bool) (Strategy, bool) {
	key := WisdomKey{Kind: p.kind, Size: p.n, Sign: p.sign, Features: e.features}

	entry, found := e.wisdom.Lookup(key)
	usable := found && entry.Rigor >= level && applicable(p, entry.Algorithm)

	switch {
	case usable:
		return entry.Algorithm, true
	case wisdomOnly:
		return 0, false
	case level == 0:
		return estimate(p), true
	}

	s := measure(p, level)
	e.wisdom.Store(WisdomEntry{Key: key, Algorithm: s, Rigor: level, Timestamp: time.Now()})

	return s, true
}

// Malloc returns size bytes of 64-byte aligned Go memory.
func (e *Engine) Malloc(size int) unsafe.Pointer {
	data, _ := memory.AllocAligned(size)
	if data == nil {
		return nil
	}

	return unsafe.Pointer(unsafe.SliceData(data))
}

// Free is a no-op; the garbage collector reclaims engine memory once
// nothing points into it.
func (e *Engine) Free(unsafe.Pointer) {}

// ImportWisdom merges wisdom written by ExportWisdom.
func (e *Engine) ImportWisdom(r io.Reader) error {
	return e.wisdom.Import(r)
}

// ExportWisdom writes the accumulated wisdom.
func (e *Engine) ExportWisdom(w io.Writer) error {
	return e.wisdom.Export(w)
}

// ForgetWisdom drops all wisdom.
func (e *Engine) ForgetWisdom() {
	e.wisdom.Clear()
}
