package gofft

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-fftplan/internal/cpu"
	"github.com/cwbudde/algo-fftplan/internal/fft"
	"github.com/cwbudde/algo-fftplan/internal/logging"
)

// Kind is the transform kind of a problem.
type Kind uint8

const (
	KindC2C Kind = iota
	KindR2C
	KindC2R
)

var kindNames = [...]string{"c2c", "r2c", "c2r"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("unknown transform kind %q", s)
}

// Strategy is an algorithm the engine can execute a problem with.
type Strategy uint8

const (
	// StrategyDFT is the direct O(n²) transform.
	StrategyDFT Strategy = iota
	// StrategyRadix2 is the iterative radix-2 network, power-of-two c2c only.
	StrategyRadix2
	// StrategyPacked runs an even-length real transform through a half-length
	// complex transform.
	StrategyPacked
	// StrategyGonum delegates to gonum's FFTPACK port.
	StrategyGonum
	// StrategyCodelet is an unrolled butterfly network for tiny c2c sizes.
	StrategyCodelet
)

var strategyNames = [...]string{"dft", "radix2", "packed", "gonum", "codelet"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return "unknown"
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for i, name := range strategyNames {
		if name == s {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// dftLimit bounds the sizes for which measuring the direct transform is
// worthwhile, per rigor level.
var dftLimit = [...]int{0, 64, 64, 1024}

// measureReps is the number of timed executions per candidate, per rigor
// level.
var measureReps = [...]int{0, 3, 8, 16}

// applicable reports whether s can execute p.
func applicable(p problem, s Strategy) bool {
	switch s {
	case StrategyDFT:
		return true
	case StrategyRadix2:
		return p.kind == KindC2C && fft.IsPowerOfTwo(p.n)
	case StrategyPacked:
		return p.kind != KindC2C && p.n >= 2 && p.n%2 == 0
	case StrategyGonum:
		return p.n >= 2
	case StrategyCodelet:
		return p.kind == KindC2C && fft.HasCodelet(p.n)
	default:
		return false
	}
}

// estimate picks a strategy without measuring.
func estimate(p problem) Strategy {
	switch {
	case p.n < 2:
		return StrategyDFT
	case p.kind == KindC2C && fft.HasCodelet(p.n):
		return StrategyCodelet
	case p.kind == KindC2C && fft.IsPowerOfTwo(p.n):
		return StrategyRadix2
	case p.kind != KindC2C && p.n%2 == 0 && fft.IsPowerOfTwo(p.n/2):
		return StrategyPacked
	default:
		return StrategyGonum
	}
}

// measure times every applicable strategy on private scratch buffers and
// returns the fastest.
func measure(p problem, level int) Strategy {
	best := estimate(p)
	bestTicks := int64(math.MaxInt64)

	single := p
	single.is, single.os, single.count = 1, 1, 1

	for _, s := range []Strategy{StrategyCodelet, StrategyRadix2, StrategyPacked, StrategyGonum, StrategyDFT} {
		if !applicable(p, s) || (s == StrategyDFT && p.n > dftLimit[level]) {
			continue
		}

		k := newKernel(single, s)
		ticks := timeKernel(single, k, measureReps[level])

		logging.L().Debug("gofft: measured strategy",
			zap.Stringer("kind", p.kind),
			zap.Int("n", p.n),
			zap.Stringer("strategy", s),
			zap.Int64("ns", cpu.CyclesToNanoseconds(ticks)))

		if ticks < bestTicks {
			best, bestTicks = s, ticks
		}
	}

	return best
}

func timeKernel(p problem, k kernel, reps int) int64 {
	inC := make([]complex128, p.n)
	inR := make([]float64, p.n)
	outC := make([]complex128, p.n)
	outR := make([]float64, p.n)

	for i := range p.n {
		inR[i] = math.Sin(float64(i))
		inC[i] = complex(inR[i], math.Cos(float64(i)))
	}

	run := func() {
		switch p.kind {
		case KindC2C:
			k.c2c(outC, inC)
		case KindR2C:
			k.r2c(outC[:p.n/2+1], inR)
		case KindC2R:
			k.c2r(outR, inC[:p.n/2+1])
		}
	}

	run()

	best := int64(math.MaxInt64)
	for range reps {
		start := cpu.ReadCycleCounter()
		run()

		if elapsed := cpu.CyclesSince(start); elapsed < best {
			best = elapsed
		}
	}

	return best
}

// kernel executes one contiguous transform of a problem. Exactly one field
// is set, matching the problem kind. Inputs are never modified.
type kernel struct {
	c2c func(dst, src []complex128)
	r2c func(dst []complex128, src []float64)
	c2r func(dst []float64, src []complex128)
}

func newKernel(p problem, s Strategy) kernel {
	inverse := p.sign == 1

	switch p.kind {
	case KindC2C:
		return kernel{c2c: complexTransform(p.n, s, inverse)}
	case KindR2C:
		return kernel{r2c: realForward(p.n, s)}
	default:
		return kernel{c2r: realInverse(p.n, s)}
	}
}

func complexTransform(n int, s Strategy, inverse bool) func(dst, src []complex128) {
	switch s {
	case StrategyCodelet:
		return fft.CodeletFor(n, inverse)
	case StrategyRadix2:
		twiddle := fft.ComputeTwiddleFactors[complex128](n)
		bitrev := fft.ComputeBitReversalIndices(n)

		return func(dst, src []complex128) {
			copy(dst, src)
			fft.Radix2(dst, twiddle, bitrev, inverse)
		}
	case StrategyGonum:
		cf := fourier.NewCmplxFFT(n)
		if inverse {
			return func(dst, src []complex128) { cf.Sequence(dst, src) }
		}

		return func(dst, src []complex128) { cf.Coefficients(dst, src) }
	default:
		twiddle := fft.ComputeTwiddleFactors[complex128](n)

		return func(dst, src []complex128) {
			fft.DFT(dst, src, twiddle, inverse)
		}
	}
}

// halfStrategy picks the complex transform behind a packed real transform.
func halfStrategy(half int) Strategy {
	switch {
	case fft.HasCodelet(half):
		return StrategyCodelet
	case fft.IsPowerOfTwo(half):
		return StrategyRadix2
	case half >= 2:
		return StrategyGonum
	default:
		return StrategyDFT
	}
}

func newPacked(n int) *fft.PackedReal {
	half := n / 2
	hs := halfStrategy(half)

	return fft.NewPackedReal(n, complexTransform(half, hs, false), complexTransform(half, hs, true))
}

func realForward(n int, s Strategy) func(dst []complex128, src []float64) {
	switch s {
	case StrategyPacked:
		return newPacked(n).Forward
	case StrategyGonum:
		rf := fourier.NewFFT(n)

		return func(dst []complex128, src []float64) { rf.Coefficients(dst, src) }
	default:
		twiddle := fft.ComputeTwiddleFactors[complex128](n)

		return func(dst []complex128, src []float64) {
			fft.RealDFT(dst, src, twiddle)
		}
	}
}

func realInverse(n int, s Strategy) func(dst []float64, src []complex128) {
	switch s {
	case StrategyPacked:
		return newPacked(n).Inverse
	case StrategyGonum:
		rf := fourier.NewFFT(n)

		return func(dst []float64, src []complex128) { rf.Sequence(dst, src) }
	default:
		twiddle := fft.ComputeTwiddleFactors[complex128](n)

		return func(dst []float64, src []complex128) {
			fft.RealIDFT(dst, src, twiddle)
		}
	}
}
