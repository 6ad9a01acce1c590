package fft

import "math"

// HalfTransform is an unnormalized complex transform of the packed
// half-length sequence. dst and src do not overlap.
type HalfTransform func(dst, src []complex128)

// PackedReal computes real transforms of even length n through a complex
// transform of length n/2: even samples go to the real part, odd samples to
// the imaginary part, and the half spectrum is recombined with the roots
// exp(-2πik/n).
type PackedReal struct {
	n       int
	half    int
	weight  []complex128
	buf     []complex128
	tmp     []complex128
	forward HalfTransform
	inverse HalfTransform
}

// NewPackedReal returns a packed transform for even n >= 2 using the given
// forward and inverse half-length transforms.
func NewPackedReal(n int, forward, inverse HalfTransform) *PackedReal {
	if n < 2 || n%2 != 0 {
		return nil
	}

	half := n / 2

	weight := make([]complex128, half+1)
	for k := range weight {
		angle := -2 * math.Pi * float64(k) / float64(n)
		weight[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &PackedReal{
		n:       n,
		half:    half,
		weight:  weight,
		buf:     make([]complex128, half),
		tmp:     make([]complex128, half),
		forward: forward,
		inverse: inverse,
	}
}

// Len returns the number of real samples.
func (p *PackedReal) Len() int {
	return p.n
}

// Forward writes the n/2+1 coefficients of src into dst.
func (p *PackedReal) Forward(dst []complex128, src []float64) {
	half := p.half

	for m := range half {
		p.buf[m] = complex(src[2*m], src[2*m+1])
	}

	p.forward(p.tmp, p.buf)
	z := p.tmp

	for k := 0; k <= half; k++ {
		zk := z[k%half]
		zmk := conj(z[(half-k)%half])

		even := (zk + zmk) * 0.5
		odd := (zk - zmk) * complex(0, -0.5)
		dst[k] = even + p.weight[k]*odd
	}
}

// Inverse reconstructs n real samples, scaled by n, from the half spectrum
// src. The imaginary parts of the DC and Nyquist bins are ignored.
func (p *PackedReal) Inverse(dst []float64, src []complex128) {
	half := p.half

	bin := func(k int) complex128 {
		if k == 0 || k == half {
			return complex(real(src[k]), 0)
		}

		return src[k]
	}

	for k := range half {
		xk := bin(k)
		xmk := conj(bin(half - k))

		even := xk + xmk
		odd := (xk - xmk) * conj(p.weight[k])
		p.buf[k] = even + complex(-imag(odd), real(odd))
	}

	p.inverse(p.tmp, p.buf)

	for m := range half {
		dst[2*m] = real(p.tmp[m])
		dst[2*m+1] = imag(p.tmp[m])
	}
}
