package fft

import "math"

// Codelet is a fully unrolled transform of one fixed size. dst and src may
// be the same slice; all inputs are loaded before anything is stored.
type Codelet func(dst, src []complex128)

// HasCodelet reports whether CodeletFor covers n.
func HasCodelet(n int) bool {
	return n == 2 || n == 4 || n == 8
}

// CodeletFor returns the unnormalized forward or inverse codelet of size n,
// or nil if there is none.
func CodeletFor(n int, inverse bool) Codelet {
	switch n {
	case 2:
		return dit2
	case 4:
		if inverse {
			return func(dst, src []complex128) { dit4(dst, src, true) }
		}

		return func(dst, src []complex128) { dit4(dst, src, false) }
	case 8:
		if inverse {
			return func(dst, src []complex128) { dit8(dst, src, true) }
		}

		return func(dst, src []complex128) { dit8(dst, src, false) }
	default:
		return nil
	}
}

// rot multiplies by -i for forward transforms and by +i for inverse ones.
func rot(x complex128, inverse bool) complex128 {
	if inverse {
		return complex(-imag(x), real(x))
	}

	return complex(imag(x), -real(x))
}

func dit2(dst, src []complex128) {
	a, b := src[0], src[1]
	dst[0], dst[1] = a+b, a-b
}

// dit4 is a single radix-4 butterfly; size 4 needs no twiddles.
func dit4(dst, src []complex128, inverse bool) {
	x0, x1, x2, x3 := src[0], src[1], src[2], src[3]

	t0 := x0 + x2
	t1 := x0 - x2
	t2 := x1 + x3
	t3 := rot(x1-x3, inverse)

	dst[0] = t0 + t2
	dst[1] = t1 + t3
	dst[2] = t0 - t2
	dst[3] = t1 - t3
}

// dit8 runs radix-4 butterflies over the even and odd samples and joins
// them with one radix-2 stage.
func dit8(dst, src []complex128, inverse bool) {
	s := [8]complex128(src[:8])

	const h = math.Sqrt2 / 2

	w1, w3 := complex(h, -h), complex(-h, -h)
	if inverse {
		w1, w3 = complex(h, h), complex(-h, h)
	}

	a0 := s[0] + s[4]
	a1 := s[0] - s[4]
	a2 := s[2] + s[6]
	a3 := rot(s[2]-s[6], inverse)

	e0, e1, e2, e3 := a0+a2, a1+a3, a0-a2, a1-a3

	a0 = s[1] + s[5]
	a1 = s[1] - s[5]
	a2 = s[3] + s[7]
	a3 = rot(s[3]-s[7], inverse)

	o0, o1, o2, o3 := a0+a2, w1*(a1+a3), rot(a0-a2, inverse), w3*(a1-a3)

	dst[0], dst[4] = e0+o0, e0-o0
	dst[1], dst[5] = e1+o1, e1-o1
	dst[2], dst[6] = e2+o2, e2-o2
	dst[3], dst[7] = e3+o3, e3-o3
}
