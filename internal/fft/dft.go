package fft

// DFT computes the direct O(n²) transform of src into dst. dst and src must
// not overlap; twiddle holds len(src) forward roots.
func DFT[T Complex](dst, src, twiddle []T, inverse bool) {
	n := len(src)

	for k := range n {
		var sum T

		for j := range n {
			w := twiddle[(j*k)%n]
			if inverse {
				w = conj(w)
			}

			sum += src[j] * w
		}

		dst[k] = sum
	}
}

// RealDFT computes the first n/2+1 coefficients of the real sequence src.
func RealDFT(dst []complex128, src []float64, twiddle []complex128) {
	n := len(src)

	for k := range n/2 + 1 {
		var sum complex128
		for j := range n {
			sum += complex(src[j], 0) * twiddle[(j*k)%n]
		}

		dst[k] = sum
	}
}

// RealIDFT reconstructs the real sequence dst from its half spectrum src
// (len(dst)/2+1 bins). The imaginary parts of the DC and, for even lengths,
// Nyquist bins are ignored.
func RealIDFT(dst []float64, src []complex128, twiddle []complex128) {
	n := len(dst)
	even := n%2 == 0

	for j := range n {
		acc := real(src[0])

		for k := 1; k < (n+1)/2; k++ {
			acc += 2 * real(src[k]*conj(twiddle[(j*k)%n]))
		}

		if even {
			nyquist := real(src[n/2])
			if j%2 == 1 {
				nyquist = -nyquist
			}

			acc += nyquist
		}

		dst[j] = acc
	}
}
