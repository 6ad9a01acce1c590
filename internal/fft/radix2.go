package fft

// Radix2 transforms data in place with an iterative decimation-in-time
// network. len(data) must be a power of two, twiddle must hold at least
// len(data) forward roots and bitrev the matching permutation. inverse
// conjugates the roots; the result is not scaled.
func Radix2[T Complex](data, twiddle []T, bitrev []int, inverse bool) {
	n := len(data)
	if n < 2 {
		return
	}

	for i, j := range bitrev[:n] {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				w := twiddle[k*step]
				if inverse {
					w = conj(w)
				}

				a := data[start+k]
				b := w * data[start+k+half]
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}
