// Package fft holds the numerical kernels behind the pure-Go engine: twiddle
// tables, the iterative radix-2 transform, the direct DFT and the packed
// real-input transforms. All transforms are unnormalized.
package fft

import "math"

// Complex is the constraint for the complex element types the kernels accept.
type Complex interface {
	~complex64 | ~complex128
}

// ComputeTwiddleFactors returns the roots of unity W_n^k = exp(-2πik/n) for
// k = 0..n-1.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// ComputeBitReversalIndices returns the bit-reversal permutation for a size-n
// radix-2 transform. n must be a power of two.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n >= 1.
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower bits bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}
