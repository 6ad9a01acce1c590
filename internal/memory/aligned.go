// Package memory provides aligned allocations on the Go heap.
package memory

import "unsafe"

// Alignment is the byte alignment of every allocation, wide enough for
// AVX-512 loads.
const Alignment = 64

// AllocAligned returns size bytes whose first byte is Alignment-aligned,
// together with the backing slice that owns them. The returned region is a
// subslice of backing; keeping either reachable keeps the memory alive.
func AllocAligned(size int) (data, backing []byte) {
	if size <= 0 {
		return nil, nil
	}

	backing = make([]byte, size+Alignment-1)
	offset := alignOffset(unsafe.Pointer(unsafe.SliceData(backing)))

	return backing[offset : offset+size : offset+size], backing
}

// AllocAlignedComplex128 returns n aligned complex128 values and their
// backing bytes.
func AllocAlignedComplex128(n int) ([]complex128, []byte) {
	return allocTyped[complex128](n)
}

// AllocAlignedFloat64 returns n aligned float64 values and their backing
// bytes.
func AllocAlignedFloat64(n int) ([]float64, []byte) {
	return allocTyped[float64](n)
}

// IsAligned reports whether p is Alignment-aligned.
func IsAligned(p unsafe.Pointer) bool {
	return uintptr(p)%Alignment == 0
}

func allocTyped[T any](n int) ([]T, []byte) {
	if n <= 0 {
		return nil, nil
	}

	var zero T

	data, backing := AllocAligned(n * int(unsafe.Sizeof(zero)))

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n), backing
}

func alignOffset(p unsafe.Pointer) int {
	rem := int(uintptr(p) % Alignment)
	if rem == 0 {
		return 0
	}

	return Alignment - rem
}
