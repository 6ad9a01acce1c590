package fftplan

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Storage is engine-allocated memory with the alignment the engine prefers.
// Its contents are uninitialized. Storage never moves or grows, so it is
// always safe to plan against.
type Storage[E Element] struct {
	ptr     unsafe.Pointer
	n       int
	eng     engine.Engine
	cleanup runtime.Cleanup
}

type allocation struct {
	eng engine.Engine
	ptr unsafe.Pointer
}

// NewStorage allocates n elements from the active engine. It panics with
// ErrAllocation if the engine cannot provide the memory.
func NewStorage[E Element](n int) *Storage[E] {
	return newStorage[E](currentEngine(), n)
}

func newStorage[E Element](eng engine.Engine, n int) *Storage[E] {
	if n < 0 {
		precondition(ErrAllocation, "negative length %d", n)
	}

	var zero E

	size := int(unsafe.Sizeof(zero))
	if n > math.MaxInt/size {
		precondition(ErrAllocation, "%d elements overflow", n)
	}

	s := &Storage[E]{n: n, eng: eng}
	if n == 0 {
		return s
	}

	s.ptr = eng.Malloc(n * size)
	if s.ptr == nil {
		precondition(ErrAllocation, "%s could not allocate %d bytes", eng.Name(), n*size)
	}

	s.cleanup = runtime.AddCleanup(s, func(a allocation) {
		a.eng.Free(a.ptr)
	}, allocation{eng: eng, ptr: s.ptr})

	return s
}

// Slice views the storage. It returns nil once the storage is freed.
func (s *Storage[E]) Slice() []E {
	if s.ptr == nil {
		return nil
	}

	return unsafe.Slice((*E)(s.ptr), s.n)
}

// Len is the number of elements.
func (s *Storage[E]) Len() int {
	if s.ptr == nil {
		return 0
	}

	return s.n
}

// Free returns the memory to the engine. Later calls do nothing.
func (s *Storage[E]) Free() {
	if s.ptr == nil {
		return
	}

	s.cleanup.Stop()
	s.eng.Free(s.ptr)
	s.ptr = nil
}
