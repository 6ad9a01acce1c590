package fftplan

// Element is a sample type the engine transforms.
type Element interface {
	float64 | complex128
}

// Buffer is memory a plan reads from or writes to. The slice it returns
// must keep the same backing array and length for as long as a plan uses
// it. Buffers with a Free method are freed by the plan that owns them.
type Buffer[E Element] interface {
	Slice() []E
}

// SliceBuffer adapts an ordinary slice. The engine may run slower on
// memory without its preferred alignment.
type SliceBuffer[E Element] []E

// Slice returns s.
func (s SliceBuffer[E]) Slice() []E {
	return s
}

type freer interface {
	Free()
}

func free(b any) {
	if f, ok := b.(freer); ok {
		f.Free()
	}
}
