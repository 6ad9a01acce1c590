package fftplan

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-fftplan/internal/memory"
)

func TestStorage_SliceAndFree(t *testing.T) {
	t.Parallel()

	s := NewStorage[complex128](10)
	assert.Equal(t, 10, s.Len())
	assert.Len(t, s.Slice(), 10)

	if EngineName() == "gofft" {
		assert.True(t, memory.IsAligned(unsafe.Pointer(&s.Slice()[0])))
	}

	s.Slice()[9] = 3i
	assert.Equal(t, 3i, s.Slice()[9])

	s.Free()
	s.Free()
	assert.Nil(t, s.Slice())
	assert.Zero(t, s.Len())
}

func TestStorage_Empty(t *testing.T) {
	t.Parallel()

	s := NewStorage[float64](0)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Slice())
	assert.NotPanics(t, s.Free)
}

func TestStorage_AllocationFailures(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, ErrAllocation, func() { NewStorage[float64](-1) })

	eng := newCountingEngine()
	eng.refuseMalloc = true
	requirePanicsWith(t, ErrAllocation, func() { newStorage[complex128](eng, 4) })
}
