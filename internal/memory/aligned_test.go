package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 7, 64, 100, 4096} {
		data, backing := AllocAligned(size)

		require.Len(t, data, size)
		assert.GreaterOrEqual(t, len(backing), size)
		assert.True(t, IsAligned(unsafe.Pointer(unsafe.SliceData(data))), "size %d", size)
	}
}

func TestAllocAlignedEmpty(t *testing.T) {
	t.Parallel()

	data, backing := AllocAligned(0)
	assert.Nil(t, data)
	assert.Nil(t, backing)

	c, _ := AllocAlignedComplex128(-1)
	assert.Nil(t, c)
}

func TestAllocAlignedTyped(t *testing.T) {
	t.Parallel()

	c, cb := AllocAlignedComplex128(33)
	require.Len(t, c, 33)
	assert.GreaterOrEqual(t, len(cb), 33*16)
	assert.True(t, IsAligned(unsafe.Pointer(&c[0])))

	f, fb := AllocAlignedFloat64(5)
	require.Len(t, f, 5)
	assert.GreaterOrEqual(t, len(fb), 5*8)
	assert.True(t, IsAligned(unsafe.Pointer(&f[0])))

	// Writes through the typed view land in the backing bytes.
	f[0] = 1
	assert.Equal(t, float64(1), f[0])
}
