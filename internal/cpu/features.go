// Package cpu reports the processor features relevant to strategy selection
// and provides the timer used to measure candidate strategies.
package cpu

import (
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities recorded alongside wisdom.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

var (
	detected     Features
	detectedOnce sync.Once
)

// DetectFeatures returns the features of the running processor. The result
// is computed once.
func DetectFeatures() Features {
	detectedOnce.Do(func() {
		detected = Features{
			HasSSE2:      cpu.X86.HasSSE2,
			HasSSE3:      cpu.X86.HasSSE3,
			HasAVX:       cpu.X86.HasAVX,
			HasAVX2:      cpu.X86.HasAVX2,
			HasAVX512:    cpu.X86.HasAVX512F,
			HasFMA:       cpu.X86.HasFMA,
			HasNEON:      cpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})

	return detected
}

// Mask packs the feature flags into a bitmask. Wisdom measured on one
// feature set is not reused on another.
func (f Features) Mask() uint64 {
	var mask uint64

	for i, has := range []bool{f.HasSSE2, f.HasSSE3, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasFMA, f.HasNEON} {
		if has {
			mask |= 1 << i
		}
	}

	return mask
}

// String lists the detected features, e.g. "amd64+sse2+avx2".
func (f Features) String() string {
	parts := []string{f.Architecture}

	names := []struct {
		has  bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasSSE3, "sse3"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasFMA, "fma"},
		{f.HasNEON, "neon"},
	}
	for _, n := range names {
		if n.has {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "+")
}
