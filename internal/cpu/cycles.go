package cpu

import "time"

// epoch anchors the monotonic counter so readings stay small.
var epoch = time.Now()

// ReadCycleCounter returns a monotonic tick count for micro-benchmarking.
// Ticks are nanoseconds from the monotonic clock.
func ReadCycleCounter() int64 {
	return int64(time.Since(epoch))
}

// CyclesSince returns the number of ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts ticks to nanoseconds. Ticks already are
// nanoseconds; the conversion exists so callers do not depend on that.
func CyclesToNanoseconds(cycles int64) int64 {
	return cycles
}
