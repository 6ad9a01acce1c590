// Package planlock serializes plan construction. Engine planners mutate
// process-wide state, so every planning call in the process, for any
// transform kind, runs while holding the one lock defined here.
package planlock

import (
	"sync"
	"time"

	"github.com/cwbudde/algo-fftplan/internal/metrics"
)

var mu sync.Mutex

// Run calls f while holding the planning lock and returns its result. It
// blocks until the lock is available; there is no timeout.
func Run[T any](f func() T) T {
	start := time.Now()

	mu.Lock()
	defer mu.Unlock()

	metrics.LockWait.Observe(time.Since(start).Seconds())

	return f()
}

// Do is Run for calls without a result, such as plan destruction and wisdom
// changes.
func Do(f func()) {
	Run(func() struct{} {
		f()

		return struct{}{}
	})
}
