// Package logging holds the process-wide logger shared by the planner and
// the engines. It is a no-op logger until one is installed.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// L returns the current logger.
func L() *zap.Logger {
	return logger.Load()
}

// Set installs l. A nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	logger.Store(l)
}
