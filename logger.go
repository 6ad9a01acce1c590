package fftplan

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftplan/internal/logging"
)

// SetLogger routes the package's debug logging to l. Logging is off until
// this is called; a nil logger turns it off again.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}
