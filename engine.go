package fftplan

import (
	"sync"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

var currentEngine = sync.OnceValue(func() engine.Engine {
	return defaultEngine()
})

// EngineName names the transform engine in use.
func EngineName() string {
	return currentEngine().Name()
}
