//go:build fftw && cgo

package fftplan

import (
	"github.com/cwbudde/algo-fftplan/internal/engine"
	"github.com/cwbudde/algo-fftplan/internal/engine/fftw"
)

func defaultEngine() engine.Engine {
	return fftw.New()
}
