//go:build !fftw || !cgo

package fftplan

import (
	"github.com/cwbudde/algo-fftplan/internal/engine"
	"github.com/cwbudde/algo-fftplan/internal/engine/gofft"
)

func defaultEngine() engine.Engine {
	return gofft.New()
}
