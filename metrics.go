package fftplan

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-fftplan/internal/metrics"
)

// Collectors returns the package's Prometheus collectors for registration:
// plans created and failed per kind, live plans, planning duration and
// planning lock wait.
func Collectors() []prometheus.Collector {
	return metrics.Collectors()
}
