// Package fftplan plans and executes discrete Fourier transforms over a
// native transform engine, keeping track of which buffers each plan was
// built for.
//
// A Planner carries the planning options. Binding it to buffers yields a
// Bound configuration, which can be further adjusted (dimensions,
// replication, rigor) and then planned:
//
//	in := fftplan.NewStorage[complex128](1024)
//	out := fftplan.NewStorage[complex128](1024)
//
//	plan, err := fftplan.Planner{}.Rigor(fftplan.RigorMeasure).C2C(in, out).Plan()
//	if err != nil {
//		// The engine refused; the Bound is untouched and may be re-planned.
//	}
//	defer plan.Close()
//
//	copy(plan.Input(), signal)
//	spectrum := plan.Execute()
//
// Plan construction is serialized across the whole process; execution is
// not, so distinct plans may run on different goroutines at the same time.
// Transforms are unnormalized: a forward transform followed by a backward
// transform scales the data by the transform length.
//
// The default engine is written in Go. Building with the "fftw" tag (and
// cgo) switches to libfftw3.
package fftplan
