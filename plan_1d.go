package fftplan

// One-dimensional plans with estimated strategies. The constructors without
// buffers allocate engine Storage, which the plan frees on Close.

// RealToComplex1D plans a forward real-to-complex transform of n points
// into n/2+1 bins.
func RealToComplex1D(n int) (*Plan[float64, complex128], error) {
	eng := currentEngine()
	in := newStorage[float64](eng, n)
	out := newStorage[complex128](eng, n/2+1)

	p, err := RealToComplex1DPreallocated(in, out)
	if err != nil {
		in.Free()
		out.Free()

		return nil, err
	}

	return p, nil
}

// RealToComplex1DPreallocated plans a real-to-complex transform of len(in)
// points. It panics unless len(in)/2+1 <= len(out).
func RealToComplex1DPreallocated(in Buffer[float64], out Buffer[complex128]) (*Plan[float64, complex128], error) {
	return Planner{}.R2C(in, out).Plan()
}

// ComplexToReal1D plans a complex-to-real transform from n/2+1 bins back to
// n points.
func ComplexToReal1D(n int) (*Plan[complex128, float64], error) {
	eng := currentEngine()
	in := newStorage[complex128](eng, n/2+1)
	out := newStorage[float64](eng, n)

	p, err := ComplexToReal1DPreallocated(in, out)
	if err != nil {
		in.Free()
		out.Free()

		return nil, err
	}

	return p, nil
}

// ComplexToReal1DPreallocated plans a complex-to-real transform producing
// len(out) points, so odd lengths are expressible. It panics unless in
// holds exactly len(out)/2+1 bins. That is stricter than Planner.C2R, which
// accepts len(in) <= len(out)/2+1, because a transform of len(out) points
// reads len(out)/2+1 bins and a shorter input would be read past its end.
func ComplexToReal1DPreallocated(in Buffer[complex128], out Buffer[float64]) (*Plan[complex128, float64], error) {
	return Planner{}.C2R(in, out).
		WithDimensions(Detailed{{N: len(out.Slice()), InStride: 1, OutStride: 1}}).
		Plan()
}

// ComplexToComplex1D plans a forward complex transform of n points.
func ComplexToComplex1D(n int) (*Plan[complex128, complex128], error) {
	eng := currentEngine()
	in := newStorage[complex128](eng, n)
	out := newStorage[complex128](eng, n)

	p, err := ComplexToComplex1DPreallocated(in, out)
	if err != nil {
		in.Free()
		out.Free()

		return nil, err
	}

	return p, nil
}

// ComplexToComplex1DPreallocated plans a forward complex transform of
// len(in) points. It panics unless len(in) <= len(out).
func ComplexToComplex1DPreallocated(in, out Buffer[complex128]) (*Plan[complex128, complex128], error) {
	return Planner{}.C2C(in, out).Plan()
}
