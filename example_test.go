package fftplan_test

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fftplan"
)

func ExampleRealToComplex1D() {
	plan, err := fftplan.RealToComplex1D(8)
	if err != nil {
		panic(err)
	}
	defer plan.Close()

	in := plan.Input()
	for i := range in {
		in[i] = math.Cos(2 * math.Pi * float64(i) / 8)
	}

	for _, bin := range plan.Execute() {
		fmt.Printf("%.0f ", cmplx.Abs(bin))
	}
	fmt.Println()
	// Output: 0 4 0 0 0
}

func ExampleBound_Plan() {
	in := make(fftplan.SliceBuffer[complex128], 40)
	out := make(fftplan.SliceBuffer[complex128], 40)

	bound := fftplan.Planner{}.Rigor(fftplan.RigorPatient).WisdomRestriction(true).C2C(in, out)

	// No patient wisdom exists yet for this size.
	if _, err := bound.Plan(); errors.Is(err, fftplan.ErrConstructionFailed) {
		fmt.Println("refused:", err)
	}

	plan, err := bound.WithRigor(fftplan.RigorEstimate).WithWisdomRestriction(false).Plan()
	if err != nil {
		panic(err)
	}
	defer plan.Close()

	in[0] = 1
	fmt.Printf("%.0f\n", cmplx.Abs(plan.Execute()[7]))
	// Output:
	// refused: fftplan: plan construction failed: c2c n=40 rigor=patient wisdom-only
	// 1
}
