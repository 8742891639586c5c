package form_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/form"
)

func ExampleNewPolynomialRatio() {
	f, err := form.NewPolynomialRatio([]float64{0.5, 0.5}, []float64{2, 2})
	if err != nil {
		panic(err)
	}

	fmt.Println(f.CoefB())
	fmt.Println(f.CoefA())
	// Output:
	// [0.25 0.25]
	// [1 1]
}

func ExampleZeroPoleGain_PolynomialRatio() {
	f := form.NewZeroPoleGain(
		[]complex128{1, -1},
		[]complex128{0.5 + 0.5i, 0.5 - 0.5i},
		2,
	)

	r := f.PolynomialRatio()
	fmt.Println(r.CoefB())
	fmt.Println(r.CoefA())
	// Output:
	// [2 0 -2]
	// [1 -1 0.5]
}

func ExampleZeroPoleGain_SecondOrderSections() {
	f := form.NewZeroPoleGain(
		[]complex128{-1, -1},
		[]complex128{0.6 + 0.4i, 0.6 - 0.4i, 0.5},
		1,
	)

	sos, err := f.SecondOrderSections()
	if err != nil {
		panic(err)
	}

	for i, s := range sos.Sections() {
		fmt.Printf("section %d: b=[%g %g %g] a=[1 %g %g]\n",
			i, s.B0(), s.B1(), s.B2(), s.A1(), s.A2())
	}
	// Output:
	// section 0: b=[0 1 0] a=[1 -0.5 0]
	// section 1: b=[1 2 1] a=[1 -1.2 0.52]
}
