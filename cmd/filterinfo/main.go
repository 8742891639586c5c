// Command filterinfo designs a classic IIR filter and prints its
// representations.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -family butterworth -order 4 -cutoff 0.3
//	filterinfo -family chebyshev1 -order 5 -ripple 0.5 -cutoff 0.25
//	filterinfo -family butterworth -order 2 -type highpass -cutoff 0.6
//	filterinfo -family butterworth -order 3 -analog
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/form"
)

func main() {
	family := flag.String("family", "butterworth", "filter family: butterworth or chebyshev1")
	order := flag.Int("order", 4, "filter order")
	ripple := flag.Float64("ripple", 1, "passband ripple in dB (chebyshev1 only)")
	ftype := flag.String("type", "lowpass", "response type: lowpass or highpass")
	cutoff := flag.Float64("cutoff", 0.5, "corner frequency normalized to Nyquist, in (0, 1)")
	analog := flag.Bool("analog", false, "print the analog prototype instead of a digital design")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an IIR filter and prints its zeros, poles, transfer\n")
		fmt.Fprintf(os.Stderr, "function coefficients and second-order sections.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -family butterworth -order 4 -cutoff 0.3\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -family chebyshev1 -order 5 -ripple 0.5 -cutoff 0.25\n")
	}
	flag.Parse()

	proto, err := prototype(*family, *order, *ripple)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f := proto
	if !*analog {
		switch *ftype {
		case "lowpass":
			f, err = design.DigitalLowpass(proto, *cutoff)
		case "highpass":
			f, err = design.DigitalHighpass(proto, *cutoff)
		default:
			err = fmt.Errorf("unknown response type %q", *ftype)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	printFilter(f)
}

func prototype(family string, order int, ripple float64) (form.ZeroPoleGain, error) {
	switch family {
	case "butterworth":
		return design.Butterworth(order)
	case "chebyshev1":
		return design.Chebyshev1(order, ripple)
	default:
		return form.ZeroPoleGain{}, fmt.Errorf("unknown filter family %q", family)
	}
}

func printFilter(f form.ZeroPoleGain) {
	fmt.Printf("Domain: %s\n", f.Domain())
	fmt.Printf("Gain:   %.10g\n\n", f.Gain())

	printRoots("Zeros", f.Zeros())
	printRoots("Poles", f.Poles())

	r := f.PolynomialRatio()
	fmt.Println("Transfer function:")
	fmt.Printf("  b: %.10g\n", r.CoefB())
	fmt.Printf("  a: %.10g\n\n", r.CoefA())

	sos, err := f.SecondOrderSections()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no cascade form: %v\n", err)
		return
	}

	fmt.Printf("Second-order sections (gain %.10g):\n", sos.Gain())
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tb0\tb1\tb2\ta1\ta2\n")
	for i, s := range sos.Sections() {
		fmt.Fprintf(tw, "%d\t%.8g\t%.8g\t%.8g\t%.8g\t%.8g\n",
			i, s.B0(), s.B1(), s.B2(), s.A1(), s.A2())
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printRoots(label string, roots []complex128) {
	fmt.Printf("%s (%d):\n", label, len(roots))
	if len(roots) == 0 {
		fmt.Println("  (none)")
	}
	for _, r := range roots {
		fmt.Printf("  %+.8f %+.8fi\n", real(r), imag(r))
	}
	fmt.Println()
}
