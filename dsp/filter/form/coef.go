package form

// Filter is implemented by every representation. It exists so that the
// coefficient accessors below can accept any of the four forms.
type Filter interface {
	// Domain returns the domain tag of the filter.
	Domain() Domain
}

// CoefB returns the numerator coefficients of any representation ordered
// highest power first, routed through [PolynomialRatio].
func CoefB(f Filter) []float64 {
	return asRatio(f).CoefB()
}

// CoefA returns the denominator coefficients of any representation
// ordered highest power first, routed through [PolynomialRatio].
func CoefA(f Filter) []float64 {
	return asRatio(f).CoefA()
}

func asRatio(f Filter) PolynomialRatio {
	switch v := f.(type) {
	case PolynomialRatio:
		return v
	case ZeroPoleGain:
		return v.PolynomialRatio()
	case Biquad:
		return v.PolynomialRatio()
	case SecondOrderSections:
		return v.PolynomialRatio()
	default:
		panic("form: unknown filter representation")
	}
}
