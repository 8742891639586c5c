package form

import "github.com/cwbudde/algo-iir/internal/laurent"

// Biquad is a single second-order section: five scalar coefficients with
// the denominator's leading coefficient implicitly 1. Lower-order
// sections are represented by zero-valued trailing coefficients, never by
// a different shape.
type Biquad struct {
	domain             Domain
	b0, b1, b2, a1, a2 float64
}

// NewBiquad builds a section from already-normalized coefficients.
// The default domain is Z.
func NewBiquad(b0, b1, b2, a1, a2 float64, opts ...Option) Biquad {
	cfg := applyOptions(opts)

	return Biquad{domain: cfg.domain, b0: b0, b1: b1, b2: b2, a1: a1, a2: a2}
}

// NormalizedBiquad builds a section from six coefficients, dividing
// through by a0 and applying the optional [WithGain] factor to the
// numerator. A zero a0 yields [ErrDenominatorZero].
func NormalizedBiquad(b0, b1, b2, a0, a1, a2 float64, opts ...Option) (Biquad, error) {
	cfg := applyOptions(opts)

	if a0 == 0 {
		return Biquad{}, ErrDenominatorZero
	}

	g := cfg.gain

	return Biquad{
		domain: cfg.domain,
		b0:     g * b0 / a0,
		b1:     g * b1 / a0,
		b2:     g * b2 / a0,
		a1:     a1 / a0,
		a2:     a2 / a0,
	}, nil
}

// Domain returns the filter domain.
func (f Biquad) Domain() Domain { return f.domain }

// B0 returns the leading numerator coefficient.
func (f Biquad) B0() float64 { return f.b0 }

// B1 returns the middle numerator coefficient.
func (f Biquad) B1() float64 { return f.b1 }

// B2 returns the trailing numerator coefficient.
func (f Biquad) B2() float64 { return f.b2 }

// A1 returns the middle denominator coefficient.
func (f Biquad) A1() float64 { return f.a1 }

// A2 returns the trailing denominator coefficient.
func (f Biquad) A2() float64 { return f.a2 }

// Scale returns f with its numerator coefficients multiplied by g. For a
// single section this is an exact scalar gain.
func (f Biquad) Scale(g float64) Biquad {
	return Biquad{domain: f.domain, b0: g * f.b0, b1: g * f.b1, b2: g * f.b2, a1: f.a1, a2: f.a2}
}

// Inv returns the reciprocal section: the numerator becomes (1, a1, a2)
// and the old numerator, renormalized by b0, becomes the denominator.
// A zero b0 yields [ErrDenominatorZero].
func (f Biquad) Inv() (Biquad, error) {
	return NormalizedBiquad(1, f.a1, f.a2, f.b0, f.b1, f.b2, WithDomain(f.domain))
}

// Mul returns the cascade of f with the given sections as
// SecondOrderSections with unit gain.
func (f Biquad) Mul(gs ...Biquad) SecondOrderSections {
	sections := make([]Biquad, 0, len(gs)+1)
	sections = append(sections, f)

	for _, g := range gs {
		mustMatch(f.domain, g.domain)

		sections = append(sections, g)
	}

	return SecondOrderSections{domain: f.domain, sections: sections, gain: 1}
}

// Pow raises the section to an integer power, yielding a cascade of |e|
// copies. Negative exponents invert the section first.
func (f Biquad) Pow(e int) (SecondOrderSections, error) {
	return f.SecondOrderSections().Pow(e)
}

// PolynomialRatio widens the section to a transfer function.
func (f Biquad) PolynomialRatio() PolynomialRatio {
	var maxExp int

	switch f.domain {
	case Z:
		maxExp = 0
	case S:
		maxExp = 2
	}

	num := laurent.FromDescending([]float64{f.b0, f.b1, f.b2}, maxExp)
	den := laurent.FromDescending([]float64{1, f.a1, f.a2}, maxExp)

	return PolynomialRatio{domain: f.domain, num: num, den: den}
}

// ZeroPoleGain factors the section into its zeros, poles and gain.
func (f Biquad) ZeroPoleGain() (ZeroPoleGain, error) {
	return f.PolynomialRatio().ZeroPoleGain()
}

// SecondOrderSections wraps the section in a single-entry cascade with
// unit gain.
func (f Biquad) SecondOrderSections() SecondOrderSections {
	return SecondOrderSections{domain: f.domain, sections: []Biquad{f}, gain: 1}
}
