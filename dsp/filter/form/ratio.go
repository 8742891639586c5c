package form

import (
	"github.com/cwbudde/algo-iir/internal/laurent"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// PolynomialRatio is a filter expressed as a ratio of two polynomials in
// the domain variable.
//
// In the Z domain the denominator is normalized so that its coefficient
// at the highest stored exponent is exactly 1 (the a0 of the usual b,a
// convention); in the S domain the ratio keeps its original scale.
type PolynomialRatio struct {
	domain Domain
	num    laurent.Polynomial
	den    laurent.Polynomial
}

// NewPolynomialRatio builds a transfer function from coefficient lists
// ordered highest power first. In the Z domain (the default) the lists
// follow the causal b,a convention, mapping to descending negative powers
// of z; in the S domain they map directly to descending powers of s.
//
// For the Z domain both lists are rescaled by a[0]; a zero a[0] yields
// [ErrDenominatorZero].
func NewPolynomialRatio(b, a []float64, opts ...Option) (PolynomialRatio, error) {
	cfg := applyOptions(opts)

	if len(a) == 0 {
		return PolynomialRatio{}, ErrDenominatorZero
	}

	var num, den laurent.Polynomial

	switch cfg.domain {
	case Z:
		if a[0] == 0 {
			return PolynomialRatio{}, ErrDenominatorZero
		}

		num = laurent.FromDescending(b, 0)
		den = laurent.FromDescending(a, 0)
	case S:
		num = laurent.FromDescending(b, len(b)-1)
		den = laurent.FromDescending(a, len(a)-1)
	}

	if den.IsZero() {
		return PolynomialRatio{}, ErrDenominatorZero
	}

	return normalizeRatio(cfg.domain, num, den), nil
}

// normalizeRatio applies the domain normalization to a non-zero
// denominator: Z-domain ratios are scaled so the denominator's leading
// (highest-exponent) coefficient is exactly 1, S-domain ratios keep their
// scale.
func normalizeRatio(d Domain, num, den laurent.Polynomial) PolynomialRatio {
	if d == Z {
		lead := den.Coeff(den.MaxExp())
		if lead != 1 {
			num = num.Div(lead)
			den = den.Div(lead)
		}
	}

	return PolynomialRatio{domain: d, num: num, den: den}
}

// Domain returns the filter domain.
func (f PolynomialRatio) Domain() Domain { return f.domain }

// CoefB returns the numerator coefficients ordered highest power first,
// aligned to the domain convention (padded with zeros toward the constant
// term where the stored exponent range does not reach it).
func (f PolynomialRatio) CoefB() []float64 { return coefSlice(f.num) }

// CoefA returns the denominator coefficients ordered highest power first.
func (f PolynomialRatio) CoefA() []float64 { return coefSlice(f.den) }

func coefSlice(p laurent.Polynomial) []float64 {
	if p.IsZero() {
		return []float64{0}
	}

	hi := max(p.MaxExp(), 0)
	lo := min(p.MinExp(), 0)

	out := make([]float64, hi-lo+1)
	for e := hi; e >= lo; e-- {
		out[hi-e] = p.Coeff(e)
	}

	return out
}

// Mul returns the cascade of f with the given filters: numerators and
// denominators multiply pointwise (coefficient convolution).
func (f PolynomialRatio) Mul(gs ...PolynomialRatio) PolynomialRatio {
	num, den := f.num, f.den
	for _, g := range gs {
		mustMatch(f.domain, g.domain)

		num = num.Mul(g.num)
		den = den.Mul(g.den)
	}

	return normalizeRatio(f.domain, num, den)
}

// Scale returns f with its numerator scaled by g.
func (f PolynomialRatio) Scale(g float64) PolynomialRatio {
	return PolynomialRatio{domain: f.domain, num: f.num.Scale(g), den: f.den}
}

// Inv returns the multiplicative inverse: numerator and denominator swap.
// A zero numerator cannot become a denominator and yields
// [ErrDenominatorZero].
func (f PolynomialRatio) Inv() (PolynomialRatio, error) {
	if f.num.IsZero() {
		return PolynomialRatio{}, ErrDenominatorZero
	}

	return normalizeRatio(f.domain, f.den, f.num), nil
}

// Pow raises f to an integer power. Negative exponents invert first.
func (f PolynomialRatio) Pow(e int) (PolynomialRatio, error) {
	base := f

	if e < 0 {
		inv, err := f.Inv()
		if err != nil {
			return PolynomialRatio{}, err
		}

		base, e = inv, -e
	}

	return normalizeRatio(f.domain, base.num.Pow(e), base.den.Pow(e)), nil
}

// ZeroPoleGain factors the transfer function into zeros, poles and gain.
// Numerator and denominator are first shifted by a common power of the
// variable so that both have non-negative exponents with common factors
// cancelled; the gain is the ratio of the highest-order coefficients.
func (f PolynomialRatio) ZeroPoleGain() (ZeroPoleGain, error) {
	shift := min(f.num.MinExp(), f.den.MinExp())
	den := f.den.Shift(-shift)

	poles, err := polyroot.Roots(descendingToConstant(den))
	if err != nil {
		return ZeroPoleGain{}, err
	}

	if f.num.IsZero() {
		return ZeroPoleGain{domain: f.domain, poles: poles, gain: 0}, nil
	}

	num := f.num.Shift(-shift)

	zeros, err := polyroot.Roots(descendingToConstant(num))
	if err != nil {
		return ZeroPoleGain{}, err
	}

	gain := num.Coeff(num.MaxExp()) / den.Coeff(den.MaxExp())

	return ZeroPoleGain{domain: f.domain, zeros: zeros, poles: poles, gain: gain}, nil
}

// descendingToConstant returns the coefficients of p from its maximum
// exponent all the way down to the constant term, so that roots at the
// origin are preserved. p must not have negative exponents.
func descendingToConstant(p laurent.Polynomial) []float64 {
	hi := p.MaxExp()

	out := make([]float64, hi+1)
	for e := hi; e >= 0; e-- {
		out[hi-e] = p.Coeff(e)
	}

	return out
}

// Biquad narrows the transfer function to a single second-order section.
// It fails with [ErrOrderTooHigh] when numerator and denominator together
// span more than three coefficient slots, and with
// [ErrDenominatorNotUnity] when the denominator coefficient at the
// aligned maximum exponent is not exactly 1.
func (f PolynomialRatio) Biquad() (Biquad, error) {
	xmax := f.den.MaxExp()
	xmin := f.den.MinExp()

	if !f.num.IsZero() {
		xmax = max(xmax, f.num.MaxExp())
		xmin = min(xmin, f.num.MinExp())
	}

	if xmax-xmin+1 > 3 {
		return Biquad{}, ErrOrderTooHigh
	}

	if f.den.Coeff(xmax) != 1 {
		return Biquad{}, ErrDenominatorNotUnity
	}

	return Biquad{
		domain: f.domain,
		b0:     f.num.Coeff(xmax),
		b1:     f.num.Coeff(xmax - 1),
		b2:     f.num.Coeff(xmax - 2),
		a1:     f.den.Coeff(xmax - 1),
		a2:     f.den.Coeff(xmax - 2),
	}, nil
}

// SecondOrderSections converts the transfer function to a cascade of
// biquads by factoring it into zeros and poles first.
func (f PolynomialRatio) SecondOrderSections() (SecondOrderSections, error) {
	zpk, err := f.ZeroPoleGain()
	if err != nil {
		return SecondOrderSections{}, err
	}

	return zpk.SecondOrderSections()
}
