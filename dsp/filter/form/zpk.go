package form

import (
	"github.com/cwbudde/algo-iir/internal/laurent"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// ZeroPoleGain is a filter expressed as zero locations, pole locations
// and a scalar gain. Multiplicities are represented by repeated entries;
// no ordering is imposed. Non-real zeros and poles are expected to occur
// in conjugate pairs for the filter to be real-valued, but this is only
// enforced by the second-order section grouping, not by the type.
type ZeroPoleGain struct {
	domain Domain
	zeros  []complex128
	poles  []complex128
	gain   float64
}

// NewZeroPoleGain builds a zero/pole/gain filter. The slices are copied.
// The default domain is Z.
func NewZeroPoleGain(zeros, poles []complex128, gain float64, opts ...Option) ZeroPoleGain {
	cfg := applyOptions(opts)

	return ZeroPoleGain{
		domain: cfg.domain,
		zeros:  cloneComplex(zeros),
		poles:  cloneComplex(poles),
		gain:   gain,
	}
}

func cloneComplex(xs []complex128) []complex128 {
	if len(xs) == 0 {
		return nil
	}

	out := make([]complex128, len(xs))
	copy(out, xs)

	return out
}

// Domain returns the filter domain.
func (f ZeroPoleGain) Domain() Domain { return f.domain }

// Zeros returns a copy of the zero locations.
func (f ZeroPoleGain) Zeros() []complex128 { return cloneComplex(f.zeros) }

// Poles returns a copy of the pole locations.
func (f ZeroPoleGain) Poles() []complex128 { return cloneComplex(f.poles) }

// Gain returns the scalar gain.
func (f ZeroPoleGain) Gain() float64 { return f.gain }

// Mul returns the cascade of f with the given filters: zero and pole
// sequences concatenate, gains multiply. This composition is exact.
func (f ZeroPoleGain) Mul(gs ...ZeroPoleGain) ZeroPoleGain {
	zeros := cloneComplex(f.zeros)
	poles := cloneComplex(f.poles)
	gain := f.gain

	for _, g := range gs {
		mustMatch(f.domain, g.domain)

		zeros = append(zeros, g.zeros...)
		poles = append(poles, g.poles...)
		gain *= g.gain
	}

	return ZeroPoleGain{domain: f.domain, zeros: zeros, poles: poles, gain: gain}
}

// Scale returns f with its gain multiplied by g.
func (f ZeroPoleGain) Scale(g float64) ZeroPoleGain {
	return ZeroPoleGain{domain: f.domain, zeros: f.zeros, poles: f.poles, gain: f.gain * g}
}

// Inv returns the multiplicative inverse: zeros and poles swap roles and
// the gain becomes its reciprocal.
func (f ZeroPoleGain) Inv() ZeroPoleGain {
	return ZeroPoleGain{domain: f.domain, zeros: f.poles, poles: f.zeros, gain: 1 / f.gain}
}

// Pow raises f to an integer power by repeating the zero and pole
// sequences. Negative exponents invert first.
func (f ZeroPoleGain) Pow(e int) ZeroPoleGain {
	base := f
	if e < 0 {
		base, e = f.Inv(), -e
	}

	zeros := make([]complex128, 0, e*len(base.zeros))
	poles := make([]complex128, 0, e*len(base.poles))
	gain := 1.0

	for range e {
		zeros = append(zeros, base.zeros...)
		poles = append(poles, base.poles...)
		gain *= base.gain
	}

	return ZeroPoleGain{domain: f.domain, zeros: zeros, poles: poles, gain: gain}
}

// PolynomialRatio expands the factored form into a transfer function:
// numerator = gain times the monic expansion of the zeros, denominator =
// the monic expansion of the poles. The expansions are real for
// conjugate-paired roots; the real part is taken to discard residual
// numerical imaginary noise. Callers are responsible for conjugate
// symmetry.
func (f ZeroPoleGain) PolynomialRatio() PolynomialRatio {
	num := realPolynomial(polyroot.FromRoots(f.zeros)).Scale(f.gain)
	den := realPolynomial(polyroot.FromRoots(f.poles))

	return normalizeRatio(f.domain, num, den)
}

// realPolynomial converts descending complex coefficients into an
// ordinary polynomial over the real parts, with the constant term at
// exponent zero.
func realPolynomial(desc []complex128) laurent.Polynomial {
	re := make([]float64, len(desc))
	for i, c := range desc {
		re[i] = real(c)
	}

	return laurent.FromDescending(re, len(desc)-1)
}

// Biquad narrows the filter to a single second-order section via its
// transfer function.
func (f ZeroPoleGain) Biquad() (Biquad, error) {
	return f.PolynomialRatio().Biquad()
}
