package form

// SecondOrderSections is a cascade of biquad sections plus one overall
// gain applied once to the product of all sections. The cascade order
// matters for numerical conditioning but not for the mathematical value.
type SecondOrderSections struct {
	domain   Domain
	sections []Biquad
	gain     float64
}

// NewSecondOrderSections builds a cascade from biquad sections and an
// overall gain. The slice is copied. The domain is taken from the
// sections; all sections must share it. For an empty cascade the domain
// comes from the options (default Z).
func NewSecondOrderSections(sections []Biquad, gain float64, opts ...Option) SecondOrderSections {
	cfg := applyOptions(opts)

	d := cfg.domain
	if len(sections) > 0 {
		d = sections[0].domain
	}

	out := make([]Biquad, len(sections))
	copy(out, sections)

	for _, s := range out {
		mustMatch(d, s.domain)
	}

	return SecondOrderSections{domain: d, sections: out, gain: gain}
}

// Domain returns the filter domain.
func (f SecondOrderSections) Domain() Domain { return f.domain }

// Sections returns a copy of the biquad cascade.
func (f SecondOrderSections) Sections() []Biquad {
	out := make([]Biquad, len(f.sections))
	copy(out, f.sections)

	return out
}

// NumSections returns the number of biquads in the cascade.
func (f SecondOrderSections) NumSections() int { return len(f.sections) }

// Gain returns the overall cascade gain.
func (f SecondOrderSections) Gain() float64 { return f.gain }

// Mul returns the cascade of f with the given filters: biquad sequences
// concatenate, gains multiply.
func (f SecondOrderSections) Mul(gs ...SecondOrderSections) SecondOrderSections {
	sections := f.Sections()
	gain := f.gain

	for _, g := range gs {
		mustMatch(f.domain, g.domain)

		sections = append(sections, g.sections...)
		gain *= g.gain
	}

	return SecondOrderSections{domain: f.domain, sections: sections, gain: gain}
}

// Scale returns f with its overall gain multiplied by g.
func (f SecondOrderSections) Scale(g float64) SecondOrderSections {
	return SecondOrderSections{domain: f.domain, sections: f.sections, gain: f.gain * g}
}

// Inv returns the multiplicative inverse: every section inverts and the
// gain becomes its reciprocal. A section with a zero leading numerator
// coefficient yields [ErrDenominatorZero].
func (f SecondOrderSections) Inv() (SecondOrderSections, error) {
	sections := make([]Biquad, len(f.sections))

	for i, s := range f.sections {
		inv, err := s.Inv()
		if err != nil {
			return SecondOrderSections{}, err
		}

		sections[i] = inv
	}

	return SecondOrderSections{domain: f.domain, sections: sections, gain: 1 / f.gain}, nil
}

// Pow raises the cascade to an integer power by repeating the (possibly
// inverted) biquad sequence |e| times and raising the gain accordingly.
func (f SecondOrderSections) Pow(e int) (SecondOrderSections, error) {
	base := f

	if e < 0 {
		inv, err := f.Inv()
		if err != nil {
			return SecondOrderSections{}, err
		}

		base, e = inv, -e
	}

	sections := make([]Biquad, 0, e*len(base.sections))
	gain := 1.0

	for range e {
		sections = append(sections, base.sections...)
		gain *= base.gain
	}

	return SecondOrderSections{domain: f.domain, sections: sections, gain: gain}, nil
}

// Biquad narrows the cascade to a single section, folding the overall
// gain into its numerator. Cascades with more than one section yield
// [ErrSingleSectionOnly].
func (f SecondOrderSections) Biquad() (Biquad, error) {
	if len(f.sections) != 1 {
		return Biquad{}, ErrSingleSectionOnly
	}

	return f.sections[0].Scale(f.gain), nil
}

// PolynomialRatio multiplies out the cascade into a single transfer
// function scaled by the overall gain.
func (f SecondOrderSections) PolynomialRatio() PolynomialRatio {
	out := identityRatio(f.domain)
	for _, s := range f.sections {
		out = out.Mul(s.PolynomialRatio())
	}

	return out.Scale(f.gain)
}

// identityRatio is the unit transfer function 1/1.
func identityRatio(d Domain) PolynomialRatio {
	r, err := NewPolynomialRatio([]float64{1}, []float64{1}, WithDomain(d))
	if err != nil {
		panic("form: identity ratio construction failed")
	}

	return r
}

// ZeroPoleGain decomposes every biquad into its zeros, poles and gain and
// concatenates them, multiplying the per-section gains into the cascade
// gain.
func (f SecondOrderSections) ZeroPoleGain() (ZeroPoleGain, error) {
	zeros := make([]complex128, 0, 2*len(f.sections))
	poles := make([]complex128, 0, 2*len(f.sections))
	gain := f.gain

	for _, s := range f.sections {
		zpk, err := s.ZeroPoleGain()
		if err != nil {
			return ZeroPoleGain{}, err
		}

		zeros = append(zeros, zpk.zeros...)
		poles = append(poles, zpk.poles...)
		gain *= zpk.gain
	}

	return ZeroPoleGain{domain: f.domain, zeros: zeros, poles: poles, gain: gain}, nil
}
