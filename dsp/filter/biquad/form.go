package biquad

import (
	"errors"

	"github.com/cwbudde/algo-iir/dsp/filter/form"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// ErrAnalogFilter is returned when a continuous-time (s domain)
// representation is handed to the discrete-time runtime.
var ErrAnalogFilter = errors.New("biquad: only discrete-time (z domain) filters can be processed")

// CoefficientsOf converts a discrete-time form.Biquad into runtime
// Coefficients.
func CoefficientsOf(f form.Biquad) (Coefficients, error) {
	if f.Domain() != form.Z {
		return Coefficients{}, ErrAnalogFilter
	}

	return Coefficients{
		B0: f.B0(), B1: f.B1(), B2: f.B2(),
		A1: f.A1(), A2: f.A2(),
	}, nil
}

// FromSections builds a runtime Chain from a discrete-time cascade. The
// cascade gain is applied to the chain input, matching the single overall
// gain of the representation.
func FromSections(f form.SecondOrderSections) (*Chain, error) {
	if f.Domain() != form.Z {
		return nil, ErrAnalogFilter
	}

	sections := f.Sections()

	coeffs := make([]Coefficients, len(sections))
	for i, s := range sections {
		c, err := CoefficientsOf(s)
		if err != nil {
			return nil, err
		}

		coeffs[i] = c
	}

	return NewChain(coeffs, WithGain(f.Gain())), nil
}

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// PoleZeroPair returns the z-plane poles and zeros of the section, the
// poles from 1 + A1*z^-1 + A2*z^-2 and the zeros from
// B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: rootPair(1, c.A1, c.A2),
		Zeros: rootPair(c.B0, c.B1, c.B2),
	}
}

// PoleZeroPairs returns one pole/zero pair entry per chain section.
func (c *Chain) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].PoleZeroPair()
	}

	return out
}

func rootPair(a, b, c float64) [2]complex128 {
	roots, err := polyroot.Roots([]float64{a, b, c})
	if err != nil {
		return [2]complex128{}
	}

	var out [2]complex128
	copy(out[:], roots)

	return out
}
