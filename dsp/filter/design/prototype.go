package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/form"
)

var (
	// ErrInvalidOrder is returned when the requested filter order is not
	// a positive integer.
	ErrInvalidOrder = errors.New("design: filter order must be positive")

	// ErrInvalidRipple is returned when a Chebyshev passband ripple is not
	// positive.
	ErrInvalidRipple = errors.New("design: passband ripple must be positive")
)

// Butterworth returns an analog lowpass Butterworth prototype of the given
// order with unit corner frequency. The response is maximally flat in the
// passband.
func Butterworth(order int) (form.ZeroPoleGain, error) {
	if order <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidOrder
	}

	poles := make([]complex128, 0, order)
	for k := 1; k <= order/2; k++ {
		theta := math.Pi * float64(2*k-1) / float64(2*order)
		p := complex(-math.Sin(theta), math.Cos(theta))
		poles = append(poles, p, complex(real(p), -imag(p)))
	}

	if order%2 == 1 {
		poles = append(poles, complex(-1, 0))
	}

	return form.NewZeroPoleGain(nil, poles, 1, form.WithDomain(form.S)), nil
}

// Chebyshev1 returns an analog lowpass Chebyshev type I prototype of the
// given order with unit corner frequency and the given passband ripple in
// decibels.
func Chebyshev1(order int, rippleDB float64) (form.ZeroPoleGain, error) {
	if order <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidOrder
	}
	if rippleDB <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidRipple
	}

	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)
	sh := math.Sinh(mu)
	ch := math.Cosh(mu)

	gain := 1.0
	poles := make([]complex128, 0, order)
	for k := 1; k <= order/2; k++ {
		theta := math.Pi * float64(2*k-1) / float64(2*order)
		p := complex(-sh*math.Sin(theta), ch*math.Cos(theta))
		poles = append(poles, p, complex(real(p), -imag(p)))
		gain *= real(p)*real(p) + imag(p)*imag(p)
	}

	if order%2 == 1 {
		poles = append(poles, complex(-sh, 0))
		gain *= sh
	} else {
		gain /= math.Sqrt(1 + eps*eps)
	}

	return form.NewZeroPoleGain(nil, poles, gain, form.WithDomain(form.S)), nil
}
