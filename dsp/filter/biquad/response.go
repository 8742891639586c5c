package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/spectrum"
)

// Response evaluates the transfer function of the section on the unit
// circle at the given frequency (Hz) for the given sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))
	z2 := z * z

	num := complex(c.B0, 0) + complex(c.B1, 0)*z + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z + complex(c.A2, 0)*z2

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic, folding
// the unit-circle evaluation into a polynomial in 2*cos(w).
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := (c.B0-c.B2)*(c.B0-c.B2) + c.B1*c.B1 + (c.B1*(c.B0+c.B2)+c.B0*c.B2*cw)*cw
	den := (1-c.A2)*(1-c.A2) + c.A1*c.A1 + (c.A1*(1+c.A2)+c.A2*cw)*cw

	return num / den
}

// MagnitudeDB returns the magnitude response in decibels.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response evaluates the cascade transfer function, the gain times the
// product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude response in decibels.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// impulse collects n output samples of process driven by a unit impulse.
func impulse(n int, process func(float64) float64) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	ir[0] = process(1)
	for i := 1; i < n; i++ {
		ir[i] = process(0)
	}

	return ir
}

// ImpulseResponse returns the first n samples of the impulse response.
// The section state is saved and restored around the measurement.
func (s *Section) ImpulseResponse(n int) []float64 {
	saved := s.State()
	s.Reset()
	ir := impulse(n, s.ProcessSample)
	s.SetState(saved)

	return ir
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response. The chain state is saved and restored around the measurement.
func (c *Chain) ImpulseResponse(n int) []float64 {
	saved := c.State()
	c.Reset()
	ir := impulse(n, c.ProcessSample)
	c.SetState(saved)

	return ir
}

// MagnitudeSpectrum returns the magnitude of the cascade frequency
// response at fftSize/2+1 uniformly spaced frequencies from DC to
// Nyquist, computed via the FFT of the impulse response. fftSize must be
// a power of two.
func (c *Chain) MagnitudeSpectrum(fftSize int) ([]float64, error) {
	return spectrum.FromImpulse(c.ImpulseResponse(fftSize), fftSize)
}
