// Package design builds classic IIR filters as zero/pole/gain values.
//
// Analog lowpass prototypes ([Butterworth], [Chebyshev1]) are produced in
// the continuous-time s domain with unit corner frequency. They are shaped
// with the frequency transforms ([Lowpass], [Highpass]) and discretized
// with the bilinear transform ([Bilinear]). [DigitalLowpass] and
// [DigitalHighpass] combine prewarping, transform and discretization for
// the common case of a normalized corner frequency.
//
// The results are form.ZeroPoleGain values, so they compose with the rest
// of the representation algebra and convert to cascaded second-order
// sections for processing.
package design
