// Package spectrum computes magnitude and phase spectra from impulse
// responses and complex FFT bins. It backs the frequency-response helpers
// of the filter runtime.
package spectrum
