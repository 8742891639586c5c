package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/form"
)

var (
	// ErrInvalidFrequency is returned when a corner frequency is outside
	// its valid range.
	ErrInvalidFrequency = errors.New("design: corner frequency out of range")

	// ErrAnalogInput is returned when a transform that discretizes a
	// filter receives one that is already discrete.
	ErrAnalogInput = errors.New("design: bilinear transform requires a continuous-time (s domain) filter")
)

// Lowpass scales an analog lowpass prototype so its corner frequency moves
// from 1 rad/s to w rad/s.
func Lowpass(proto form.ZeroPoleGain, w float64) (form.ZeroPoleGain, error) {
	if w <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidFrequency
	}

	zeros := proto.Zeros()
	poles := proto.Poles()
	cw := complex(w, 0)

	for i := range zeros {
		zeros[i] *= cw
	}
	for i := range poles {
		poles[i] *= cw
	}

	gain := proto.Gain() * math.Pow(w, float64(len(poles)-len(zeros)))

	return form.NewZeroPoleGain(zeros, poles, gain, form.WithDomain(proto.Domain())), nil
}

// Highpass turns an analog lowpass prototype into a highpass filter with
// corner frequency w rad/s by substituting s -> w/s.
func Highpass(proto form.ZeroPoleGain, w float64) (form.ZeroPoleGain, error) {
	if w <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidFrequency
	}

	protoZeros := proto.Zeros()
	poles := proto.Poles()
	cw := complex(w, 0)

	num := complex(1, 0)
	for _, z := range protoZeros {
		num *= -z
	}
	den := complex(1, 0)
	for _, p := range poles {
		den *= -p
	}

	zeros := make([]complex128, len(poles))
	for i, z := range protoZeros {
		zeros[i] = cw / z
	}
	for i := range poles {
		poles[i] = cw / poles[i]
	}

	gain := proto.Gain() * real(num/den)

	return form.NewZeroPoleGain(zeros, poles, gain, form.WithDomain(proto.Domain())), nil
}

// Bilinear discretizes a continuous-time filter at sample rate fs using the
// bilinear transform s = 2*fs*(z-1)/(z+1). Zeros at analog infinity map to
// z = -1.
func Bilinear(f form.ZeroPoleGain, fs float64) (form.ZeroPoleGain, error) {
	if f.Domain() != form.S {
		return form.ZeroPoleGain{}, ErrAnalogInput
	}
	if fs <= 0 {
		return form.ZeroPoleGain{}, ErrInvalidFrequency
	}

	zeros := f.Zeros()
	poles := f.Poles()
	if len(zeros) > len(poles) {
		return form.ZeroPoleGain{}, form.ErrTooManyZeros
	}

	k := complex(2*fs, 0)

	num := complex(1, 0)
	for i, z := range zeros {
		num *= k - z
		zeros[i] = (k + z) / (k - z)
	}
	den := complex(1, 0)
	for i, p := range poles {
		den *= k - p
		poles[i] = (k + p) / (k - p)
	}

	for len(zeros) < len(poles) {
		zeros = append(zeros, complex(-1, 0))
	}

	gain := f.Gain() * real(num/den)

	return form.NewZeroPoleGain(zeros, poles, gain), nil
}

// DigitalLowpass designs a discrete-time lowpass filter from an analog
// prototype. The corner frequency wn is normalized to the Nyquist
// frequency, so it must lie strictly between 0 and 1.
func DigitalLowpass(proto form.ZeroPoleGain, wn float64) (form.ZeroPoleGain, error) {
	w, err := prewarp(wn)
	if err != nil {
		return form.ZeroPoleGain{}, err
	}

	analog, err := Lowpass(proto, w)
	if err != nil {
		return form.ZeroPoleGain{}, err
	}

	return Bilinear(analog, 2)
}

// DigitalHighpass designs a discrete-time highpass filter from an analog
// prototype. The corner frequency wn is normalized to the Nyquist
// frequency, so it must lie strictly between 0 and 1.
func DigitalHighpass(proto form.ZeroPoleGain, wn float64) (form.ZeroPoleGain, error) {
	w, err := prewarp(wn)
	if err != nil {
		return form.ZeroPoleGain{}, err
	}

	analog, err := Highpass(proto, w)
	if err != nil {
		return form.ZeroPoleGain{}, err
	}

	return Bilinear(analog, 2)
}

// prewarp maps a normalized digital corner frequency to the analog
// frequency that the bilinear transform at fs = 2 warps back onto it.
func prewarp(wn float64) (float64, error) {
	if wn <= 0 || wn >= 1 {
		return 0, ErrInvalidFrequency
	}

	return 4 * math.Tan(math.Pi*wn/2), nil
}
