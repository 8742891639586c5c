package form

import "errors"

var (
	// ErrDenominatorZero reports a zero leading denominator coefficient
	// during transfer-function normalization, or an all-zero denominator.
	ErrDenominatorZero = errors.New("form: filter must have a non-zero leading denominator coefficient")

	// ErrConjugateMismatch reports a non-real zero or pole without a
	// matching conjugate of equal multiplicity during second-order
	// section grouping.
	ErrConjugateMismatch = errors.New("form: complex zeros/poles could not be matched to their conjugates")

	// ErrTooManyZeros reports a ZeroPoleGain with more zeros than poles
	// handed to the second-order section conversion.
	ErrTooManyZeros = errors.New("form: filter must not have more zeros than poles")

	// ErrOrderTooHigh reports a transfer function of order greater than
	// two narrowed to a single biquad.
	ErrOrderTooHigh = errors.New("form: cannot convert a filter of order > 2 to a biquad")

	// ErrDenominatorNotUnity reports a biquad conversion from a transfer
	// function whose aligned leading denominator coefficient is not 1.
	ErrDenominatorNotUnity = errors.New("form: denominator leading coefficient must be exactly one")

	// ErrSingleSectionOnly reports a multi-section cascade narrowed to a
	// single biquad.
	ErrSingleSectionOnly = errors.New("form: only a single second order section may be converted to a biquad")
)
