// Package form models linear time-invariant filters through four
// equivalent algebraic representations and converts losslessly between
// them.
//
// A filter can be expressed as [ZeroPoleGain] (root locations plus a
// scalar gain), [PolynomialRatio] (a transfer function), a single
// [Biquad] section, or [SecondOrderSections] (a cascade of biquads with
// one overall gain). Every representation carries a [Domain] tag: Z for
// discrete-time filters over the unit-delay variable, S for
// continuous-time filters over the Laplace variable. Conversions and
// operators are defined only between values of the same domain; mixing
// domains is a programming error and panics.
//
// All values are immutable: operators (cascade multiplication, inversion,
// integer powers, scalar gain) and conversions always produce new values.
//
// Conversions route through the two hub representations. ZeroPoleGain and
// PolynomialRatio convert directly to each other (via root finding and
// root expansion); Biquad and SecondOrderSections convert through them.
// The ZeroPoleGain to SecondOrderSections conversion pairs poles with
// their closest zeros and groups complex conjugates so that every section
// has real coefficients; poles closest to the unit circle are paired
// first to improve the numerical conditioning of the cascade.
package form
