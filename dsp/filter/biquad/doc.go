// Package biquad runs discrete-time filters expressed as cascades of
// second-order sections.
//
// The package holds the runtime only: [Section] and [Chain] process
// sample streams in transposed direct form II, and the response helpers
// evaluate magnitude, phase and impulse behaviour of a running cascade.
// The algebra that produces section coefficients lives in
// dsp/filter/form; designs producing those representations live in
// dsp/filter/design. [FromSections] bridges a designed cascade into a
// runnable Chain.
package biquad
