package biquad

// Coefficients is one normalized second-order section of a discrete-time
// filter. The constant denominator term a0 is fixed at 1, the same
// convention form.Biquad uses, so five values describe a section:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// A section with B2 == 0 and A2 == 0 degenerates to first order.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section applies one second-order section to a sample stream. It uses
// the transposed direct form II structure, which carries two state
// registers per section and sums products of current input and output
// into them:
//
//	y    = B0*x + s1
//	s1'  = B1*x + s2 - A1*y
//	s2'  = B2*x - A2*y
type Section struct {
	Coefficients

	s1, s2 float64
}

// NewSection returns a Section over the given coefficients with zero
// initial state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample advances the section by one input sample and returns the
// output sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.s1
	s.s1 = s.B1*x + s.s2 - s.A1*y
	s.s2 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place. Coefficients and state are kept in
// locals across the loop so the compiler can hold them in registers.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2, a1, a2 := s.B0, s.B1, s.B2, s.A1, s.A2
	t1, t2 := s.s1, s.s2

	for i, x := range buf {
		y := b0*x + t1
		t1 = b1*x + t2 - a1*y
		t2 = b2*x - a2*y
		buf[i] = y
	}

	s.s1, s.s2 = t1, t2
}

// ProcessBlockTo filters src into dst without touching src. dst must be
// at least as long as src.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	b0, b1, b2, a1, a2 := s.B0, s.B1, s.B2, s.A1, s.A2
	t1, t2 := s.s1, s.s2

	dst = dst[:len(src)]
	for i, x := range src {
		y := b0*x + t1
		t1 = b1*x + t2 - a1*y
		t2 = b2*x - a2*y
		dst[i] = y
	}

	s.s1, s.s2 = t1, t2
}

// Reset zeroes the state registers.
func (s *Section) Reset() {
	s.s1, s.s2 = 0, 0
}

// State returns the two state registers as [s1, s2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.s1, s.s2}
}

// SetState overwrites the state registers with a snapshot taken by State.
func (s *Section) SetState(state [2]float64) {
	s.s1, s.s2 = state[0], state[1]
}
