package biquad

// Chain runs second-order sections in series, with a single gain applied
// ahead of the first section. It is the runtime counterpart of a
// form.SecondOrderSections value; use FromSections to build one from a
// designed cascade.
type Chain struct {
	sections []Section
	gain     float64
}

// ChainOption configures a Chain at construction time.
type ChainOption func(*Chain)

// WithGain sets the input gain of the cascade. The default is 1.
func WithGain(g float64) ChainOption {
	return func(c *Chain) { c.gain = g }
}

// NewChain builds a cascade with one Section per coefficient set, all
// starting from zero state.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     1,
	}
	for i, cf := range coeffs {
		c.sections[i].Coefficients = cf
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ProcessSample scales the input by the chain gain and runs it through
// every section in order.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through the whole cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset zeroes the state of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the filter order of the cascade. Full biquad sections
// contribute two; a degenerate first-order section contributes one.
func (c *Chain) Order() int {
	order := 0
	for i := range c.sections {
		if s := &c.sections[i]; s.B2 == 0 && s.A2 == 0 {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// NumSections returns the number of sections in the cascade.
func (c *Chain) NumSections() int { return len(c.sections) }

// Gain returns the input gain of the cascade.
func (c *Chain) Gain() float64 { return c.gain }

// Section returns the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State snapshots the state registers of every section.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores a snapshot taken by State. The snapshot must cover
// exactly NumSections sections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
