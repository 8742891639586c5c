package form

// Domain identifies the variable a filter representation is expressed in.
type Domain uint8

const (
	// Z marks a discrete-time filter, a rational function of the
	// unit-delay variable z.
	Z Domain = iota
	// S marks a continuous-time filter, a rational function of the
	// Laplace variable s.
	S
)

// String returns the conventional variable name for the domain.
func (d Domain) String() string {
	switch d {
	case Z:
		return "z"
	case S:
		return "s"
	default:
		return "invalid"
	}
}

// config holds construction options shared by the representation
// constructors.
type config struct {
	domain Domain
	gain   float64
}

// Option configures a representation constructor.
type Option func(*config)

// WithDomain selects the filter domain. The default is Z, matching the
// common digital-filter convention.
func WithDomain(d Domain) Option {
	return func(cfg *config) { cfg.domain = d }
}

// WithGain sets an extra gain factor applied to the numerator during
// construction. Default is 1. It is honored by [NormalizedBiquad].
func WithGain(g float64) Option {
	return func(cfg *config) { cfg.gain = g }
}

func applyOptions(opts []Option) config {
	cfg := config{domain: Z, gain: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// mustMatch panics when two values of different domains are combined.
// Mixing domains is a programming error, not a recoverable condition.
func mustMatch(a, b Domain) {
	if a != b {
		panic("form: mixed filter domains (z vs s)")
	}
}
