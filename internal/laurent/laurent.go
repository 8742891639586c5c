// Package laurent implements a minimal Laurent polynomial over float64
// coefficients: a coefficient slice plus a (possibly negative) minimum
// exponent. It is the computational primitive behind transfer-function
// arithmetic and is deliberately small: addition, multiplication, scalar
// scaling, exponent shifting and integer powers.
package laurent

// Polynomial is an immutable Laurent polynomial. The coefficient at
// exponent min+i is coeffs[i]; both ends are kept trimmed so that a
// non-zero polynomial has non-zero first and last coefficients. The zero
// polynomial has an empty coefficient slice.
type Polynomial struct {
	coeffs []float64
	min    int
}

// New builds a polynomial from ascending coefficients starting at exponent
// minExp. Leading and trailing zeros are trimmed; the input slice is copied.
func New(coeffs []float64, minExp int) Polynomial {
	lo := 0
	for lo < len(coeffs) && coeffs[lo] == 0 {
		lo++
	}

	hi := len(coeffs)
	for hi > lo && coeffs[hi-1] == 0 {
		hi--
	}

	if lo == hi {
		return Polynomial{}
	}

	out := make([]float64, hi-lo)
	copy(out, coeffs[lo:hi])

	return Polynomial{coeffs: out, min: minExp + lo}
}

// FromDescending builds a polynomial from highest-power-first coefficients
// where desc[0] has exponent maxExp.
func FromDescending(desc []float64, maxExp int) Polynomial {
	asc := make([]float64, len(desc))
	for i, c := range desc {
		asc[len(desc)-1-i] = c
	}

	return New(asc, maxExp-len(desc)+1)
}

// Constant returns the constant polynomial c.
func Constant(c float64) Polynomial {
	return New([]float64{c}, 0)
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// MinExp returns the smallest exponent with a non-zero coefficient.
// It is 0 for the zero polynomial.
func (p Polynomial) MinExp() int {
	if p.IsZero() {
		return 0
	}

	return p.min
}

// MaxExp returns the largest exponent with a non-zero coefficient.
// It is 0 for the zero polynomial.
func (p Polynomial) MaxExp() int {
	if p.IsZero() {
		return 0
	}

	return p.min + len(p.coeffs) - 1
}

// Span returns the number of coefficient slots between MinExp and MaxExp
// inclusive, or 0 for the zero polynomial.
func (p Polynomial) Span() int { return len(p.coeffs) }

// Coeff returns the coefficient at the given exponent, zero outside the
// stored range.
func (p Polynomial) Coeff(exp int) float64 {
	i := exp - p.min
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Ascending returns a copy of the coefficients from MinExp upward.
func (p Polynomial) Ascending() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Descending returns a copy of the coefficients from MaxExp downward.
func (p Polynomial) Descending() []float64 {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[len(p.coeffs)-1-i] = c
	}

	return out
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	if p.IsZero() {
		return q
	}

	if q.IsZero() {
		return p
	}

	lo := min(p.min, q.min)
	hi := max(p.MaxExp(), q.MaxExp())

	out := make([]float64, hi-lo+1)
	for i, c := range p.coeffs {
		out[p.min+i-lo] += c
	}

	for i, c := range q.coeffs {
		out[q.min+i-lo] += c
	}

	return New(out, lo)
}

// Mul returns p * q via coefficient convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}

	out := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return New(out, p.min+q.min)
}

// Scale returns p with every coefficient multiplied by s.
func (p Polynomial) Scale(s float64) Polynomial {
	if s == 0 || p.IsZero() {
		return Polynomial{}
	}

	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * s
	}

	return Polynomial{coeffs: out, min: p.min}
}

// Div returns p with every coefficient divided by s. Division (rather
// than multiplication by a reciprocal) keeps c/c exactly 1.
func (p Polynomial) Div(s float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c / s
	}

	return Polynomial{coeffs: out, min: p.min}
}

// Shift returns p multiplied by x^k, i.e. all exponents moved by k.
func (p Polynomial) Shift(k int) Polynomial {
	if p.IsZero() {
		return p
	}

	return Polynomial{coeffs: p.coeffs, min: p.min + k}
}

// Pow returns p raised to a non-negative integer power by repeated
// multiplication. Pow(0) is the constant 1.
func (p Polynomial) Pow(e int) Polynomial {
	if e < 0 {
		panic("laurent: negative exponent")
	}

	out := Constant(1)
	for range e {
		out = out.Mul(p)
	}

	return out
}

// Eval evaluates p at x using Horner's method over the descending
// coefficients, then applies the exponent offset x^MinExp.
func (p Polynomial) Eval(x complex128) complex128 {
	if p.IsZero() {
		return 0
	}

	v := complex(0, 0)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		v = v*x + complex(p.coeffs[i], 0)
	}

	for k := p.min; k > 0; k-- {
		v *= x
	}

	for k := p.min; k < 0; k++ {
		v /= x
	}

	return v
}
