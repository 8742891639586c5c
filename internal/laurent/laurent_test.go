package laurent

import (
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestNewTrimsZeros(t *testing.T) {
	p := New([]float64{0, 0, 1, 2, 0}, -3)

	if p.MinExp() != -1 {
		t.Errorf("MinExp: got %d, want -1", p.MinExp())
	}
	if p.MaxExp() != 0 {
		t.Errorf("MaxExp: got %d, want 0", p.MaxExp())
	}
	if !equalSlices(p.Ascending(), []float64{1, 2}) {
		t.Errorf("Ascending: got %v", p.Ascending())
	}
}

func TestNewAllZerosIsZero(t *testing.T) {
	p := New([]float64{0, 0, 0}, 5)

	if !p.IsZero() {
		t.Fatal("expected zero polynomial")
	}
	if p.MinExp() != 0 || p.MaxExp() != 0 || p.Span() != 0 {
		t.Errorf("zero polynomial exponents: min=%d max=%d span=%d", p.MinExp(), p.MaxExp(), p.Span())
	}
}

func TestFromDescending(t *testing.T) {
	// 3x^2 + 2x + 1
	p := FromDescending([]float64{3, 2, 1}, 2)

	if p.MinExp() != 0 || p.MaxExp() != 2 {
		t.Fatalf("exponents: min=%d max=%d", p.MinExp(), p.MaxExp())
	}
	if !equalSlices(p.Descending(), []float64{3, 2, 1}) {
		t.Errorf("Descending: got %v", p.Descending())
	}

	// 2z^-1 + z^-2 in the z^-1 convention: desc[0] at exponent 0.
	q := FromDescending([]float64{0, 2, 1}, 0)
	if q.MinExp() != -2 || q.MaxExp() != -1 {
		t.Errorf("exponents: min=%d max=%d", q.MinExp(), q.MaxExp())
	}
}

func TestCoeffOutsideRange(t *testing.T) {
	p := New([]float64{1, 2}, -1)

	if p.Coeff(-1) != 1 || p.Coeff(0) != 2 {
		t.Errorf("stored coefficients wrong: %v %v", p.Coeff(-1), p.Coeff(0))
	}
	if p.Coeff(-2) != 0 || p.Coeff(1) != 0 {
		t.Errorf("expected zero outside range")
	}
}

func TestAddOverlapAndCancellation(t *testing.T) {
	p := New([]float64{1, 2}, 0)   // 1 + 2x
	q := New([]float64{3, -2}, 0)  // 3 - 2x

	r := p.Add(q)
	if r.MinExp() != 0 || r.MaxExp() != 0 {
		t.Fatalf("expected constant, got min=%d max=%d", r.MinExp(), r.MaxExp())
	}
	if !almostEqual(r.Coeff(0), 4) {
		t.Errorf("Coeff(0): got %v, want 4", r.Coeff(0))
	}
}

func TestAddDisjointExponents(t *testing.T) {
	p := New([]float64{1}, -2)
	q := New([]float64{5}, 3)

	r := p.Add(q)
	if r.MinExp() != -2 || r.MaxExp() != 3 {
		t.Fatalf("exponents: min=%d max=%d", r.MinExp(), r.MaxExp())
	}
	if r.Coeff(-2) != 1 || r.Coeff(3) != 5 || r.Coeff(0) != 0 {
		t.Errorf("coefficients wrong: %v", r.Ascending())
	}
}

func TestMulConvolution(t *testing.T) {
	// (1 + x)(1 - x) = 1 - x^2
	p := New([]float64{1, 1}, 0)
	q := New([]float64{1, -1}, 0)

	r := p.Mul(q)
	if !equalSlices(r.Ascending(), []float64{1, 0, -1}) {
		t.Errorf("Ascending: got %v", r.Ascending())
	}
}

func TestMulAddsExponents(t *testing.T) {
	p := New([]float64{2}, -3)
	q := New([]float64{3}, 5)

	r := p.Mul(q)
	if r.MinExp() != 2 || r.Coeff(2) != 6 {
		t.Errorf("got min=%d coeff=%v", r.MinExp(), r.Coeff(2))
	}
}

func TestMulZero(t *testing.T) {
	p := New([]float64{1, 2}, 0)

	if !p.Mul(Polynomial{}).IsZero() {
		t.Error("product with zero should be zero")
	}
}

func TestDivIsExact(t *testing.T) {
	lead := 0.30000000000000004
	p := New([]float64{1, lead}, 0)

	r := p.Div(lead)
	if r.Coeff(1) != 1 {
		t.Errorf("leading coefficient after division: got %v, want exactly 1", r.Coeff(1))
	}
}

func TestShift(t *testing.T) {
	p := New([]float64{1, 2}, -2)
	r := p.Shift(3)

	if r.MinExp() != 1 || r.MaxExp() != 2 {
		t.Errorf("exponents: min=%d max=%d", r.MinExp(), r.MaxExp())
	}
	if !(Polynomial{}).Shift(4).IsZero() {
		t.Error("shifting zero should stay zero")
	}
}

func TestPow(t *testing.T) {
	p := New([]float64{1, 1}, 0)

	r := p.Pow(2)
	if !equalSlices(r.Ascending(), []float64{1, 2, 1}) {
		t.Errorf("square: got %v", r.Ascending())
	}

	one := p.Pow(0)
	if one.Span() != 1 || one.Coeff(0) != 1 {
		t.Errorf("zeroth power: got %v", one.Ascending())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative exponent")
		}
	}()
	p.Pow(-1)
}

func TestEval(t *testing.T) {
	// x^2 + 2x + 3 at x = 2 is 11.
	p := FromDescending([]float64{1, 2, 3}, 2)
	if got := p.Eval(2); cmplx.Abs(got-11) > eps {
		t.Errorf("Eval(2): got %v, want 11", got)
	}

	// 4x^-1 at x = 2 is 2.
	q := New([]float64{4}, -1)
	if got := q.Eval(2); cmplx.Abs(got-2) > eps {
		t.Errorf("Eval(2): got %v, want 2", got)
	}

	if (Polynomial{}).Eval(3) != 0 {
		t.Error("zero polynomial should evaluate to 0")
	}
}
