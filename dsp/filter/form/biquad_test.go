package form

import (
	"errors"
	"testing"
)

func TestNormalizedBiquad(t *testing.T) {
	bq, err := NormalizedBiquad(2, 4, 6, 2, 1, 0.5)
	if err != nil {
		t.Fatalf("NormalizedBiquad failed: %v", err)
	}

	if bq.B0() != 1 || bq.B1() != 2 || bq.B2() != 3 {
		t.Errorf("numerator: got %v %v %v", bq.B0(), bq.B1(), bq.B2())
	}
	if bq.A1() != 0.5 || bq.A2() != 0.25 {
		t.Errorf("denominator: got %v %v", bq.A1(), bq.A2())
	}
}

func TestNormalizedBiquadWithGain(t *testing.T) {
	bq, err := NormalizedBiquad(1, 2, 3, 1, 0.5, 0.25, WithGain(2))
	if err != nil {
		t.Fatalf("NormalizedBiquad failed: %v", err)
	}

	if bq.B0() != 2 || bq.B1() != 4 || bq.B2() != 6 {
		t.Errorf("gain not applied to numerator: got %v %v %v", bq.B0(), bq.B1(), bq.B2())
	}
	if bq.A1() != 0.5 || bq.A2() != 0.25 {
		t.Errorf("gain leaked into denominator: got %v %v", bq.A1(), bq.A2())
	}
}

func TestNormalizedBiquadZeroA0(t *testing.T) {
	if _, err := NormalizedBiquad(1, 2, 3, 0, 1, 2); !errors.Is(err, ErrDenominatorZero) {
		t.Errorf("expected ErrDenominatorZero, got %v", err)
	}
}

func TestBiquadScale(t *testing.T) {
	f := NewBiquad(1, 2, 3, 0.5, 0.25)

	g := f.Scale(2)
	if g.B0() != 2 || g.B1() != 4 || g.B2() != 6 {
		t.Errorf("numerator: got %v %v %v", g.B0(), g.B1(), g.B2())
	}
	if g.A1() != 0.5 || g.A2() != 0.25 {
		t.Errorf("denominator must be unchanged: got %v %v", g.A1(), g.A2())
	}
}

func TestBiquadInv(t *testing.T) {
	f := NewBiquad(2, 1, 0.5, 0.4, 0.3)

	g, err := f.Inv()
	if err != nil {
		t.Fatalf("Inv failed: %v", err)
	}
	if !almostEqual(g.B0(), 0.5) || !almostEqual(g.B1(), 0.2) || !almostEqual(g.B2(), 0.15) {
		t.Errorf("numerator: got %v %v %v", g.B0(), g.B1(), g.B2())
	}
	if !almostEqual(g.A1(), 0.5) || !almostEqual(g.A2(), 0.25) {
		t.Errorf("denominator: got %v %v", g.A1(), g.A2())
	}

	back, err := g.Inv()
	if err != nil {
		t.Fatalf("Inv failed: %v", err)
	}
	if !almostEqual(back.B0(), f.B0()) || !almostEqual(back.A1(), f.A1()) || !almostEqual(back.A2(), f.A2()) {
		t.Errorf("double inversion did not return the original: %+v", back)
	}

	zero := NewBiquad(0, 1, 0, 0.5, 0)
	if _, err := zero.Inv(); !errors.Is(err, ErrDenominatorZero) {
		t.Errorf("expected ErrDenominatorZero, got %v", err)
	}
}

func TestBiquadMul(t *testing.T) {
	f := NewBiquad(1, 0, 0, 0.5, 0)
	g := NewBiquad(2, 0, 0, 0.25, 0)

	sos := f.Mul(g)
	if sos.NumSections() != 2 {
		t.Fatalf("expected 2 sections, got %d", sos.NumSections())
	}
	if !almostEqual(sos.Gain(), 1) {
		t.Errorf("gain: got %g, want 1", sos.Gain())
	}
}

func TestBiquadPow(t *testing.T) {
	f := NewBiquad(1, 1, 0, 0.5, 0)

	sos, err := f.Pow(3)
	if err != nil {
		t.Fatalf("Pow failed: %v", err)
	}
	if sos.NumSections() != 3 {
		t.Errorf("expected 3 sections, got %d", sos.NumSections())
	}
}

func TestBiquadPolynomialRatioZ(t *testing.T) {
	f := NewBiquad(0.3, -0.2, 0.1, -0.6, 0.05)

	r := f.PolynomialRatio()
	checkCoefs(t, "b", r.CoefB(), []float64{0.3, -0.2, 0.1})
	checkCoefs(t, "a", r.CoefA(), []float64{1, -0.6, 0.05})
}

func TestBiquadPolynomialRatioS(t *testing.T) {
	f := NewBiquad(1, 2, 3, 0.5, 0.25, WithDomain(S))

	r := f.PolynomialRatio()
	if r.Domain() != S {
		t.Fatalf("expected s domain, got %v", r.Domain())
	}
	checkCoefs(t, "b", r.CoefB(), []float64{1, 2, 3})
	checkCoefs(t, "a", r.CoefA(), []float64{1, 0.5, 0.25})
}

func TestBiquadZeroPoleGain(t *testing.T) {
	// (1 + z^-1)(1 + 0.5 z^-1): zeros at -1 and -0.5 once the delay
	// powers are cleared.
	f := NewBiquad(1, 1.5, 0.5, -0.9, 0.2)

	zpk, err := f.ZeroPoleGain()
	if err != nil {
		t.Fatalf("ZeroPoleGain failed: %v", err)
	}

	checkRootSet(t, "zeros", zpk.Zeros(), []complex128{-1, -0.5})
	checkRootSet(t, "poles", zpk.Poles(), []complex128{0.5, 0.4})
	if !almostEqual(zpk.Gain(), 1) {
		t.Errorf("gain: got %g, want 1", zpk.Gain())
	}
}

func TestBiquadSecondOrderSections(t *testing.T) {
	f := NewBiquad(1, 2, 1, -0.5, 0.25)

	sos := f.SecondOrderSections()
	if sos.NumSections() != 1 {
		t.Fatalf("expected 1 section, got %d", sos.NumSections())
	}
	if sos.Sections()[0] != f {
		t.Error("section should equal the source biquad")
	}
}
