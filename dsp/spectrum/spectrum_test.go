package spectrum

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestFromImpulseUnitImpulse(t *testing.T) {
	ir := make([]float64, 64)
	ir[0] = 1

	mag, err := FromImpulse(ir, 64)
	if err != nil {
		t.Fatalf("FromImpulse failed: %v", err)
	}

	if len(mag) != 33 {
		t.Fatalf("expected 33 bins, got %d", len(mag))
	}

	for i, m := range mag {
		if !almostEqual(m, 1) {
			t.Errorf("bin %d: expected flat unity magnitude, got %g", i, m)
		}
	}
}

func TestFromImpulseDelayedImpulse(t *testing.T) {
	// A pure delay has unity magnitude at every frequency.
	ir := make([]float64, 32)
	ir[5] = 1

	mag, err := FromImpulse(ir, 32)
	if err != nil {
		t.Fatalf("FromImpulse failed: %v", err)
	}

	for i, m := range mag {
		if !almostEqual(m, 1) {
			t.Errorf("bin %d: expected unity magnitude, got %g", i, m)
		}
	}
}

func TestFromImpulseZeroPadding(t *testing.T) {
	mag, err := FromImpulse([]float64{2}, 16)
	if err != nil {
		t.Fatalf("FromImpulse failed: %v", err)
	}

	for i, m := range mag {
		if !almostEqual(m, 2) {
			t.Errorf("bin %d: expected magnitude 2, got %g", i, m)
		}
	}
}

func TestFromImpulseRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := FromImpulse([]float64{1}, 48); err == nil {
		t.Fatal("expected error for non power of two size")
	}
	if _, err := FromImpulse([]float64{1}, 0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestMagnitude(t *testing.T) {
	in := []complex128{3 + 4i, 0, -1, 5i}
	want := []float64{5, 0, 1, 5}

	got := Magnitude(in)
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d != %d", len(got), len(want))
	}

	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("bin %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestPower(t *testing.T) {
	in := []complex128{3 + 4i, 2}
	want := []float64{25, 4}

	got := Power(in)
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("bin %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestUnwrapPhase(t *testing.T) {
	// A linear phase ramp wrapped into (-pi, pi] should unwrap to a line.
	n := 64
	slope := -0.4
	wrapped := make([]float64, n)
	for i := range wrapped {
		p := slope * float64(i)
		wrapped[i] = math.Atan2(math.Sin(p), math.Cos(p))
	}

	un := UnwrapPhase(wrapped)
	for i := range un {
		if math.Abs(un[i]-slope*float64(i)) > 1e-9 {
			t.Fatalf("index %d: got %g, want %g", i, un[i], slope*float64(i))
		}
	}
}

func TestGroupDelayFromPhase(t *testing.T) {
	// Linear phase -d*w corresponds to a constant group delay of d samples.
	fftSize := 128
	delay := 7.0
	phase := make([]float64, fftSize/2+1)
	for i := range phase {
		w := 2 * math.Pi * float64(i) / float64(fftSize)
		phase[i] = -delay * w
	}

	gd, err := GroupDelayFromPhase(phase, fftSize)
	if err != nil {
		t.Fatalf("GroupDelayFromPhase failed: %v", err)
	}

	for i, d := range gd {
		if math.Abs(d-delay) > 1e-9 {
			t.Errorf("bin %d: got %g, want %g", i, d, delay)
		}
	}
}

func TestGroupDelayErrors(t *testing.T) {
	if _, err := GroupDelayFromPhase([]float64{0}, 8); err == nil {
		t.Fatal("expected error for too few phase points")
	}
	if _, err := GroupDelayFromPhase([]float64{0, 1}, 0); err == nil {
		t.Fatal("expected error for non-positive fft size")
	}
}
