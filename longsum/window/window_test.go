package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-longsum/longsum/kernel"
)

func TestDesignBasics(t *testing.T) {
	k := kernel.Default()

	w, err := Design(k, 1000, 1e-6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Name() != Name {
		t.Errorf("Name() = %q, want %q", w.Name(), Name)
	}
	if w.Radius() >= 1000 {
		t.Fatalf("radius %d must be smaller than signal length", w.Radius())
	}
	if w.FlatRadius() <= 0 || w.FlatRadius() >= w.Radius() {
		t.Fatalf("flat radius %d out of range (0, %d)", w.FlatRadius(), w.Radius())
	}
	if w.ErrorBound() > 1e-6/2 {
		t.Errorf("error bound %g exceeds window budget %g", w.ErrorBound(), 1e-6/2)
	}
}

func TestWindowValues(t *testing.T) {
	k := kernel.Params{Mu: 0.1, Amplitude: 1}

	w, err := Design(k, 2000, 1e-6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Self-term policy matches the kernel.
	if w.At(0) != 0 {
		t.Errorf("At(0) = %v, want 0", w.At(0))
	}

	// Untouched kernel over the flat region.
	for r := 1; r <= w.FlatRadius(); r++ {
		if w.At(r) != k.At(r) {
			t.Fatalf("At(%d) = %v, want kernel value %v", r, w.At(r), k.At(r))
		}
	}

	// Strictly attenuated but nonzero over the ramp.
	for r := w.FlatRadius() + 1; r <= w.Radius(); r++ {
		if w.At(r) <= 0 || w.At(r) >= k.At(r) {
			t.Fatalf("At(%d) = %v, want in (0, %v)", r, w.At(r), k.At(r))
		}
	}

	// Exactly zero outside the support, and symmetric inside.
	for _, r := range []int{w.Radius() + 1, w.Radius() + 100, -w.Radius() - 1} {
		if w.At(r) != 0 {
			t.Errorf("At(%d) = %v, want exactly 0", r, w.At(r))
		}
	}
	for r := 0; r <= w.Radius(); r++ {
		if w.At(-r) != w.At(r) {
			t.Fatalf("At(%d) != At(%d)", -r, r)
		}
	}
}

func TestDesignErrors(t *testing.T) {
	k := kernel.Default()

	if _, err := Design(k, 0, 1e-6, 1); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := Design(k, 100, 0, 1); err == nil {
		t.Error("expected error for eps=0")
	}
	if _, err := Design(k, 100, -1e-6, 1); err == nil {
		t.Error("expected error for negative eps")
	}
	if _, err := Design(k, 100, 1e-6, 0); err == nil {
		t.Error("expected error for zero peak")
	}
	if _, err := Design(kernel.Params{Mu: 0, Amplitude: 1}, 100, 1e-6, 1); !errors.Is(err, kernel.ErrInvalidDecay) {
		t.Error("expected kernel validation error")
	}

	// Slow decay and tight tolerance force a radius the signal cannot hold.
	_, err := Design(kernel.Params{Mu: 0.001, Amplitude: 1}, 50, 1e-9, 1)
	if !errors.Is(err, ErrRadiusTooLarge) {
		t.Errorf("got %v, want ErrRadiusTooLarge", err)
	}
}

func TestRadiusGrowsAsToleranceShrinks(t *testing.T) {
	k := kernel.Default()

	prev := 0
	for _, eps := range []float64{1e-3, 1e-5, 1e-7, 1e-9} {
		w, err := Design(k, 100000, eps, 1)
		if err != nil {
			t.Fatalf("eps=%g: %v", eps, err)
		}
		if w.Radius() < prev {
			t.Fatalf("eps=%g: radius %d shrank below %d", eps, w.Radius(), prev)
		}
		prev = w.Radius()
	}
}

func TestDesignDeterminism(t *testing.T) {
	k := kernel.Params{Mu: 0.07, Amplitude: 0.5}

	a, err := Design(k, 5000, 1e-8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Design(k, 5000, 1e-8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ca, cb := a.Coeffs(), b.Coeffs()
	if len(ca) != len(cb) {
		t.Fatalf("coefficient count differs: %d vs %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("coefficient %d differs: %v vs %v", i, ca[i], cb[i])
		}
	}
}

func TestAnalyze(t *testing.T) {
	k := kernel.Default()

	w, err := Design(k, 5000, 1e-6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := Analyze(w)
	if a.Radius != w.Radius() || a.FlatRadius != w.FlatRadius() {
		t.Fatalf("analysis radii %d/%d do not match window %d/%d",
			a.Radius, a.FlatRadius, w.Radius(), w.FlatRadius())
	}
	if a.Mass <= 0 || math.IsNaN(a.Mass) {
		t.Errorf("mass = %v, want > 0", a.Mass)
	}
	if a.TaperedMass <= 0 || a.TaperedMass >= a.Mass {
		t.Errorf("tapered mass = %v, want in (0, %v)", a.TaperedMass, a.Mass)
	}
	if a.ErrorBound != w.ErrorBound() {
		t.Errorf("error bound mismatch: %v vs %v", a.ErrorBound, w.ErrorBound())
	}

	if (Analyze(nil) != Analysis{}) {
		t.Error("Analyze(nil) must return the zero analysis")
	}
}
