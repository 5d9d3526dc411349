package kernel

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"default", Default(), nil},
		{"zero decay", Params{Mu: 0, Amplitude: 1}, ErrInvalidDecay},
		{"negative decay", Params{Mu: -0.1, Amplitude: 1}, ErrInvalidDecay},
		{"nan decay", Params{Mu: math.NaN(), Amplitude: 1}, ErrInvalidDecay},
		{"inf decay", Params{Mu: math.Inf(1), Amplitude: 1}, ErrInvalidDecay},
		{"zero amplitude", Params{Mu: 0.1, Amplitude: 0}, ErrInvalidAmplitude},
		{"nan amplitude", Params{Mu: 0.1, Amplitude: math.NaN()}, ErrInvalidAmplitude},
		{"negative amplitude ok", Params{Mu: 0.1, Amplitude: -2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAt(t *testing.T) {
	p := Params{Mu: 0.5, Amplitude: 2}

	if got := p.At(0); got != 0 {
		t.Fatalf("At(0) = %v, want exactly 0 (self-term excluded)", got)
	}

	for r := 1; r <= 32; r++ {
		want := 2 * math.Exp(-0.5*float64(r)) / float64(r)
		if got := p.At(r); math.Abs(got-want) > 1e-15 {
			t.Errorf("At(%d) = %v, want %v", r, got, want)
		}
		if p.At(-r) != p.At(r) {
			t.Errorf("At(%d) != At(%d): kernel must be symmetric", -r, r)
		}
	}

	// Strictly decreasing for r >= 1.
	for r := 1; r < 32; r++ {
		if p.At(r+1) >= p.At(r) {
			t.Errorf("At(%d)=%v >= At(%d)=%v", r+1, p.At(r+1), r, p.At(r))
		}
	}
}

func TestTailBoundDominatesTail(t *testing.T) {
	p := Params{Mu: 0.2, Amplitude: 1.5}

	// Sum far enough that the remainder is negligible at double precision.
	const horizon = 2000
	for _, r := range []int{0, 1, 5, 20, 100} {
		tail := 0.0
		for k := r + 1; k <= horizon; k++ {
			tail += math.Abs(p.At(k))
		}
		if bound := p.TailBound(r); bound < tail {
			t.Errorf("TailBound(%d) = %v < actual tail %v", r, bound, tail)
		}
	}

	// Monotonically non-increasing.
	prev := p.TailBound(0)
	for r := 1; r <= 200; r++ {
		cur := p.TailBound(r)
		if cur > prev {
			t.Fatalf("TailBound(%d)=%v > TailBound(%d)=%v", r, cur, r-1, prev)
		}
		prev = cur
	}
}

func TestCanonical(t *testing.T) {
	a := Params{Mu: 0.05, Amplitude: 1}
	b := Params{Mu: 0.05, Amplitude: 1}
	if a.Canonical() != b.Canonical() {
		t.Fatal("identical params must serialize identically")
	}

	variants := []Params{
		{Mu: 0.051, Amplitude: 1},
		{Mu: 0.05, Amplitude: 1.000001},
		{Mu: 0.05, Amplitude: -1},
	}
	for _, v := range variants {
		if v.Canonical() == a.Canonical() {
			t.Errorf("params %+v must not serialize like %+v", v, a)
		}
	}
}
