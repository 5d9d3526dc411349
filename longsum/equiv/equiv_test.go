package equiv

import (
	"errors"
	"math"
	"testing"
)

func TestCheckPassFail(t *testing.T) {
	tests := []struct {
		name      string
		baseline  []float64
		repl      []float64
		eps       float64
		wantDelta float64
		wantPass  bool
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1e-12, 0, true},
		{"within eps", []float64{1, 2, 3}, []float64{1, 2.0005, 3}, 1e-3, 0.0005, true},
		{"at eps", []float64{1}, []float64{1.001}, 0.001, 0.001, true},
		{"beyond eps", []float64{1, 2, 3}, []float64{1, 2.1, 3}, 1e-3, 0.1, false},
		{"sign difference", []float64{-1}, []float64{1}, 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Check(tt.baseline, tt.repl, tt.eps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(v.Delta-tt.wantDelta) > 1e-15 {
				t.Errorf("delta = %v, want %v", v.Delta, tt.wantDelta)
			}
			if v.Pass != tt.wantPass {
				t.Errorf("pass = %v, want %v", v.Pass, tt.wantPass)
			}
			if v.Truncated {
				t.Error("equal-length inputs must not report truncation")
			}
			if v.Lo != 0 || v.Hi != len(tt.baseline) {
				t.Errorf("range [%d,%d), want [0,%d)", v.Lo, v.Hi, len(tt.baseline))
			}
		})
	}
}

func TestCheckTruncated(t *testing.T) {
	baseline := []float64{1, 2, 3, 4, 5}
	repl := []float64{1, 2, 3}

	v, err := Check(baseline, repl, 1e-9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !v.Truncated {
		t.Error("length mismatch must be disclosed via Truncated")
	}
	if v.Lo != 0 || v.Hi != 3 {
		t.Errorf("range [%d,%d), want [0,3)", v.Lo, v.Hi)
	}
	if !v.Pass || v.Delta != 0 {
		t.Errorf("overlap is identical: delta=%v pass=%v", v.Delta, v.Pass)
	}
}

func TestCheckErrors(t *testing.T) {
	if _, err := Check([]float64{1}, []float64{1}, 0); !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("got %v, want ErrInvalidTolerance", err)
	}
	if _, err := Check([]float64{1}, []float64{1}, -1); !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("got %v, want ErrInvalidTolerance", err)
	}
	if _, err := Check(nil, []float64{1}, 1e-6); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("got %v, want ErrEmptyRange", err)
	}
	if _, err := Check([]float64{1}, nil, 1e-6); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("got %v, want ErrEmptyRange", err)
	}
}

func TestCheckDoesNotMutate(t *testing.T) {
	baseline := []float64{1, 2, 3}
	repl := []float64{1.5, 2.5, 3.5}

	if _, err := Check(baseline, repl, 1e-6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if baseline[0] != 1 || baseline[1] != 2 || baseline[2] != 3 {
		t.Error("baseline mutated")
	}
	if repl[0] != 1.5 || repl[1] != 2.5 || repl[2] != 3.5 {
		t.Error("replacement mutated")
	}
}
