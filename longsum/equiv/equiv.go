// Package equiv gates the FFT replacement on the reference result: it
// measures the max-abs deviation between the two sequences and compares it
// against the caller's tolerance.
//
// A tolerance violation is a normal FAIL verdict, not an error; the caller
// gets the measured delta and can re-tune the window or the grid.
package equiv

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidTolerance = errors.New("equiv: eps must be > 0 and finite")
	ErrEmptyRange       = errors.New("equiv: no overlapping samples to compare")
)

// Verdict is the outcome of an equivalence check.
type Verdict struct {
	// Delta is max_i |baseline[i] - replacement[i]| over [Lo, Hi).
	Delta float64
	// Pass is true when Delta <= the tolerance.
	Pass bool
	// Lo and Hi delimit the compared half-open index range.
	Lo, Hi int
	// Truncated is true when the inputs had different lengths and only the
	// overlapping range was compared.
	Truncated bool
}

// Check compares baseline and replacement under the max-abs norm.
//
// Inputs are never mutated. When the sequences differ in length the
// comparison covers the overlap only and the verdict discloses that through
// Truncated and the [Lo, Hi) range.
func Check(baseline, replacement []float64, eps float64) (Verdict, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return Verdict{}, fmt.Errorf("%w: %g", ErrInvalidTolerance, eps)
	}

	n := len(baseline)
	if len(replacement) < n {
		n = len(replacement)
	}
	if n == 0 {
		return Verdict{}, ErrEmptyRange
	}

	delta := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(baseline[i] - replacement[i]); d > delta {
			delta = d
		}
	}

	return Verdict{
		Delta:     delta,
		Pass:      delta <= eps,
		Lo:        0,
		Hi:        n,
		Truncated: len(baseline) != len(replacement),
	}, nil
}
