// Package baseline computes the reference long-range sum directly.
//
// This is the O(N²) ground truth the FFT replacement is checked against. It
// is deliberately a plain nested loop: its role is an oracle, not a
// competitor, and any acceleration here would weaken the equivalence check.
package baseline

import (
	"errors"

	"github.com/cwbudde/algo-longsum/longsum/kernel"
)

var ErrEmptySignal = errors.New("baseline: empty signal")

// Evaluator computes per-index long-range sums for a fixed kernel.
type Evaluator struct {
	params kernel.Params
}

// New creates an evaluator after validating the kernel parameters.
func New(p kernel.Params) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Evaluator{params: p}, nil
}

// Kernel returns the kernel parameters.
func (e *Evaluator) Kernel() kernel.Params { return e.params }

// Evaluate returns the reference sequence
//
//	out[i] = sum_j signal[j] * K(|i-j|)
//
// over all j in [0, len(signal)). The inner loop runs in strictly increasing
// j so reruns with identical inputs are bit-identical. Self terms are
// excluded through the kernel's At(0) == 0 policy.
func (e *Evaluator) Evaluate(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	n := len(signal)
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		acc := 0.0
		for j := 0; j < n; j++ {
			acc += signal[j] * e.params.At(i-j)
		}
		out[i] = acc
	}

	return out, nil
}
