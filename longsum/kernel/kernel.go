// Package kernel defines the long-range Yukawa interaction kernel used by
// both the reference evaluator and the finite window construction.
//
// The kernel gives the interaction strength between two positions as a
// function of their integer separation r:
//
//	K(r) = Amplitude * exp(-Mu*r) / r   for r >= 1
//	K(0) = 0                            (self-interaction excluded)
//
// The self-term policy is part of the kernel contract: the reference sum and
// the windowed replacement must agree on it, otherwise every output index
// picks up a systematic bias.
package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidDecay     = errors.New("kernel: decay rate must be > 0 and finite")
	ErrInvalidAmplitude = errors.New("kernel: amplitude must be finite and non-zero")
)

// Params holds the Yukawa kernel parameters.
type Params struct {
	// Mu is the exponential decay rate per unit separation.
	Mu float64
	// Amplitude scales the whole kernel.
	Amplitude float64
}

// Default returns kernel parameters suitable for the demo scenario.
func Default() Params {
	return Params{Mu: 0.05, Amplitude: 1}
}

// Validate reports whether the parameters describe a usable kernel.
func (p Params) Validate() error {
	if !(p.Mu > 0) || math.IsInf(p.Mu, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidDecay, p.Mu)
	}
	if p.Amplitude == 0 || math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidAmplitude, p.Amplitude)
	}
	return nil
}

// At returns the interaction strength at integer separation r.
// The kernel is symmetric, so At(-r) == At(r). At(0) is exactly zero.
func (p Params) At(r int) float64 {
	if r == 0 {
		return 0
	}
	if r < 0 {
		r = -r
	}

	fr := float64(r)

	return p.Amplitude * math.Exp(-p.Mu*fr) / fr
}

// TailBound returns an upper bound on the absolute tail sum
//
//	sum_{k > r} |At(k)|
//
// for r >= 0. The bound is monotonically non-increasing in r and is used to
// size the finite window support for a given tolerance budget.
func (p Params) TailBound(r int) float64 {
	if r < 0 {
		r = 0
	}

	// |At(k)| <= |A| * exp(-Mu*k) / (r+1) for k > r, and the remaining
	// geometric series sums to exp(-Mu*(r+1)) / (1 - exp(-Mu)).
	q := math.Exp(-p.Mu)

	return math.Abs(p.Amplitude) * math.Exp(-p.Mu*float64(r+1)) / (float64(r+1) * (1 - q))
}

// Canonical returns a canonical, platform-stable serialization of the
// parameters for use in reproducibility hashing. Floats are rendered in hex
// notation so that logically identical parameters always serialize
// identically.
func (p Params) Canonical() string {
	return "yukawa;mu=" + strconv.FormatFloat(p.Mu, 'x', -1, 64) +
		";amp=" + strconv.FormatFloat(p.Amplitude, 'x', -1, 64)
}
