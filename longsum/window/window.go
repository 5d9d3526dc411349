// Package window constructs the Fejer-Yukawa (FY) finite window: a tapered,
// finite-support truncation of the long-range Yukawa kernel.
//
// The window keeps the kernel untouched over an inner flat region [0, F] and
// applies a Fejer (triangular) ramp over the outer part of the support
// (F, R], reaching zero just past R. Outside [-R, R] the window is exactly
// zero. The flat radius F is chosen from the kernel tail bound so that the
// combined taper and truncation error stays inside the window's share of the
// caller's tolerance budget.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-longsum/longsum/kernel"
)

// Name identifies the window type in plans, records, and console output.
const Name = "fejer-yukawa"

var (
	ErrRadiusTooLarge = errors.New("window: support radius must be smaller than signal length")
)

// Option configures window design.
type Option func(*config)

type config struct {
	budgetFrac float64
	rampFrac   float64
}

func defaultConfig() config {
	return config{
		budgetFrac: 0.5,
		rampFrac:   0.25,
	}
}

// WithBudgetFraction sets the share of eps granted to window truncation and
// taper error. The remainder absorbs FFT round-off and boundary bias.
func WithBudgetFraction(frac float64) Option {
	return func(c *config) {
		if frac > 0 && frac < 1 {
			c.budgetFrac = frac
		}
	}
}

// WithRampFraction sets the Fejer ramp length as a fraction of the flat
// radius. The ramp is always at least one sample.
func WithRampFraction(frac float64) Option {
	return func(c *config) {
		if frac > 0 {
			c.rampFrac = frac
		}
	}
}

// Window is a designed FY window. Immutable after Design.
type Window struct {
	params kernel.Params
	radius int
	flat   int
	coeffs []float64 // offsets 0..radius
	bound  float64   // per-index error bound vs. the full-range kernel
}

// Design constructs an FY window for a signal of length n whose absolute
// peak is peak, such that replacing the full-range kernel by the window
// perturbs any output index by at most budgetFrac*eps.
func Design(k kernel.Params, n int, eps, peak float64, opts ...Option) (*Window, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("window: signal length must be > 0: %d", n)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("window: eps must be > 0 and finite: %g", eps)
	}
	if !(peak > 0) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("window: signal peak must be > 0 and finite: %g", peak)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Smallest flat radius whose two-sided tail fits the window budget.
	// Everything dropped or tapered lies at offsets > F, so the per-index
	// error is bounded by 2*peak*TailBound(F).
	budget := eps * cfg.budgetFrac
	flat := 1
	for 2*peak*k.TailBound(flat) > budget {
		flat++
		if flat >= n {
			return nil, fmt.Errorf("%w: flat radius %d, signal length %d (eps %g)",
				ErrRadiusTooLarge, flat, n, eps)
		}
	}

	ramp := int(cfg.rampFrac*float64(flat) + 0.5)
	if ramp < 1 {
		ramp = 1
	}

	radius := flat + ramp
	if radius >= n {
		return nil, fmt.Errorf("%w: radius %d, signal length %d (eps %g)",
			ErrRadiusTooLarge, radius, n, eps)
	}

	// Sample the kernel over the support and apply the taper. The taper is
	// identity over [0, F] and falls linearly to zero at offset R+1.
	samples := make([]float64, radius+1)
	taper := make([]float64, radius+1)
	for r := 0; r <= radius; r++ {
		samples[r] = k.At(r)
		if r <= flat {
			taper[r] = 1
		} else {
			taper[r] = float64(radius+1-r) / float64(radius+1-flat)
		}
	}

	coeffs := make([]float64, radius+1)
	vecmath.MulBlock(coeffs, samples, taper)

	return &Window{
		params: k,
		radius: radius,
		flat:   flat,
		coeffs: coeffs,
		bound:  2 * peak * k.TailBound(flat),
	}, nil
}

// Name returns the window type name.
func (w *Window) Name() string { return Name }

// Radius returns the support radius R; the window is zero outside [-R, R].
func (w *Window) Radius() int { return w.radius }

// FlatRadius returns the inner radius F below which the kernel is untouched.
func (w *Window) FlatRadius() int { return w.flat }

// Kernel returns the kernel parameters the window was designed for.
func (w *Window) Kernel() kernel.Params { return w.params }

// ErrorBound returns the guaranteed per-index bound on the deviation between
// the windowed sum and the full-range reference sum.
func (w *Window) ErrorBound() float64 { return w.bound }

// At returns the window value at integer offset r. Symmetric, and exactly
// zero for |r| > Radius().
func (w *Window) At(r int) float64 {
	if r < 0 {
		r = -r
	}
	if r > w.radius {
		return 0
	}

	return w.coeffs[r]
}

// Coeffs returns a copy of the one-sided coefficients for offsets 0..Radius().
func (w *Window) Coeffs() []float64 {
	return append([]float64(nil), w.coeffs...)
}
