// Package fftconv executes the finite windowed sum as a linear convolution
// via FFT: zero-pad, forward transform, spectral multiply, inverse
// transform, real-part readout. Cost is O(M log M) with M = Θ(N), replacing
// the O(N²) reference path under a checked tolerance.
package fftconv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-longsum/longsum/window"
)

var (
	ErrNilWindow    = errors.New("fftconv: nil window")
	ErrEmptySignal  = errors.New("fftconv: empty signal")
	ErrSignalLength = errors.New("fftconv: signal length does not match plan")

	// ErrGridTooSmall rejects grids below the N + 2R aliasing bound. With a
	// smaller grid the circular convolution wraps window taps around the
	// buffer and corrupts the edge outputs.
	ErrGridTooSmall = errors.New("fftconv: grid size below aliasing bound")

	// ErrGridTooLarge rejects grids beyond the configured memory limit
	// before any large allocation happens.
	ErrGridTooLarge = errors.New("fftconv: grid size exceeds limit")

	// ErrNumericInstability reports an inverse-transform imaginary residual
	// above the safety threshold. This indicates a defective plan or
	// pathological kernel parameters, not an ordinary tolerance failure.
	ErrNumericInstability = errors.New("fftconv: imaginary residual exceeds safety threshold")
)

// DefaultMaxGridSize caps the FFT grid at 2^26 samples (three complex
// buffers of 1 GiB each) unless overridden via WithMaxGridSize.
const DefaultMaxGridSize = 1 << 26

// imagResidualFactor scales the instability threshold relative to the
// output magnitude. Round-off from a well-formed transform pair sits many
// orders of magnitude below this.
const imagResidualFactor = 1e-9

// Option configures plan construction.
type Option func(*config)

type config struct {
	maxGridSize int
	gridSize    int
}

func defaultPlanConfig() config {
	return config{maxGridSize: DefaultMaxGridSize}
}

// WithMaxGridSize overrides the grid size limit.
func WithMaxGridSize(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxGridSize = limit
		}
	}
}

// WithGridSize forces an explicit grid size instead of the automatic
// next-power-of-two choice. The size must still satisfy the aliasing bound
// M >= N + 2R.
func WithGridSize(m int) Option {
	return func(c *config) {
		if m > 0 {
			c.gridSize = m
		}
	}
}

// Plan holds the precomputed kernel spectrum, the FFT plan, and the scratch
// buffers for executing the windowed sum on signals of a fixed length.
//
// A Plan reuses its scratch buffers across Execute calls and is therefore
// not safe for concurrent use.
type Plan struct {
	n      int
	m      int
	radius int
	win    *window.Window

	kernelFFT []complex128
	fft       *algofft.Plan[complex128]

	signalPadded []complex128
	spectrum     []complex128
}

// NewPlan builds an execution plan for signals of length n using the given
// FY window.
//
// The grid size M is the smallest power of two >= n + 2R, guaranteeing a
// linear (non-circular) convolution result for every output index. The
// padded window uses the circular layout the convolution theorem expects:
// offset 0 at index 0, positive offsets 1..R at indices 1..R, and negative
// offsets at indices M-R..M-1.
func NewPlan(n int, win *window.Window, opts ...Option) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fftconv: signal length must be > 0: %d", n)
	}
	if win == nil {
		return nil, ErrNilWindow
	}

	cfg := defaultPlanConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	radius := win.Radius()
	minGrid := n + 2*radius

	m := cfg.gridSize
	if m == 0 {
		m = nextPowerOf2(minGrid)
	}
	if m < minGrid {
		return nil, fmt.Errorf("%w: got %d, need >= %d", ErrGridTooSmall, m, minGrid)
	}
	if m > cfg.maxGridSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrGridTooLarge, m, cfg.maxGridSize)
	}

	fftPlan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("fftconv: failed to create FFT plan: %w", err)
	}

	p := &Plan{
		n:            n,
		m:            m,
		radius:       radius,
		win:          win,
		kernelFFT:    make([]complex128, m),
		fft:          fftPlan,
		signalPadded: make([]complex128, m),
		spectrum:     make([]complex128, m),
	}

	// Circular placement of the symmetric window.
	padded := make([]complex128, m)
	padded[0] = complex(win.At(0), 0)
	for r := 1; r <= radius; r++ {
		v := complex(win.At(r), 0)
		padded[r] = v
		padded[m-r] = v
	}

	if err := fftPlan.Forward(p.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("fftconv: failed to compute window spectrum: %w", err)
	}

	return p, nil
}

// SignalLen returns the signal length the plan was built for.
func (p *Plan) SignalLen() int { return p.n }

// GridSize returns the FFT grid size M.
func (p *Plan) GridSize() int { return p.m }

// Radius returns the window support radius.
func (p *Plan) Radius() int { return p.radius }

// WindowName returns the window type name for records and output.
func (p *Plan) WindowName() string { return p.win.Name() }

// Window returns the plan's window.
func (p *Plan) Window() *window.Window { return p.win }

// ValidRange returns the half-open output index range [lo, hi) the plan
// produces. With the zero-padded layout every index of the signal is valid;
// boundary bias from missing out-of-array neighbors is covered by the window
// error budget.
func (p *Plan) ValidRange() (lo, hi int) { return 0, p.n }

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
