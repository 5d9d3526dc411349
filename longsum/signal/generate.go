// Package signal generates deterministic synthetic input sequences for
// long-range sum runs. All generators are pure functions of their arguments
// and the configured seed, so reruns produce bit-identical signals.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the configured random seed.
func (g *Generator) Seed() int64 { return g.seed }

// ExponentialDecay generates amplitude * exp(-rate * i) over i in [0, samples).
func (g *Generator) ExponentialDecay(amplitude, rate float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if rate < 0 {
		return nil, fmt.Errorf("signal: decay rate must be >= 0: %f", rate)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Exp(-rate*float64(i))
	}
	return out, nil
}

// Impulse generates a unit delta at the given position.
func (g *Generator) Impulse(position, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if position < 0 || position >= samples {
		return nil, fmt.Errorf("signal: impulse position out of range [0,%d): %d", samples, position)
	}
	out := make([]float64, samples)
	out[position] = 1
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Peak returns the maximum absolute sample value.
func Peak(data []float64) float64 {
	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	return maxAbs
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: input must not be empty")
	}

	maxAbs := Peak(data)

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
