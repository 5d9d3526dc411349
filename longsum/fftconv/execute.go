package fftconv

import (
	"fmt"
	"math"
)

// Execute computes the windowed long-range sum of signal over the plan's
// valid range. The signal length must match the plan.
//
// The inverse transform of a real convolution is real up to round-off; the
// imaginary residual is checked against a scale-relative threshold and a
// violation surfaces as ErrNumericInstability rather than a silent result.
func (p *Plan) Execute(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if len(signal) != p.n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSignalLength, len(signal), p.n)
	}

	for i := range p.signalPadded {
		p.signalPadded[i] = 0
	}
	for i, v := range signal {
		p.signalPadded[i] = complex(v, 0)
	}

	if err := p.fft.Forward(p.signalPadded, p.signalPadded); err != nil {
		return nil, fmt.Errorf("fftconv: forward FFT failed: %w", err)
	}

	for i := range p.spectrum {
		p.spectrum[i] = p.signalPadded[i] * p.kernelFFT[i]
	}

	if err := p.fft.Inverse(p.spectrum, p.spectrum); err != nil {
		return nil, fmt.Errorf("fftconv: inverse FFT failed: %w", err)
	}

	out := make([]float64, p.n)
	maxImag := 0.0
	maxOut := 0.0
	for i := range out {
		v := p.spectrum[i]
		out[i] = real(v)

		if im := math.Abs(imag(v)); im > maxImag {
			maxImag = im
		}
		if av := math.Abs(out[i]); av > maxOut {
			maxOut = av
		}
	}

	if residualExceeds(maxImag, maxOut) {
		return nil, fmt.Errorf("%w: residual %g, threshold %g",
			ErrNumericInstability, maxImag, residualThreshold(maxOut))
	}

	return out, nil
}

// residualThreshold returns the largest acceptable imaginary residual for an
// output of the given magnitude. The floor of 1 keeps the threshold absolute
// for small outputs instead of collapsing to zero.
func residualThreshold(maxOut float64) float64 {
	return imagResidualFactor * math.Max(1, maxOut)
}

// residualExceeds decides whether an inverse-transform imaginary residual
// indicates an unreliable spectral computation.
func residualExceeds(maxImag, maxOut float64) bool {
	return maxImag > residualThreshold(maxOut)
}
