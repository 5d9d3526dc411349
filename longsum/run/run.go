// Package run wires the pipeline stages into the entry points a caller
// (typically a CLI) consumes: the reference baseline, the FFT replacement,
// the equivalence check, and the reproducibility hash.
//
// The pipeline is strictly linear: Configure → BuildWindow → RunBaseline →
// RunFFTReplacement → Compare → Record. Any stage error aborts the run; no
// partial result is ever reported as valid. The core computes everything the
// presentation needs (values, timings, verdict, record) but never prints.
package run

import (
	"time"

	"github.com/cwbudde/algo-longsum/longsum/baseline"
	"github.com/cwbudde/algo-longsum/longsum/equiv"
	"github.com/cwbudde/algo-longsum/longsum/fftconv"
	"github.com/cwbudde/algo-longsum/longsum/kernel"
	"github.com/cwbudde/algo-longsum/longsum/repro"
	"github.com/cwbudde/algo-longsum/longsum/signal"
	"github.com/cwbudde/algo-longsum/longsum/window"
)

// BaselineResult carries the reference sequence and its wall-clock cost.
type BaselineResult struct {
	Values  []float64
	Elapsed time.Duration
}

// ReplacementResult carries the FFT replacement sequence, its wall-clock
// cost (window design, planning, and execution), and the plan parameters
// the caller needs for presentation and auditing.
type ReplacementResult struct {
	Values       []float64
	Elapsed      time.Duration
	GridSize     int
	WindowName   string
	WindowRadius int
	Record       repro.Record
}

// Report is the outcome of a full comparison run.
type Report struct {
	Baseline    BaselineResult
	Replacement ReplacementResult
	Verdict     equiv.Verdict
	Eps         float64
	// Speedup is baseline time over replacement time.
	Speedup float64
}

// Baseline evaluates the O(N²) reference sum.
func Baseline(sig []float64, k kernel.Params) (BaselineResult, error) {
	ev, err := baseline.New(k)
	if err != nil {
		return BaselineResult{}, err
	}

	start := time.Now()
	values, err := ev.Evaluate(sig)
	if err != nil {
		return BaselineResult{}, err
	}

	return BaselineResult{Values: values, Elapsed: time.Since(start)}, nil
}

// FFTReplacement designs an FY window for the signal, plans the grid, and
// executes the windowed sum via FFT. The elapsed time covers the whole
// replacement path, construction included.
func FFTReplacement(sig []float64, k kernel.Params, eps float64, opts ...fftconv.Option) (ReplacementResult, error) {
	start := time.Now()

	peak := signal.Peak(sig)
	if peak == 0 {
		// All-zero signals carry no information for radius selection.
		peak = 1
	}

	win, err := window.Design(k, len(sig), eps, peak)
	if err != nil {
		return ReplacementResult{}, err
	}

	plan, err := fftconv.NewPlan(len(sig), win, opts...)
	if err != nil {
		return ReplacementResult{}, err
	}

	values, err := plan.Execute(sig)
	if err != nil {
		return ReplacementResult{}, err
	}

	return ReplacementResult{
		Values:       values,
		Elapsed:      time.Since(start),
		GridSize:     plan.GridSize(),
		WindowName:   plan.WindowName(),
		WindowRadius: plan.Radius(),
		Record:       repro.NewRecord(plan, eps, k),
	}, nil
}

// CheckEquivalence compares the two result sequences under the max-abs norm.
func CheckEquivalence(baselineValues, replacementValues []float64, eps float64) (equiv.Verdict, error) {
	return equiv.Check(baselineValues, replacementValues, eps)
}

// ReproducibilityHash returns the content hash of a record.
func ReproducibilityHash(rec repro.Record) string {
	return rec.Hash()
}

// Compare runs the full pipeline on one signal and reports both paths, the
// verdict, and the reproducibility record.
func Compare(sig []float64, k kernel.Params, eps float64, opts ...fftconv.Option) (Report, error) {
	base, err := Baseline(sig, k)
	if err != nil {
		return Report{}, err
	}

	repl, err := FFTReplacement(sig, k, eps, opts...)
	if err != nil {
		return Report{}, err
	}

	verdict, err := CheckEquivalence(base.Values, repl.Values, eps)
	if err != nil {
		return Report{}, err
	}

	speedup := 0.0
	if repl.Elapsed > 0 {
		speedup = float64(base.Elapsed) / float64(repl.Elapsed)
	}

	return Report{
		Baseline:    base,
		Replacement: repl,
		Verdict:     verdict,
		Eps:         eps,
		Speedup:     speedup,
	}, nil
}
