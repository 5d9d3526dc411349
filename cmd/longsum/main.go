// Command longsum compares an O(N²) long-range reference sum against its
// finite Fejer-Yukawa window FFT replacement on a synthetic signal, checks
// the two results against a tolerance, and prints a reproducibility line.
//
// Usage:
//
//	longsum [flags]
//
// Examples:
//
//	longsum -n 1000 -eps 1e-6
//	longsum -n 100000 -eps 1e-8 -signal noise -seed 42
//	longsum -mode baseline -n 2000
//	longsum -mode fft -n 2000000 -eps 1e-6
//	longsum -mode reproduce -n 100000 -eps 1e-6
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-longsum/longsum/fftconv"
	"github.com/cwbudde/algo-longsum/longsum/kernel"
	"github.com/cwbudde/algo-longsum/longsum/repro"
	"github.com/cwbudde/algo-longsum/longsum/run"
	"github.com/cwbudde/algo-longsum/longsum/signal"
	"github.com/cwbudde/algo-longsum/longsum/window"
)

func main() {
	n := flag.Int("n", 1000, "signal length N")
	eps := flag.Float64("eps", 1e-6, "maximum tolerable absolute deviation")
	mu := flag.Float64("mu", 0.05, "kernel decay rate per unit separation")
	amp := flag.Float64("amp", 1, "kernel amplitude")
	sigKind := flag.String("signal", "expdecay", "signal type: expdecay, noise, impulse")
	sigRate := flag.Float64("decay", 0.01, "signal decay rate (expdecay)")
	seed := flag.Int64("seed", 1, "random seed (noise)")
	mode := flag.String("mode", "compare", "mode: compare, baseline, fft, reproduce")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: longsum [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Replaces a global O(N²) sum with a finite FY window + FFT convolution\n")
		fmt.Fprintf(os.Stderr, "and verifies |Δresult| <= eps against the reference.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  longsum -n 1000 -eps 1e-6\n")
		fmt.Fprintf(os.Stderr, "  longsum -mode fft -n 2000000 -eps 1e-6\n")
		fmt.Fprintf(os.Stderr, "  longsum -mode reproduce -n 100000 -eps 1e-6\n")
	}
	flag.Parse()

	k := kernel.Params{Mu: *mu, Amplitude: *amp}

	sig, err := makeSignal(*sigKind, *sigRate, *seed, *n)
	if err != nil {
		fail(err)
	}

	switch *mode {
	case "compare":
		report, err := run.Compare(sig, k, *eps)
		if err != nil {
			fail(err)
		}
		printBaseline(report.Baseline, *n, *eps)
		fmt.Println("\n--- replacing global sum with finite FY window + FFT convolution ---")
		printReplacement(report.Replacement)
		printVerdict(report, *eps)
		printReproduce(report.Replacement.Record)
		if !report.Verdict.Pass {
			os.Exit(1)
		}
	case "baseline":
		res, err := run.Baseline(sig, k)
		if err != nil {
			fail(err)
		}
		printBaseline(res, *n, *eps)
	case "fft":
		res, err := run.FFTReplacement(sig, k, *eps)
		if err != nil {
			fail(err)
		}
		printReplacement(res)
		printReproduce(res.Record)
	case "reproduce":
		win, err := window.Design(k, *n, *eps, signal.Peak(sig))
		if err != nil {
			fail(err)
		}
		plan, err := fftconv.NewPlan(*n, win)
		if err != nil {
			fail(err)
		}
		printReproduce(repro.NewRecord(plan, *eps, k))
	default:
		fmt.Fprintf(os.Stderr, "error: unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

func makeSignal(kind string, rate float64, seed int64, n int) ([]float64, error) {
	g := signal.NewGenerator(signal.WithSeed(seed))

	switch kind {
	case "expdecay":
		return g.ExponentialDecay(1, rate, n)
	case "noise":
		return g.WhiteNoise(1, n)
	case "impulse":
		return g.Impulse(n/2, n)
	default:
		return nil, fmt.Errorf("unknown signal type %q", kind)
	}
}

func aggregate(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

func printBaseline(res run.BaselineResult, n int, eps float64) {
	fmt.Println("[baseline] long-range Yukawa sum (reference)")
	fmt.Printf("N=%d  eps=%g\n", n, eps)
	fmt.Printf("time: %v\n", res.Elapsed)
	fmt.Printf("result: %.9f\n", aggregate(res.Values))
}

func printReplacement(res run.ReplacementResult) {
	fmt.Println("\n[fft-replacement] FY window + FFT convolution")
	fmt.Printf("grid M=%d  window: %s  radius: %d\n", res.GridSize, res.WindowName, res.WindowRadius)
	fmt.Printf("time: %v\n", res.Elapsed)
	fmt.Printf("result: %.9f\n", aggregate(res.Values))
}

func printVerdict(report run.Report, eps float64) {
	rel := "<="
	verdict := "PASS"
	if !report.Verdict.Pass {
		rel = ">"
		verdict = "FAIL"
	}
	fmt.Printf("|Δresult|: %.1e   (%s eps)  %s\n", report.Verdict.Delta, rel, verdict)
	if report.Verdict.Truncated {
		fmt.Printf("note: compared overlapping range [%d,%d) only\n",
			report.Verdict.Lo, report.Verdict.Hi)
	}
	fmt.Printf("speedup: %.1fx\n", report.Speedup)
}

func printReproduce(rec repro.Record) {
	fmt.Printf("\nreproduce: M=%d  window=%s  eps=%g  hash=%s\n",
		rec.GridSize, rec.WindowName, rec.Eps, rec.Hash())
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
