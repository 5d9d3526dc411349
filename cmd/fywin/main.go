// Command fywin prints design summaries of the Fejer-Yukawa window for one
// or more tolerances.
//
// Usage:
//
//	fywin [flags] [eps ...]
//
// Without arguments it prints designs for a default tolerance ladder.
//
// Examples:
//
//	fywin 1e-6
//	fywin -n 100000 -mu 0.02 1e-3 1e-6 1e-9
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-longsum/longsum/fftconv"
	"github.com/cwbudde/algo-longsum/longsum/kernel"
	"github.com/cwbudde/algo-longsum/longsum/window"
)

var defaultLadder = []float64{1e-3, 1e-6, 1e-9}

func main() {
	n := flag.Int("n", 100000, "signal length N the window is designed for")
	mu := flag.Float64("mu", 0.05, "kernel decay rate per unit separation")
	amp := flag.Float64("amp", 1, "kernel amplitude")
	peak := flag.Float64("peak", 1, "assumed signal peak amplitude")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fywin [flags] [eps ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints FY window design summaries per tolerance.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fywin 1e-6\n")
		fmt.Fprintf(os.Stderr, "  fywin -n 100000 -mu 0.02 1e-3 1e-6 1e-9\n")
	}
	flag.Parse()

	ladder := defaultLadder
	if args := flag.Args(); len(args) > 0 {
		ladder = nil
		for _, a := range args {
			eps, err := strconv.ParseFloat(a, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid eps %q: %v\n", a, err)
				os.Exit(2)
			}
			ladder = append(ladder, eps)
		}
	}

	k := kernel.Params{Mu: *mu, Amplitude: *amp}
	printDesigns(k, *n, *peak, ladder)
}

func printDesigns(k kernel.Params, n int, peak float64, ladder []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Eps\tFlat\tRadius\tGrid M\tMass\tTapered Mass\tError Bound\n")
	fmt.Fprintf(tw, "---\t----\t------\t------\t----\t------------\t-----------\n")

	for _, eps := range ladder {
		w, err := window.Design(k, n, eps, peak)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: eps=%g: %v\n", eps, err)
			continue
		}

		plan, err := fftconv.NewPlan(n, w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: eps=%g: %v\n", eps, err)
			continue
		}

		a := window.Analyze(w)
		fmt.Fprintf(tw, "%g\t%d\t%d\t%d\t%.6f\t%.6f\t%.3e\n",
			eps, a.FlatRadius, a.Radius, plan.GridSize(), a.Mass, a.TaperedMass, a.ErrorBound)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
