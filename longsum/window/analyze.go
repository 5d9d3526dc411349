package window

// Analysis holds numerically computed properties of a designed window.
type Analysis struct {
	// Radius is the support radius R.
	Radius int
	// FlatRadius is the untapered inner radius F.
	FlatRadius int
	// Mass is the two-sided coefficient sum, the window's DC response.
	Mass float64
	// TaperedMass is the coefficient mass inside the Fejer ramp.
	TaperedMass float64
	// ErrorBound is the per-index deviation bound vs. the full-range kernel.
	ErrorBound float64
}

// Analyze computes summary properties of a designed window.
func Analyze(w *Window) Analysis {
	if w == nil {
		return Analysis{}
	}

	mass := 0.0
	ramp := 0.0
	for r, c := range w.coeffs {
		if r == 0 {
			mass += c
			continue
		}
		// Two-sided: offsets -r and +r contribute equally.
		mass += 2 * c
		if r > w.flat {
			ramp += 2 * c
		}
	}

	return Analysis{
		Radius:      w.radius,
		FlatRadius:  w.flat,
		Mass:        mass,
		TaperedMass: ramp,
		ErrorBound:  w.bound,
	}
}
