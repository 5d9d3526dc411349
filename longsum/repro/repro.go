// Package repro derives a deterministic identity for a run configuration so
// that equivalent runs can be audited and recognized across invocations.
//
// The hash is a pure function of the logical parameters: grid size, window
// type, tolerance, and kernel parameters. It carries no process state and is
// stable across platforms for identical inputs.
package repro

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/cwbudde/algo-longsum/longsum/fftconv"
	"github.com/cwbudde/algo-longsum/longsum/kernel"
)

// Record captures the parameters that determine a run's replacement path.
// Immutable after creation.
type Record struct {
	// GridSize is the FFT grid size M.
	GridSize int
	// WindowName identifies the window type.
	WindowName string
	// Eps is the caller's tolerance.
	Eps float64
	// Kernel holds the interaction kernel parameters.
	Kernel kernel.Params
}

// NewRecord builds a record from a finalized plan.
func NewRecord(plan *fftconv.Plan, eps float64, k kernel.Params) Record {
	return Record{
		GridSize:   plan.GridSize(),
		WindowName: plan.WindowName(),
		Eps:        eps,
		Kernel:     k,
	}
}

// Canonical returns the canonical serialization the hash is computed over.
// Integers are decimal, floats use hex notation, fields are
// order-fixed and semicolon-separated.
func (r Record) Canonical() string {
	return "grid=" + strconv.Itoa(r.GridSize) +
		";window=" + r.WindowName +
		";eps=" + strconv.FormatFloat(r.Eps, 'x', -1, 64) +
		";" + r.Kernel.Canonical()
}

// Hash returns the hex-encoded SHA-256 of the canonical serialization.
// Identical logical configurations always hash identically; any change to
// grid size, window, eps, or kernel parameters changes the hash.
func (r Record) Hash() string {
	sum := sha256.Sum256([]byte(r.Canonical()))

	return hex.EncodeToString(sum[:])
}
