package model

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

var (
	// ErrInvalidParams indicates parameters rejected before any lattice is drawn.
	ErrInvalidParams = errors.New("model: invalid parameters")
	// ErrTrialFailed indicates a trial whose analysis failed; the run is aborted.
	ErrTrialFailed = errors.New("model: trial failed")
)

// Params describes one Monte Carlo run.
type Params struct {
	// P is the site occupation probability, in [0, 1].
	P float64
	// Trials is the number of independent lattices.
	Trials int
	// Size is the lattice side L.
	Size int
	// Workers bounds the number of lattices analysed at once. 0 uses
	// runtime.NumCPU().
	Workers int
	// Seed selects the random streams.
	Seed uint64
}

// Validate rejects parameters that cannot produce a well-defined estimate.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.P) || p.P < 0 || p.P > 1:
		return fmt.Errorf("%w: probability %v outside [0, 1]", ErrInvalidParams, p.P)
	case p.Trials <= 0:
		return fmt.Errorf("%w: trial count %d must be positive", ErrInvalidParams, p.Trials)
	case p.Size <= 0:
		return fmt.Errorf("%w: lattice size %d must be positive", ErrInvalidParams, p.Size)
	case p.Workers < 0:
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidParams, p.Workers)
	}
	return nil
}

// EffectiveWorkers returns the pool size used for p: Workers, defaulted to
// the CPU count and capped at the number of trials.
func (p Params) EffectiveWorkers() int {
	n := p.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > p.Trials {
		n = p.Trials
	}
	if n < 1 {
		n = 1
	}
	return n
}
