// Package lattice generates random site lattices and analyses one lattice
// at a time: its cluster-size distribution and whether it spans.
package lattice

import (
	"math/rand/v2"

	"percolate/internal/burning"
	"percolate/internal/cluster"
	"percolate/internal/core"
)

// Trial is the analysis of a single lattice.
type Trial struct {
	// Sizes holds the size of every cluster, all positive.
	Sizes []int
	// Spans reports whether a cluster connects row 0 to the last row.
	Spans bool
}

// Largest returns the biggest cluster size of the trial, or 0.
func (t Trial) Largest() int {
	largest := 0
	for _, s := range t.Sizes {
		if s > largest {
			largest = s
		}
	}
	return largest
}

// Generate draws a side×side lattice whose sites are occupied independently
// with probability p.
func Generate(r *rand.Rand, side int, p float64) *core.ByteGrid {
	g := core.NewLattice(side)
	core.FillBernoulli(r, g.Cells(), p)
	return g
}

// Analyze labels the clusters of g and checks it for spanning. Both passes
// work on private buffers, so g is left untouched and Analyze may be called
// concurrently on distinct or shared lattices.
func Analyze(g *core.ByteGrid) (Trial, error) {
	spans, err := burning.Spans(g)
	if err != nil {
		return Trial{}, err
	}
	lab, err := cluster.Label(g)
	if err != nil {
		return Trial{}, err
	}
	return Trial{Sizes: lab.Sizes(), Spans: spans}, nil
}
