package cluster_test

import (
	"testing"

	"percolate/internal/cluster"
	"percolate/internal/core"
)

// BenchmarkLabel measures Hoshen-Kopelman on a 512×512 lattice near the
// percolation threshold.
func BenchmarkLabel(b *testing.B) {
	g := core.NewLattice(512)
	core.FillBernoulli(core.NewStream(42, 0).Source(), g.Cells(), 0.5927)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.Label(g); err != nil {
			b.Fatal(err)
		}
	}
}
