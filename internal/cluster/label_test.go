package cluster

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolate/internal/core"
)

func mustGrid(t testing.TB, rows [][]uint8) *core.ByteGrid {
	t.Helper()
	g, err := core.FromRows(rows)
	require.NoError(t, err)
	return g
}

func randomLattice(seed uint64, side int, p float64) *core.ByteGrid {
	g := core.NewLattice(side)
	core.FillBernoulli(core.NewStream(seed, 0).Source(), g.Cells(), p)
	return g
}

// floodSizes computes cluster sizes with a plain 4-neighbour BFS.
func floodSizes(g *core.ByteGrid) []int {
	seen := make([]bool, g.W*g.H)
	var sizes []int
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := g.Index(x, y)
			if g.At(x, y) == 0 || seen[start] {
				continue
			}
			seen[start] = true
			queue := []int{start}
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi]%g.W, queue[qi]/g.W
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) || g.At(vx, vy) == 0 {
						continue
					}
					if vi := g.Index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			sizes = append(sizes, len(queue))
		}
	}
	sort.Ints(sizes)
	return sizes
}

func sorted(sizes []int) []int {
	out := append([]int(nil), sizes...)
	sort.Ints(out)
	return out
}

// TestLabel_Simple checks a 4×4 lattice with three clusters.
//
//	1 1 0 1
//	0 1 0 1
//	1 0 0 1
//	1 1 0 0
func TestLabel_Simple(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 0, 0},
	})

	lab, err := Label(g)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3, 3}, sorted(lab.Sizes()))
	assert.Equal(t, 3, lab.Count())
	assert.Equal(t, 3, lab.Largest())
	assert.Equal(t, lab.At(0, 0), lab.At(1, 1))
	assert.NotEqual(t, lab.At(0, 0), lab.At(3, 0))
	assert.Equal(t, int32(0), lab.At(2, 2))
}

// TestLabel_MergeKeepsSmallerLabel builds a U shape whose arms get separate
// provisional labels until the bottom row joins them.
//
//	1 0 1
//	1 0 1
//	1 1 1
func TestLabel_MergeKeepsSmallerLabel(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	lab, err := Label(g)
	require.NoError(t, err)

	assert.Equal(t, []int{7}, lab.Sizes())
	assert.Equal(t, 2, lab.Allocated())
	for _, l := range lab.Labels() {
		if l != 0 {
			assert.Equal(t, int32(FirstLabel), l)
		}
	}

	masses := lab.Masses()
	require.Len(t, masses, FirstLabel+2)
	assert.Equal(t, 7, masses[FirstLabel])
	assert.Equal(t, 0, masses[FirstLabel+1], "merged label must not report a mass")

	links := lab.Links()
	assert.Equal(t, int32(FirstLabel), links[FirstLabel+1])
}

func TestLabel_StaircaseMergesChain(t *testing.T) {
	// Several provisional labels collapse through repeated merges.
	g := mustGrid(t, [][]uint8{
		{1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 1, 0, 1},
	})

	lab, err := Label(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 11}, sorted(lab.Sizes()))
}

func TestLabel_EmptyAndFull(t *testing.T) {
	empty, err := Label(core.NewLattice(5))
	require.NoError(t, err)
	assert.Empty(t, empty.Sizes())
	assert.Zero(t, empty.Largest())

	full := core.NewLattice(4)
	for i := range full.Cells() {
		full.Cells()[i] = 1
	}
	lab, err := Label(full)
	require.NoError(t, err)
	assert.Equal(t, []int{16}, lab.Sizes())
}

func TestLabel_SingleSite(t *testing.T) {
	lab, err := Label(mustGrid(t, [][]uint8{{1}}))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, lab.Sizes())
	assert.Equal(t, int32(FirstLabel), lab.At(0, 0))
}

func TestLabel_RejectsMalformedLattice(t *testing.T) {
	_, err := Label(mustGrid(t, [][]uint8{{1, 0, 1}}))
	assert.ErrorIs(t, err, core.ErrNotSquare)

	_, err = Label(mustGrid(t, [][]uint8{{1, 3}, {0, 1}}))
	assert.ErrorIs(t, err, core.ErrNotBinary)

	_, err = Label(nil)
	assert.ErrorIs(t, err, core.ErrEmptyGrid)
}

func TestLabel_DoesNotMutateInput(t *testing.T) {
	g := randomLattice(11, 16, 0.6)
	before := append([]uint8(nil), g.Cells()...)
	_, err := Label(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Cells())
}

func TestLabel_RandomLatticeProperties(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		p := 0.3 + float64(seed%8)*0.07
		g := randomLattice(seed, 24, p)

		lab, err := Label(g)
		require.NoError(t, err)

		// Mass conservation.
		total := 0
		for _, m := range lab.Masses() {
			if m > 0 {
				total += m
			}
		}
		assert.Equal(t, g.Occupied(), total, "seed %d", seed)

		// Every occupied site resolves to a root label.
		links := lab.Links()
		for idx, c := range g.Cells() {
			l := lab.Labels()[idx]
			if c == 0 {
				assert.Zero(t, l)
				continue
			}
			require.GreaterOrEqual(t, l, int32(FirstLabel), "seed %d site %d", seed, idx)
			assert.Equal(t, l, links[l], "seed %d site %d not a root", seed, idx)
		}

		// Sizes agree with an independent flood fill.
		assert.Equal(t, floodSizes(g), sorted(lab.Sizes()), "seed %d", seed)
	}
}

func TestLabel_RelabelIsIdempotent(t *testing.T) {
	for seed := uint64(100); seed < 110; seed++ {
		g := randomLattice(seed, 20, 0.55)
		first, err := Label(g)
		require.NoError(t, err)

		again := core.NewLattice(g.W)
		for idx, l := range first.Labels() {
			if l != 0 {
				again.Cells()[idx] = 1
			}
		}
		second, err := Label(again)
		require.NoError(t, err)

		assert.Equal(t, sorted(first.Sizes()), sorted(second.Sizes()), "seed %d", seed)
	}
}
