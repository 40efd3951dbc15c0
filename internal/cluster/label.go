package cluster

import (
	"fmt"

	"percolate/internal/core"
)

// Labeling is the outcome of one Hoshen-Kopelman pass over a lattice.
type Labeling struct {
	side   int
	labels []int32
	forest *forest
}

// Label runs Hoshen-Kopelman on g. The lattice is read only; labels are
// written to a private buffer owned by the returned Labeling.
//
// Returns core.ErrEmptyGrid, core.ErrNotSquare or core.ErrNotBinary when g is
// not a well-formed occupancy lattice.
func Label(g *core.ByteGrid) (*Labeling, error) {
	side, err := core.CheckLattice(g)
	if err != nil {
		return nil, fmt.Errorf("label clusters: %w", err)
	}

	cells := g.Cells()
	labels := make([]int32, len(cells))
	f := newForest(len(cells)/2 + 1)

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			idx := i*side + j
			if cells[idx] == 0 {
				continue
			}

			var left, above int32
			if j > 0 {
				left = f.find(labels[idx-1])
			}
			if i > 0 {
				above = f.find(labels[idx-side])
			}

			switch {
			case left == 0 && above == 0:
				labels[idx] = f.allocate()
			case left == 0:
				labels[idx] = above
				f.grow(above, 1)
			case above == 0:
				labels[idx] = left
				f.grow(left, 1)
			case left == above:
				labels[idx] = above
				f.grow(above, 1)
			default:
				labels[idx] = f.union(above, left)
			}
		}
	}

	for idx, label := range labels {
		if label != 0 {
			labels[idx] = f.find(label)
		}
	}

	return &Labeling{side: side, labels: labels, forest: f}, nil
}

// Side returns the lattice side length.
func (l *Labeling) Side() int { return l.side }

// Labels exposes the relabelled lattice in row-major order. Every occupied
// site holds the root label of its cluster, empty sites hold 0.
func (l *Labeling) Labels() []int32 { return l.labels }

// At returns the cluster label of the site at column x of row y.
func (l *Labeling) At(x, y int) int32 { return l.labels[y*l.side+x] }

// Links returns a copy of the parent table indexed by label. A label is a
// root iff links[label] == label.
func (l *Labeling) Links() []int32 {
	links := make([]int32, len(l.forest.nodes))
	for i, n := range l.forest.nodes {
		links[i] = n.parent
	}
	return links
}

// Root resolves label to the root of its cluster.
func (l *Labeling) Root(label int32) int32 {
	if label < 0 || int(label) >= len(l.forest.nodes) {
		return 0
	}
	return l.forest.find(label)
}

// Masses returns the mass sequence indexed by label. Reserved labels and
// labels merged into another cluster report 0.
func (l *Labeling) Masses() []int {
	masses := make([]int, len(l.forest.nodes))
	for i, n := range l.forest.nodes {
		if n.alive {
			masses[i] = n.mass
		}
	}
	return masses
}

// Sizes returns the size of every cluster, in order of root label.
func (l *Labeling) Sizes() []int {
	sizes := make([]int, 0, l.Count())
	for _, n := range l.forest.nodes[FirstLabel:] {
		if n.alive {
			sizes = append(sizes, n.mass)
		}
	}
	return sizes
}

// Count returns the number of clusters.
func (l *Labeling) Count() int {
	n := 0
	for _, node := range l.forest.nodes[FirstLabel:] {
		if node.alive {
			n++
		}
	}
	return n
}

// Largest returns the size of the biggest cluster, or 0 for an empty lattice.
func (l *Labeling) Largest() int {
	largest := 0
	for _, node := range l.forest.nodes[FirstLabel:] {
		if node.alive && node.mass > largest {
			largest = node.mass
		}
	}
	return largest
}

// Allocated returns how many labels the scan handed out, merged ones
// included.
func (l *Labeling) Allocated() int { return len(l.forest.nodes) - FirstLabel }
