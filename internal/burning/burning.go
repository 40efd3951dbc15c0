// Package burning decides whether an occupancy lattice percolates from its
// top row to its bottom row using the burning method: every occupied site of
// row 0 is set on fire, and at each time step the fire spreads to the
// occupied, unburned orthogonal neighbours of the sites that caught fire in
// the previous step. Boundaries are free in both directions.
package burning

import (
	"fmt"

	"percolate/internal/core"
)

const (
	// Empty marks a site without occupation.
	Empty int32 = 0
	// Unburned marks an occupied site the fire has not reached.
	Unburned int32 = 1
	// Ignition is the arrival time of the seeded top row.
	Ignition int32 = 2
)

var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Fire is the state of one burn over a private copy of a lattice.
type Fire struct {
	side  int
	times []int32
	front []int
	next  []int
	t     int32
	spans bool
	steps int
}

// NewFire copies g and ignites its top row. The caller's lattice is never
// written to.
func NewFire(g *core.ByteGrid) (*Fire, error) {
	side, err := core.CheckLattice(g)
	if err != nil {
		return nil, fmt.Errorf("burn lattice: %w", err)
	}
	cells := g.Cells()
	f := &Fire{
		side:  side,
		times: make([]int32, len(cells)),
		t:     Ignition,
	}
	for i, c := range cells {
		f.times[i] = int32(c)
	}
	for x := 0; x < side; x++ {
		if f.times[x] != Unburned {
			continue
		}
		f.times[x] = Ignition
		f.front = append(f.front, x)
		if side == 1 {
			f.spans = true
		}
	}
	return f, nil
}

// Step spreads the fire by one time step and reports whether any site
// caught fire.
func (f *Fire) Step() bool {
	if len(f.front) == 0 {
		return false
	}
	t := f.t + 1
	f.next = f.next[:0]
	last := f.side - 1
	for _, idx := range f.front {
		x, y := idx%f.side, idx/f.side
		for _, d := range offsets {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx > last || ny < 0 || ny > last {
				continue
			}
			n := ny*f.side + nx
			if f.times[n] != Unburned {
				continue
			}
			f.times[n] = t
			f.next = append(f.next, n)
			if ny == last && !f.spans {
				f.spans = true
				f.steps = int(t - Ignition)
			}
		}
	}
	if len(f.next) > 0 {
		f.t = t
	}
	f.front, f.next = f.next, f.front
	return len(f.front) > 0
}

// Burning reports whether the fire front is still non-empty.
func (f *Fire) Burning() bool { return len(f.front) > 0 }

// Front returns the row-major indices of the sites that caught fire in the
// latest step. The slice is reused by the next Step.
func (f *Fire) Front() []int { return f.front }

// Side returns the lattice side length.
func (f *Fire) Side() int { return f.side }

// Times exposes the arrival-time map in row-major order: Empty, Unburned, or
// the step (≥ Ignition) at which the site caught fire.
func (f *Fire) Times() []int32 { return f.times }

// Spans reports whether the fire has reached the bottom row.
func (f *Fire) Spans() bool { return f.spans }

// Steps returns the number of time steps the fire needed to reach the
// bottom row: the shortest top-to-bottom path length in bonds. It is 0 when
// the lattice does not span or has a single row.
func (f *Fire) Steps() int { return f.steps }

// Elapsed returns the latest arrival time written to the lattice.
func (f *Fire) Elapsed() int32 { return f.t }

// Burn runs the fire until it reaches the bottom row or dies out.
func Burn(g *core.ByteGrid) (*Fire, error) {
	f, err := NewFire(g)
	if err != nil {
		return nil, err
	}
	for !f.spans && f.Step() {
	}
	return f, nil
}

// BurnAll runs the fire until no new site catches fire, producing the full
// arrival-time map of every site connected to the top row.
func BurnAll(g *core.ByteGrid) (*Fire, error) {
	f, err := NewFire(g)
	if err != nil {
		return nil, err
	}
	for f.Step() {
	}
	return f, nil
}

// Spans reports whether g percolates from top to bottom.
func Spans(g *core.ByteGrid) (bool, error) {
	f, err := Burn(g)
	if err != nil {
		return false, err
	}
	return f.spans, nil
}
