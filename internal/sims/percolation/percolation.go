// Package percolation exposes a single random lattice as an interactive
// simulation: Reset draws a lattice, Step advances the burning front.
package percolation

import (
	"percolate/internal/burning"
	"percolate/internal/cluster"
	"percolate/internal/core"
	"percolate/internal/lattice"
)

// Render palette indices written by Cells.
const (
	CellEmpty uint8 = iota
	CellOccupied
	CellBurnt
	CellFront
	CellSpanning
)

const (
	minSize = 8
	maxSize = 1024
)

// Percolation is a lattice together with its fire and cluster labels.
type Percolation struct {
	cfg  Config
	seed int64

	grid   *core.ByteGrid
	fire   *burning.Fire
	labels *cluster.Labeling
	cells  []uint8
}

// New creates a lattice simulation. Call Reset before stepping.
func New(cfg Config) *Percolation {
	if cfg.Size < minSize {
		cfg.Size = minSize
	}
	if cfg.Size > maxSize {
		cfg.Size = maxSize
	}
	if cfg.Sweeps <= 0 {
		cfg.Sweeps = 1
	}
	return &Percolation{cfg: cfg, cells: make([]uint8, cfg.Size*cfg.Size)}
}

// Name returns the simulation identifier.
func (s *Percolation) Name() string { return "percolation" }

// Size returns the lattice dimensions.
func (s *Percolation) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the render buffer, one palette index per site.
func (s *Percolation) Cells() []uint8 { return s.cells }

// Config returns the active configuration.
func (s *Percolation) Config() Config { return s.cfg }

// Grid exposes the current lattice.
func (s *Percolation) Grid() *core.ByteGrid { return s.grid }

// Reset draws a new lattice from seed, labels its clusters and ignites the
// top row.
func (s *Percolation) Reset(seed int64) {
	s.seed = seed
	rng := core.NewRNG(seed)
	s.grid = lattice.Generate(rng.Source(), s.cfg.Size, s.cfg.P)

	// Generate always yields a square binary lattice.
	s.fire, _ = burning.NewFire(s.grid)
	s.labels, _ = cluster.Label(s.grid)
	if len(s.cells) != s.cfg.Size*s.cfg.Size {
		s.cells = make([]uint8, s.cfg.Size*s.cfg.Size)
	}
	s.paint()
}

// Step advances the fire by Config.Sweeps time steps. It stops early once
// the fire dies out.
func (s *Percolation) Step() {
	if s.fire == nil {
		return
	}
	for i := 0; i < s.cfg.Sweeps; i++ {
		if !s.fire.Step() {
			break
		}
	}
	s.paint()
}

// Done reports whether the fire has burnt out.
func (s *Percolation) Done() bool { return s.fire == nil || !s.fire.Burning() }

// ClusterLabels returns the root label of every site, 0 for empty sites.
func (s *Percolation) ClusterLabels() []int32 {
	if s.labels == nil {
		return nil
	}
	return s.labels.Labels()
}

// Stats summarises the current lattice.
type Stats struct {
	Occupied int
	Clusters int
	Largest  int
	Time     int32
	Burning  bool
	Spans    bool
	// Steps is the shortest top-to-bottom path length once the fire spans.
	Steps int
}

// Stats returns the lattice summary.
func (s *Percolation) Stats() Stats {
	if s.grid == nil {
		return Stats{}
	}
	return Stats{
		Occupied: s.grid.Occupied(),
		Clusters: s.labels.Count(),
		Largest:  s.labels.Largest(),
		Time:     s.fire.Elapsed(),
		Burning:  s.fire.Burning(),
		Spans:    s.fire.Spans(),
		Steps:    s.fire.Steps(),
	}
}

func (s *Percolation) paint() {
	times := s.fire.Times()
	front := s.fire.Elapsed()
	burnt, current := CellBurnt, CellFront
	if s.fire.Spans() {
		burnt = CellSpanning
	}
	for i, t := range times {
		switch {
		case t == burning.Empty:
			s.cells[i] = CellEmpty
		case t == burning.Unburned:
			s.cells[i] = CellOccupied
		case t == front && s.fire.Burning():
			s.cells[i] = current
		default:
			s.cells[i] = burnt
		}
	}
}

func init() {
	core.Register("percolation", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
