//go:build ebiten

package ui

import (
	"percolate/internal/core"
	"percolate/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type clusterProvider interface {
	ClusterLabels() []int32
}

const clusterAlpha = 200

// Overlay draws optional layers on top of the lattice. Key C toggles the
// cluster colouring.
type Overlay struct {
	sim          core.Sim
	scale        int
	showClusters bool
	painter      *render.GridPainter
}

// NewOverlay constructs an overlay for sim drawn at scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showClusters = !o.showClusters
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showClusters {
		return
	}
	provider, ok := o.sim.(clusterProvider)
	if !ok {
		return
	}
	labels := provider.ClusterLabels()
	size := o.sim.Size()
	if len(labels) != size.W*size.H || len(labels) == 0 {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	o.painter.Resize(size.W, size.H)
	o.painter.BlitLabels(screen, labels, clusterAlpha, o.scale)
}
