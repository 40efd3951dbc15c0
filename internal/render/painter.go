//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a cell buffer to a texture and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Resize reallocates the texture when the grid dimensions change.
func (p *GridPainter) Resize(w, h int) {
	if w == p.w && h == p.h {
		return
	}
	p.img.Dispose()
	*p = *NewGridPainter(w, h)
}

// Blit paints cells through palette and draws the texture at the given scale.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette Palette, scale int) {
	FillPalette(p.buf, cells, palette)
	p.draw(screen, scale)
}

// BlitLabels draws a translucent cluster-colour layer.
func (p *GridPainter) BlitLabels(screen *ebiten.Image, labels []int32, alpha uint8, scale int) {
	FillLabels(p.buf, labels, alpha)
	p.draw(screen, scale)
}

func (p *GridPainter) draw(screen *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
