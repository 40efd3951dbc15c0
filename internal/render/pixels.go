// Package render converts lattice buffers into RGBA pixels.
package render

import "image/color"

// Palette maps cell values to colours. Values past the end use the last
// entry.
type Palette []color.RGBA

// LatticePalette colours the cell values written by the percolation sim:
// empty, occupied, burnt, fire front, spanning cluster.
var LatticePalette = Palette{
	{R: 12, G: 12, B: 16, A: 255},
	{R: 120, G: 124, B: 136, A: 255},
	{R: 156, G: 52, B: 28, A: 255},
	{R: 255, G: 204, B: 64, A: 255},
	{R: 232, G: 96, B: 40, A: 255},
}

// FillPalette converts cell values into RGBA pixels in buf, which must hold
// 4*len(cells) bytes. An empty palette clears buf to transparent black.
func FillPalette(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// LabelColor returns a stable, well-spread colour for a cluster label.
// Label 0 (empty) is transparent.
func LabelColor(label int32) color.RGBA {
	if label <= 0 {
		return color.RGBA{}
	}
	h := uint32(label) * 2654435761
	h ^= h >> 15
	return color.RGBA{
		R: 64 + uint8(h)%192,
		G: 64 + uint8(h>>8)%192,
		B: 64 + uint8(h>>16)%192,
		A: 255,
	}
}

// FillLabels colours every site by its cluster label with the given alpha.
// Empty sites stay transparent.
func FillLabels(buf []byte, labels []int32, alpha uint8) {
	for i, l := range labels {
		base := i * 4
		if l == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		col := LabelColor(l)
		// Premultiplied alpha, as ebiten expects.
		buf[base+0] = uint8(uint16(col.R) * uint16(alpha) / 255)
		buf[base+1] = uint8(uint16(col.G) * uint16(alpha) / 255)
		buf[base+2] = uint8(uint16(col.B) * uint16(alpha) / 255)
		buf[base+3] = alpha
	}
}
