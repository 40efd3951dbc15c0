package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// NewLattice allocates an empty side×side lattice.
func NewLattice(side int) *ByteGrid { return NewByteGrid(side, side) }

// FromRows copies a rectangular [][]uint8 into a new grid. rows[y][x] becomes
// the cell at column x of row y.
func FromRows(rows [][]uint8) (*ByteGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.data[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at column x of row y.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at column x of row y.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// InBounds reports whether (x, y) lies inside the grid. There is no wrapping.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &ByteGrid{W: g.W, H: g.H, data: data}
}

// Occupied counts the non-zero cells.
func (g *ByteGrid) Occupied() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CheckLattice validates that g is a non-empty square occupancy grid holding
// only 0 and 1, and returns its side length.
func CheckLattice(g *ByteGrid) (int, error) {
	if g == nil || g.W <= 0 || g.H <= 0 || len(g.data) == 0 {
		return 0, ErrEmptyGrid
	}
	if len(g.data) != g.W*g.H {
		return 0, ErrNonRectangular
	}
	if g.W != g.H {
		return 0, ErrNotSquare
	}
	for _, c := range g.data {
		if c > 1 {
			return 0, ErrNotBinary
		}
	}
	return g.W, nil
}
