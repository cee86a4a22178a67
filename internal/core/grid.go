package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// A zero-sized grid is valid and holds no cells.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	g := &ByteGrid{}
	g.Resize(w, h)
	return g
}

// Resize reallocates the grid when the dimensions change. Contents are
// cleared either way.
func (g *ByteGrid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == g.W && h == g.H && g.data != nil {
		g.Clear()
		return
	}
	g.W, g.H = w, h
	g.data = make([]uint8, w*h)
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
