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

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	out := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// HeightGrid stores a 2D grid of elevations in row-major order.
type HeightGrid struct {
	W, H int
	data []float32
}

// NewHeightGrid allocates a zeroed height grid with the given dimensions.
func NewHeightGrid(w, h int) *HeightGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &HeightGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice.
func (g *HeightGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *HeightGrid) Index(x, y int) int { return y*g.W + x }

// At returns the height at (x, y).
func (g *HeightGrid) At(x, y int) float32 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *HeightGrid) Set(x, y int, v float32) { g.data[y*g.W+x] = v }

// In reports whether (x, y) lies inside the grid.
func (g *HeightGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// MinMax returns the lowest and highest heights in the grid.
func (g *HeightGrid) MinMax() (float32, float32) {
	lo, hi := g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Clone returns a deep copy of the grid.
func (g *HeightGrid) Clone() *HeightGrid {
	out := &HeightGrid{W: g.W, H: g.H, data: make([]float32, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear fills the grid with zeros.
func (g *HeightGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
