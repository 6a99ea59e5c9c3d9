package terrain

import (
	"sync"

	"island-gen/internal/core"
)

// Surface is the host terrain that owns the authoritative heightmap. Grids are
// always square with side Resolution.
type Surface interface {
	Heights(x, y, w, h int) *core.HeightGrid
	SetHeights(x, y int, g *core.HeightGrid)
	Resolution() int
}

// MemorySurface is an in-process Surface. Writes are clamped to [0, 1] like a
// host terrain would.
type MemorySurface struct {
	mu   sync.RWMutex
	grid *core.HeightGrid
}

// NewMemorySurface allocates a flat surface of the given resolution.
func NewMemorySurface(resolution int) *MemorySurface {
	return &MemorySurface{grid: core.NewHeightGrid(resolution, resolution)}
}

// Resolution returns the side length of the surface.
func (s *MemorySurface) Resolution() int { return s.grid.W }

// Heights copies the w*h window at (x, y). Cells outside the surface read as
// zero.
func (s *MemorySurface) Heights(x, y, w, h int) *core.HeightGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := core.NewHeightGrid(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if s.grid.In(x+i, y+j) {
				out.Set(i, j, s.grid.At(x+i, y+j))
			}
		}
	}
	return out
}

// SetHeights writes g with its origin at (x, y). Cells falling outside the
// surface are dropped.
func (s *MemorySurface) SetHeights(x, y int, g *core.HeightGrid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			if s.grid.In(x+i, y+j) {
				s.grid.Set(x+i, y+j, clamp01(g.At(i, j)))
			}
		}
	}
}

// Snapshot returns a copy of the full surface.
func (s *MemorySurface) Snapshot() *core.HeightGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
