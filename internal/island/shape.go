package island

import (
	"island-gen/internal/core"
	rng "island-gen/pkg/core"
)

// Mask cell values.
const (
	Water uint8 = 0
	Land  uint8 = 1
	Shore uint8 = 2
)

// workingSide is the automaton resolution that produces the nicest islands.
const workingSide = 64

// WorkingSize returns the automaton grid side and the factor it is later
// scaled back up by for a host of the given resolution.
func WorkingSize(resolution int) (side, multiplier int) {
	multiplier = resolution / workingSide
	if multiplier < 1 {
		multiplier = 1
	}
	return resolution / multiplier, multiplier
}

// GenerateShape grows a w*h land/water mask: random fill, cfg.SmoothTimes
// automaton passes, then a full inversion so that land ends up enclosed by
// water.
func GenerateShape(cfg Config, w, h int, r *rng.RNG) *core.ByteGrid {
	mask := core.NewByteGrid(w, h)
	randomFill(mask, cfg.RandomFillPercent, r)
	for i := 0; i < cfg.SmoothTimes; i++ {
		smooth(mask, cfg.NeighboringWalls)
	}
	invert(mask)
	return mask
}

func randomFill(mask *core.ByteGrid, fillPercent int, r *rng.RNG) {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				cells[idx] = Land
				continue
			}
			if r.IntN(100) < fillPercent {
				cells[idx] = Land
			} else {
				cells[idx] = Water
			}
		}
	}
}

// smooth runs one automaton pass in place; cells later in the scan see the
// values already rewritten earlier in the same pass. Equal counts leave the
// cell unchanged.
func smooth(mask *core.ByteGrid, walls int) {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := surroundingLand(mask, x, y)
			idx := y*w + x
			if n > walls {
				cells[idx] = Land
			} else if n < walls {
				cells[idx] = Water
			}
		}
	}
}

// surroundingLand counts land among the 8 neighbours; off-grid cells count as
// land.
func surroundingLand(mask *core.ByteGrid, x, y int) int {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				count++
				continue
			}
			count += int(cells[ny*w+nx])
		}
	}
	return count
}

func invert(mask *core.ByteGrid) {
	cells := mask.Cells()
	for i, v := range cells {
		if v == Water {
			cells[i] = Land
		} else {
			cells[i] = Water
		}
	}
}
