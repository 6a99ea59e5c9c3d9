package island

import "island-gen/internal/core"

// ClassifyEdges marks every water cell in the 3x3 neighbourhood of a land cell
// as Shore. Border rows and columns are never visited or marked.
func ClassifyEdges(mask *core.ByteGrid) {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if cells[y*w+x] != Land {
				continue
			}
			for ny := y - 1; ny <= y+1; ny++ {
				if ny == 0 || ny == h-1 {
					continue
				}
				for nx := x - 1; nx <= x+1; nx++ {
					if nx == 0 || nx == w-1 {
						continue
					}
					if idx := ny*w + nx; cells[idx] == Water {
						cells[idx] = Shore
					}
				}
			}
		}
	}
}
