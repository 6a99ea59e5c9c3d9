package island

import (
	"testing"

	"island-gen/internal/core"
	rng "island-gen/pkg/core"
)

func TestRingMaskEndToEnd(t *testing.T) {
	working := core.NewByteGrid(3, 3)
	for i := range working.Cells() {
		working.Cells()[i] = Land
	}
	working.Set(1, 1, Water)

	scaled := UpscaleTo(working, 6)
	if scaled.W != 6 || scaled.H != 6 {
		t.Fatalf("scaled to %dx%d, want 6x6", scaled.W, scaled.H)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			centre := x >= 2 && x <= 3 && y >= 2 && y <= 3
			want := Land
			if centre {
				want = Water
			}
			if got := scaled.At(x, y); got != want {
				t.Fatalf("scaled (%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}

	ClassifyEdges(scaled)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			centre := x >= 2 && x <= 3 && y >= 2 && y <= 3
			want := Land
			if centre {
				want = Shore
			}
			if got := scaled.At(x, y); got != want {
				t.Fatalf("classified (%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}
}

func TestClassifyEdgesOnlyMarksWaterTouchingLand(t *testing.T) {
	mask := core.NewByteGrid(7, 7)
	mask.Set(2, 2, Land)

	ClassifyEdges(mask)

	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			near := x >= 1 && x <= 3 && y >= 1 && y <= 3
			want := Water
			switch {
			case x == 2 && y == 2:
				want = Land
			case near:
				want = Shore
			}
			if got := mask.At(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}
}

func TestClassifyEdgesNeverTouchesBorder(t *testing.T) {
	mask := core.NewByteGrid(5, 5)
	mask.Set(1, 1, Land)
	mask.Set(3, 3, Land)

	ClassifyEdges(mask)

	for i := 0; i < 5; i++ {
		for _, p := range [][2]int{{i, 0}, {i, 4}, {0, i}, {4, i}} {
			if got := mask.At(p[0], p[1]); got != Water {
				t.Fatalf("border cell (%d,%d)=%d, want untouched water", p[0], p[1], got)
			}
		}
	}
	if mask.At(2, 2) != Shore {
		t.Fatal("interior water between land cells should be shore")
	}
}

func TestClassifyEdgesRandomMaskInvariants(t *testing.T) {
	cfg := DefaultConfig()
	shape := GenerateShape(cfg, 32, 32, rng.NewRNGFromString("invariants"))
	before := UpscaleTo(shape, 64)
	after := before.Clone()
	ClassifyEdges(after)

	w, h := after.W, after.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			orig, got := before.At(x, y), after.At(x, y)
			if orig == Land && got != Land {
				t.Fatalf("land cell (%d,%d) was reclassified to %d", x, y, got)
			}
			if got != Shore {
				continue
			}
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				t.Fatalf("border cell (%d,%d) marked as shore", x, y)
			}
			if !hasLandNeighbour(before, x, y) {
				t.Fatalf("shore cell (%d,%d) has no land neighbour", x, y)
			}
		}
	}
}

func hasLandNeighbour(mask *core.ByteGrid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if mask.In(x+dx, y+dy) && mask.At(x+dx, y+dy) == Land {
				return true
			}
		}
	}
	return false
}
