package island

import (
	"slices"
	"testing"

	"island-gen/internal/core"
	rng "island-gen/pkg/core"
)

func TestGenerateShapeDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []string{"0", "reef", "atoll-42", "🌴"} {
		a := GenerateShape(cfg, 64, 64, rng.NewRNGFromString(seed))
		b := GenerateShape(cfg, 64, 64, rng.NewRNGFromString(seed))
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("seed %q produced different masks", seed)
		}
	}

	a := GenerateShape(cfg, 64, 64, rng.NewRNGFromString("reef"))
	b := GenerateShape(cfg, 64, 64, rng.NewRNGFromString("lagoon"))
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds should produce different masks")
	}
}

func TestGenerateShapeInvertsPolarity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmoothTimes = 0
	cfg.RandomFillPercent = 0

	mask := GenerateShape(cfg, 3, 3, rng.NewRNG(1))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Water
			if x == 1 && y == 1 {
				want = Land
			}
			if got := mask.At(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}
}

func TestGenerateShapeAcceptsDegenerateFill(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomFillPercent = 100

	mask := GenerateShape(cfg, 16, 16, rng.NewRNG(7))
	if got := mask.Count(Water); got != 16*16 {
		t.Fatalf("full fill should invert to all water, got %d water cells", got)
	}
}

func TestGenerateShapeOnlyBinaryValues(t *testing.T) {
	mask := GenerateShape(DefaultConfig(), 40, 30, rng.NewRNGFromString("binary"))
	if mask.W != 40 || mask.H != 30 {
		t.Fatalf("mask is %dx%d, want 40x30", mask.W, mask.H)
	}
	for i, v := range mask.Cells() {
		if v != Water && v != Land {
			t.Fatalf("cell %d has non-binary value %d", i, v)
		}
	}
}

func TestSurroundingLandCountsOffGridAsLand(t *testing.T) {
	mask := core.NewByteGrid(3, 3)
	if got := surroundingLand(mask, 0, 0); got != 5 {
		t.Fatalf("corner count=%d, want 5", got)
	}
	if got := surroundingLand(mask, 1, 0); got != 3 {
		t.Fatalf("edge count=%d, want 3", got)
	}
	if got := surroundingLand(mask, 1, 1); got != 0 {
		t.Fatalf("centre count=%d, want 0", got)
	}
}

func TestSmoothLeavesThresholdCellsUnchanged(t *testing.T) {
	mask := core.NewByteGrid(3, 3)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}} {
		mask.Set(p[0], p[1], Land)
	}

	smooth(mask, 4)

	// The centre sees exactly four land neighbours and keeps its value.
	if got := mask.At(1, 1); got != Water {
		t.Fatalf("centre=%d, want unchanged water", got)
	}
	// The bottom-right corner sees five off-grid cells and flips to land.
	if got := mask.At(2, 2); got != Land {
		t.Fatalf("corner=%d, want land", got)
	}
}

func TestWorkingSize(t *testing.T) {
	tests := []struct {
		res, side, mult int
	}{
		{513, 64, 8},
		{1025, 64, 16},
		{257, 64, 4},
		{128, 64, 2},
		{100, 100, 1},
		{33, 33, 1},
	}
	for _, tt := range tests {
		side, mult := WorkingSize(tt.res)
		if side != tt.side || mult != tt.mult {
			t.Fatalf("WorkingSize(%d)=(%d,%d), want (%d,%d)", tt.res, side, mult, tt.side, tt.mult)
		}
	}
}
