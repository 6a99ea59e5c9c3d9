package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"island-gen/internal/core"
)

func TestHeightColorEndpoints(t *testing.T) {
	if got := HeightColor(-1); got != heightStops[0].col {
		t.Fatalf("below range=%v, want first stop", got)
	}
	if got := HeightColor(2); got != heightStops[len(heightStops)-1].col {
		t.Fatalf("above range=%v, want last stop", got)
	}
	mid := HeightColor(0.175)
	lo, hi := heightStops[0].col, heightStops[1].col
	if mid.B < min(lo.B, hi.B) || mid.B > max(lo.B, hi.B) {
		t.Fatalf("interpolated blue %v outside [%v, %v]", mid.B, lo.B, hi.B)
	}
}

func TestFillHeightRGBANormalisesToPeak(t *testing.T) {
	cells := []float32{0, 0.05, 0.1}
	buf := make([]byte, 4*len(cells))
	fillHeightRGBA(buf, cells)

	want := HeightColor(1).Color().(color.NRGBA)
	if buf[8] != want.R || buf[9] != want.G || buf[10] != want.B {
		t.Fatalf("peak pixel=%v, want %v", buf[8:12], want)
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}

func TestFillHeightRGBAFlatGrid(t *testing.T) {
	cells := make([]float32, 4)
	buf := make([]byte, 16)
	fillHeightRGBA(buf, cells)
	want := HeightColor(0).Color().(color.NRGBA)
	if buf[0] != want.R || buf[12] != want.R {
		t.Fatal("flat grid should render as the lowest stop")
	}
}

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{2, 9}, MaskPalette)
	shore := MaskPalette[2]
	if buf[4] != shore.R || buf[5] != shore.G || buf[6] != shore.B {
		t.Fatalf("out-of-range value should use last colour, got %v", buf[4:8])
	}

	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d=%d, want cleared", i, b)
		}
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	g := core.NewHeightGrid(8, 8)
	g.Set(4, 4, 0.1)
	mask := core.NewByteGrid(8, 8)
	mask.Set(3, 3, 1)

	heightPath := filepath.Join(dir, "height.png")
	maskPath := filepath.Join(dir, "mask.png")
	if err := SavePNG(heightPath, g); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SaveMaskPNG(maskPath, mask); err != nil {
		t.Fatalf("SaveMaskPNG: %v", err)
	}
	for _, p := range []string{heightPath, maskPath} {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Fatalf("preview %s not written: %v", p, err)
		}
	}

	if err := SavePNG(filepath.Join(dir, "missing", "x.png"), g); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestMaskPixmapColours(t *testing.T) {
	mask := core.NewByteGrid(2, 1)
	mask.Set(1, 0, 2)
	pm := MaskPixmap(mask)
	got := pm.GetPixel(1, 0)
	want := MaskPalette[2]
	if uint8(got.R*255+0.5) != want.R || uint8(got.B*255+0.5) != want.B {
		t.Fatalf("shore pixel=%+v, want %+v", got, want)
	}
}
