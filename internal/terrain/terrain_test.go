package terrain

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"island-gen/internal/core"
)

func TestMemorySurfaceClampsWrites(t *testing.T) {
	s := NewMemorySurface(4)
	g := core.NewHeightGrid(2, 1)
	g.Set(0, 0, -0.5)
	g.Set(1, 0, 1.5)
	s.SetHeights(1, 1, g)

	got := s.Heights(0, 0, 4, 4)
	if v := got.At(1, 1); v != 0 {
		t.Fatalf("expected negative write to clamp to 0, got %v", v)
	}
	if v := got.At(2, 1); v != 1 {
		t.Fatalf("expected overflow write to clamp to 1, got %v", v)
	}
}

func TestMemorySurfaceWindowOutOfBounds(t *testing.T) {
	s := NewMemorySurface(3)
	full := core.NewHeightGrid(3, 3)
	for i := range full.Cells() {
		full.Cells()[i] = 0.5
	}
	s.SetHeights(0, 0, full)

	win := s.Heights(2, 2, 2, 2)
	if win.At(0, 0) != 0.5 {
		t.Fatalf("in-bounds cell=%v, want 0.5", win.At(0, 0))
	}
	if win.At(1, 1) != 0 {
		t.Fatalf("out-of-bounds cell=%v, want 0", win.At(1, 1))
	}

	// Writes past the edge are dropped without panicking.
	s.SetHeights(2, 2, full)
	if s.Resolution() != 3 {
		t.Fatalf("resolution changed to %d", s.Resolution())
	}
}

func TestRawRoundTrip(t *testing.T) {
	g := core.NewHeightGrid(3, 3)
	copy(g.Cells(), []float32{0, 0.1, 0.25, 0.5, 0.75, 1, 0.33, 0.66, 0.99})

	var buf bytes.Buffer
	if err := WriteRaw(&buf, g); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if buf.Len() != 18 {
		t.Fatalf("expected 18 bytes, got %d", buf.Len())
	}
	back, err := ReadRaw(&buf)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	for i, want := range g.Cells() {
		if got := back.Cells()[i]; math.Abs(float64(got-want)) > 1.0/65535 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestReadRawRejectsNonSquare(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader(make([]byte, 6)))
	if !errors.Is(err, ErrRawSize) {
		t.Fatalf("expected ErrRawSize, got %v", err)
	}
	_, err = ReadRaw(bytes.NewReader(make([]byte, 3)))
	if !errors.Is(err, ErrRawSize) {
		t.Fatalf("expected ErrRawSize for odd length, got %v", err)
	}
}

func TestSaveLoadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.raw")
	g := core.NewHeightGrid(2, 2)
	g.Set(1, 0, 0.1)
	if err := SaveRaw(path, g); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}
	back, err := LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if back.W != 2 || back.H != 2 {
		t.Fatalf("loaded %dx%d, want 2x2", back.W, back.H)
	}
}
