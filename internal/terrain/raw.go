package terrain

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"island-gen/internal/core"
)

// ErrRawSize is returned when a RAW file is not a square 16-bit heightmap.
var ErrRawSize = errors.New("raw heightmap is not square")

// WriteRaw encodes g as unsigned 16-bit little-endian samples, row by row,
// mapping [0, 1] onto [0, 65535].
func WriteRaw(w io.Writer, g *core.HeightGrid) error {
	bw := bufio.NewWriter(w)
	var buf [2]byte
	for _, v := range g.Cells() {
		binary.LittleEndian.PutUint16(buf[:], uint16(math.Round(float64(clamp01(v))*math.MaxUint16)))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRaw decodes a square 16-bit little-endian heightmap.
func ReadRaw(r io.Reader) (*core.HeightGrid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd byte count %d: %w", len(data), ErrRawSize)
	}
	samples := len(data) / 2
	side := int(math.Sqrt(float64(samples)))
	if side == 0 || side*side != samples {
		return nil, fmt.Errorf("%d samples: %w", samples, ErrRawSize)
	}
	g := core.NewHeightGrid(side, side)
	cells := g.Cells()
	for i := range cells {
		cells[i] = float32(binary.LittleEndian.Uint16(data[2*i:])) / math.MaxUint16
	}
	return g, nil
}

// SaveRaw writes g to path in RAW format.
func SaveRaw(path string, g *core.HeightGrid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRaw(f, g); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadRaw reads a RAW heightmap from path.
func LoadRaw(path string) (*core.HeightGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadRaw(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}
