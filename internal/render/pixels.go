package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Gradient stops from the sea floor up to the land plateau.
var heightStops = []struct {
	at  float64
	col gg.RGBA
}{
	{0, gg.Hex("#0b1d3a")},
	{0.35, gg.Hex("#1f5f8b")},
	{0.7, gg.Hex("#5fb3c6")},
	{0.85, gg.Hex("#e3d29a")},
	{1, gg.Hex("#4f8f3a")},
}

// MaskPalette colours mask values: water, land, shore.
var MaskPalette = []color.RGBA{
	{R: 20, G: 60, B: 120, A: 255},
	{R: 80, G: 150, B: 70, A: 255},
	{R: 230, G: 210, B: 150, A: 255},
}

// HeightColor maps a normalised elevation in [0, 1] onto the terrain gradient.
func HeightColor(t float64) gg.RGBA {
	if t <= heightStops[0].at {
		return heightStops[0].col
	}
	for i := 1; i < len(heightStops); i++ {
		lo, hi := heightStops[i-1], heightStops[i]
		if t <= hi.at {
			return lo.col.Lerp(hi.col, (t-lo.at)/(hi.at-lo.at))
		}
	}
	return heightStops[len(heightStops)-1].col
}

// normalizer returns a function mapping heights onto [0, 1] relative to peak.
// A flat or empty grid maps everything to zero.
func normalizer(cells []float32) func(float32) float64 {
	var peak float32
	for _, v := range cells {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return func(float32) float64 { return 0 }
	}
	return func(v float32) float64 {
		t := float64(v / peak)
		if t < 0 {
			return 0
		}
		return t
	}
}

// fillHeightRGBA converts elevations into RGBA pixels in buf.
func fillHeightRGBA(buf []byte, cells []float32) {
	norm := normalizer(cells)
	for i, v := range cells {
		c := HeightColor(norm(v)).Color()
		r, g, b, a := c.RGBA()
		base := i * 4
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
