//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"island-gen/internal/core"
)

// HeightPainter keeps one RGBA image in sync with a heightmap or mask.
type HeightPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewHeightPainter allocates a painter for a grid of size w*h.
func NewHeightPainter(w, h int) *HeightPainter {
	hp := &HeightPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	hp.img = ebiten.NewImage(w, h)
	return hp
}

// BlitHeights uploads the elevation grid and draws it scaled onto dst.
func (hp *HeightPainter) BlitHeights(dst *ebiten.Image, g *core.HeightGrid, scale int) {
	if g == nil || g.W != hp.w || g.H != hp.h {
		return
	}
	fillHeightRGBA(hp.buf, g.Cells())
	hp.draw(dst, scale)
}

// BlitMask draws the top-left w*h window of a classified mask. Masks larger
// than the painter are cropped.
func (hp *HeightPainter) BlitMask(dst *ebiten.Image, mask *core.ByteGrid, scale int) {
	if mask == nil || mask.W < hp.w || mask.H < hp.h {
		return
	}
	row := make([]uint8, hp.w)
	for y := 0; y < hp.h; y++ {
		for x := 0; x < hp.w; x++ {
			row[x] = mask.At(x, y)
		}
		fillPaletteRGBA(hp.buf[y*hp.w*4:(y+1)*hp.w*4], row, MaskPalette)
	}
	hp.draw(dst, scale)
}

func (hp *HeightPainter) draw(dst *ebiten.Image, scale int) {
	hp.img.WritePixels(hp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(hp.img, op)
}

// Size returns the dimensions of the underlying image.
func (hp *HeightPainter) Size() (int, int) { return hp.w, hp.h }
