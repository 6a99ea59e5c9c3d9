//go:build ebiten

package ui

import (
	"image/color"

	"island-gen/internal/core"
	"island-gen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var keyHelp = []string{
	"G  generate island",
	"R  regenerate last seed",
	"S  start shores",
	"C  cancel shores",
	"P  add noise",
	"B  blend",
	"F  reset sea floor",
	"M  toggle mask",
	"H  toggle help",
	"Q  quit",
}

// Overlay draws optional debugging visuals on top of the heightmap: the
// classified mask (M) and the key bindings (H).
type Overlay struct {
	painter  *render.HeightPainter
	scale    int
	showMask bool
	showHelp bool
	backdrop *ebiten.Image
}

// NewOverlay constructs an overlay for a w*h view drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{painter: render.NewHeightPainter(w, h), scale: scale, showHelp: true}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.RGBA{A: 170})
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMask = !o.showMask
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// ShowingMask reports whether the mask layer replaces the heightmap.
func (o *Overlay) ShowingMask() bool { return o.showMask }

// Draw paints the enabled layers. mask may be nil before the first island.
func (o *Overlay) Draw(screen *ebiten.Image, mask *core.ByteGrid) {
	if o.showMask && mask != nil {
		o.painter.BlitMask(screen, mask, o.scale)
	}
	if o.showHelp {
		o.drawHelp(screen)
	}
}

func (o *Overlay) drawHelp(screen *ebiten.Image) {
	const lineH = 15
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(170, float64(len(keyHelp)*lineH+10))
	op.GeoM.Translate(6, 6)
	screen.DrawImage(o.backdrop, op)

	face := basicfont.Face7x13
	for i, line := range keyHelp {
		text.Draw(screen, line, face, 12, 20+i*lineH, color.White)
	}
}
