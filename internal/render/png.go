package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"island-gen/internal/core"
)

// HeightPixmap colours g with the terrain gradient.
func HeightPixmap(g *core.HeightGrid) *gg.Pixmap {
	pm := gg.NewPixmap(g.W, g.H)
	fillHeightRGBA(pm.Data(), g.Cells())
	return pm
}

// MaskPixmap colours a classified mask with MaskPalette.
func MaskPixmap(mask *core.ByteGrid) *gg.Pixmap {
	pm := gg.NewPixmap(mask.W, mask.H)
	fillPaletteRGBA(pm.Data(), mask.Cells(), MaskPalette)
	return pm
}

// SavePNG writes a colour preview of the heightmap.
func SavePNG(path string, g *core.HeightGrid) error {
	if err := HeightPixmap(g).SavePNG(path); err != nil {
		return fmt.Errorf("save height preview %s: %w", path, err)
	}
	return nil
}

// SaveMaskPNG writes the classified mask as a three-colour image.
func SaveMaskPNG(path string, mask *core.ByteGrid) error {
	if err := MaskPixmap(mask).SavePNG(path); err != nil {
		return fmt.Errorf("save mask preview %s: %w", path, err)
	}
	return nil
}
