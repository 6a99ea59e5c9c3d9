package island

import "island-gen/internal/core"

// Upscale returns a mask of twice the width and height where every source
// cell becomes a 2x2 block of the same value.
func Upscale(src *core.ByteGrid) *core.ByteGrid {
	dst := core.NewByteGrid(src.W*2, src.H*2)
	in := src.Cells()
	out := dst.Cells()
	dw := dst.W
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			v := in[y*src.W+x]
			base := (2*y)*dw + 2*x
			out[base] = v
			out[base+1] = v
			out[base+dw] = v
			out[base+dw+1] = v
		}
	}
	return dst
}

// UpscaleTo doubles mask once and then keeps doubling while its height is
// below target. The result may overshoot target; callers must use the
// returned dimensions.
func UpscaleTo(mask *core.ByteGrid, target int) *core.ByteGrid {
	scaled := Upscale(mask)
	for scaled.H < target {
		scaled = Upscale(scaled)
	}
	return scaled
}
