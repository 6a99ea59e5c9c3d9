package island

import (
	"math"
	"strconv"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"island-gen/internal/core"
)

// Perlin generator shape: alpha (weight falloff), beta (frequency harmonic)
// and octave count.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// FloorStep is the decrement FloorNormalize lowers the grid by per step.
const FloorStep = 0.001

// NoiseLayer adds Height * noise((x/W + Offset) * Scale, (y/H + Offset) * Scale)
// to every cell. Noise is normalised to [0, 1] so the layer only raises.
type NoiseLayer struct {
	Height float64
	Scale  float64
	Basis  string
	Offset float64
	Seed   int64
}

// NewNoiseLayer builds a noise layer from cfg, seeded from the wall clock so
// repeated applications differ even for the same island.
func NewNoiseLayer(cfg Config, now time.Time) *NoiseLayer {
	basis := cfg.NoiseBasis
	if basis == "" {
		basis = NoiseBasisPerlin
	}
	return &NoiseLayer{
		Height: cfg.NoiseHeight,
		Scale:  cfg.NoiseScale,
		Basis:  basis,
		Offset: float64(now.Nanosecond()/int(time.Millisecond)) / 1000,
		Seed:   now.UnixNano(),
	}
}

// Name identifies the pass.
func (n *NoiseLayer) Name() string { return n.Basis }

// Apply adds the noise layer to g in place.
func (n *NoiseLayer) Apply(g *core.HeightGrid) {
	sample := n.sampler()
	w, h := g.W, g.H
	cells := g.Cells()
	for y := 0; y < h; y++ {
		py := (float64(y)/float64(h) + n.Offset) * n.Scale
		for x := 0; x < w; x++ {
			px := (float64(x)/float64(w) + n.Offset) * n.Scale
			cells[y*w+x] += float32(n.Height * sample(px, py))
		}
	}
}

func (n *NoiseLayer) sampler() func(x, y float64) float64 {
	if n.Basis == NoiseBasisSimplex {
		noise := opensimplex.NewNormalized(n.Seed)
		return func(x, y float64) float64 {
			return clamp01(noise.Eval2(x, y))
		}
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, n.Seed)
	return func(x, y float64) float64 {
		return clamp01((p.Noise2D(x, y) + 1) / 2)
	}
}

// Blend replaces every cell with the mean of its in-bounds 3x3 neighbourhood.
// Each pass reads the previous pass's values, so the result does not depend
// on scan order. The zero value blends once.
type Blend struct {
	Passes int
}

// Name identifies the pass.
func (b Blend) Name() string { return "blend" }

// Apply runs Passes passes, or one when Passes is not positive.
func (b Blend) Apply(g *core.HeightGrid) {
	passes := b.Passes
	if passes < 1 {
		passes = 1
	}
	src := g.Clone()
	for i := 0; i < passes; i++ {
		if i > 0 {
			copy(src.Cells(), g.Cells())
		}
		blendOnce(src, g)
	}
}

func blendOnce(src, dst *core.HeightGrid) {
	w, h := src.W, src.H
	in := src.Cells()
	out := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			count := 0
			for ny := y - 1; ny <= y+1; ny++ {
				if ny < 0 || ny >= h {
					continue
				}
				for nx := x - 1; nx <= x+1; nx++ {
					if nx < 0 || nx >= w {
						continue
					}
					sum += in[ny*w+nx]
					count++
				}
			}
			out[y*w+x] = sum / float32(count)
		}
	}
}

// FloorNormalize lowers the whole grid uniformly in FloorStep increments until
// its lowest cell reaches zero or below.
type FloorNormalize struct{}

// Name identifies the pass.
func (FloorNormalize) Name() string { return "floor" }

// Apply lowers g in place.
func (f FloorNormalize) Apply(g *core.HeightGrid) { f.Normalize(g) }

// Normalize lowers g and returns the number of steps every cell was lowered
// by. A grid whose minimum is already at or below zero is left untouched.
func (FloorNormalize) Normalize(g *core.HeightGrid) int {
	lo, _ := g.MinMax()
	if lo <= 0 {
		return 0
	}
	steps := int(math.Ceil(float64(lo) / FloorStep))
	if lo-float32(float64(steps)*FloorStep) > 0 {
		steps++
	}
	drop := float32(float64(steps) * FloorStep)
	cells := g.Cells()
	for i := range cells {
		cells[i] -= drop
	}
	return steps
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	newNoise := func(basis string) core.Factory {
		return func(cfg map[string]string) core.Pass {
			c := FromMap(cfg)
			c.NoiseBasis = basis
			return NewNoiseLayer(c, time.Now())
		}
	}
	core.Register(NoiseBasisPerlin, newNoise(NoiseBasisPerlin))
	core.Register(NoiseBasisSimplex, newNoise(NoiseBasisSimplex))
	core.Register("blend", func(cfg map[string]string) core.Pass {
		passes := FromMap(cfg).BlendPasses
		if v, ok := cfg["passes"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				passes = parsed
			}
		}
		return Blend{Passes: passes}
	})
	core.Register("floor", func(map[string]string) core.Pass {
		return FloorNormalize{}
	})
}
