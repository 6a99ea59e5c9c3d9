package island

import (
	"context"
	"fmt"
	"sync"
	"time"

	"island-gen/internal/core"
	"island-gen/internal/terrain"
	rng "island-gen/pkg/core"
)

// Island is the product of one generation run. The classified mask and the
// elevation buffer belong to the island; the surface only receives copies.
type Island struct {
	Seed    string
	Mask    *core.ByteGrid
	Heights *core.HeightGrid

	mu  sync.Mutex
	job *ShoreJob
}

// Job returns the most recent shore job started on the island, if any.
func (isl *Island) Job() *ShoreJob {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	return isl.job
}

func (isl *Island) busy() bool {
	return isl.job != nil && !isl.job.IsDone()
}

// Generator runs the pipeline against a terrain surface. The surface
// resolution is read once at construction.
type Generator struct {
	cfg        Config
	surface    terrain.Surface
	resolution int
	now        func() time.Time

	mu        sync.Mutex
	usedSeeds []string
}

// NewGenerator validates cfg and the surface resolution.
func NewGenerator(cfg Config, surface terrain.Surface) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("nil terrain surface: %w", ErrInvalidConfig)
	}
	res := surface.Resolution()
	if res <= 0 {
		return nil, fmt.Errorf("surface resolution %d must be positive: %w", res, ErrInvalidConfig)
	}
	return &Generator{cfg: cfg, surface: surface, resolution: res, now: time.Now}, nil
}

// Config returns the generator settings.
func (g *Generator) Config() Config { return g.cfg }

// Resolution returns the host heightmap side length.
func (g *Generator) Resolution() int { return g.resolution }

// UsedSeeds lists every seed string generated so far, oldest first.
func (g *Generator) UsedSeeds() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.usedSeeds...)
}

// BuildMask runs the synchronous part of the pipeline for a host of the given
// resolution: automaton shape, upscaling and edge classification. Hosts below
// 128 already run the automaton at full size and are not upscaled.
func BuildMask(cfg Config, seed string, resolution int) *core.ByteGrid {
	side, multiplier := WorkingSize(resolution)
	mask := GenerateShape(cfg, side, side, rng.NewRNGFromString(seed))
	if multiplier > 1 {
		mask = UpscaleTo(mask, side*multiplier)
	}
	ClassifyEdges(mask)
	return mask
}

// Plateau writes the flat base elevation: LandHeight on land, zero on water.
// Shore cells keep whatever the buffer held. Only cells inside both grids are
// touched.
func Plateau(mask *core.ByteGrid, heights *core.HeightGrid) {
	w := min(mask.W, heights.W)
	h := min(mask.H, heights.H)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch mask.At(x, y) {
			case Land:
				heights.Set(x, y, LandHeight)
			case Water:
				heights.Set(x, y, 0)
			}
		}
	}
}

// Generate builds a new island on a flattened buffer and writes the plateau
// to the surface. Shores are added separately with StartShores.
func (g *Generator) Generate() (*Island, error) {
	seed := rng.ResolveSeed(g.cfg.UseRandomSeed, g.cfg.Seed, g.now())
	start := time.Now()

	mask := BuildMask(g.cfg, seed, g.resolution)
	heights := core.NewHeightGrid(g.resolution, g.resolution)
	Plateau(mask, heights)
	g.surface.SetHeights(0, 0, heights)

	g.mu.Lock()
	g.usedSeeds = append(g.usedSeeds, seed)
	g.mu.Unlock()

	Logger().Info("island generated",
		"seed", seed,
		"resolution", g.resolution,
		"mask", fmt.Sprintf("%dx%d", mask.W, mask.H),
		"land", mask.Count(Land),
		"shore", mask.Count(Shore),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return &Island{Seed: seed, Mask: mask, Heights: heights}, nil
}

// StartShores launches the falloff worker for isl. The island's elevation
// buffer is first reloaded from the surface, so passes applied since the last
// commit survive the next one. Cancelling ctx has the same effect as
// ShoreJob.RequestCancel.
func (g *Generator) StartShores(ctx context.Context, isl *Island) (*ShoreJob, error) {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	if isl.busy() {
		return nil, ErrShoreJobRunning
	}
	current := g.surface.Heights(0, 0, isl.Heights.W, isl.Heights.H)
	copy(isl.Heights.Cells(), current.Cells())
	radius := ScaledMaxRadius(g.cfg.MaxRadius, g.resolution)
	job := newShoreJob(isl.Mask, isl.Heights, radius)
	isl.job = job
	Logger().Info("shore job started", "seed", isl.Seed, "radius", radius, "cells", job.total)
	job.start(ctx)
	return job, nil
}

// Commit writes the island's elevation buffer to the surface.
func (g *Generator) Commit(isl *Island) error {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	if isl.busy() {
		return ErrShoreJobRunning
	}
	g.surface.SetHeights(0, 0, isl.Heights)
	return nil
}

// Apply reads the surface, runs p over it and writes the result back.
func (g *Generator) Apply(p core.Pass) {
	heights := g.surface.Heights(0, 0, g.resolution, g.resolution)
	start := time.Now()
	p.Apply(heights)
	g.surface.SetHeights(0, 0, heights)
	Logger().Info("pass applied", "pass", p.Name(), "elapsed", time.Since(start).Round(time.Millisecond))
}

// AddNoise applies a time-seeded noise layer to the surface.
func (g *Generator) AddNoise() {
	g.Apply(NewNoiseLayer(g.cfg, g.now()))
}

// BlendHeights smooths the surface with the configured number of blend passes.
func (g *Generator) BlendHeights() {
	g.Apply(Blend{Passes: g.cfg.BlendPasses})
}

// ResetSeaFloor lowers the surface until its lowest point reaches zero.
func (g *Generator) ResetSeaFloor() {
	g.Apply(FloorNormalize{})
}
