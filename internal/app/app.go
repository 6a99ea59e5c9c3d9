//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"

	"island-gen/internal/core"
	"island-gen/internal/island"
	"island-gen/internal/render"
	"island-gen/internal/terrain"
	"island-gen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// progressTPS is how often the HUD re-reads shore job progress.
const progressTPS = 8

// Game adapts the island generator to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	ctx     context.Context
	surface *terrain.MemorySurface
	gen     *island.Generator
	isl     *island.Island
	job     *island.ShoreJob

	painter *render.HeightPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	refresh *core.FixedStep

	view   *core.HeightGrid
	scale  int
	status string
}

// New constructs a Game with a flat surface of cfg.Resolution.
func New(ctx context.Context, cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := cfg.Resolution
	g := &Game{
		cfg:     cfg,
		ctx:     ctx,
		surface: terrain.NewMemorySurface(res),
		painter: render.NewHeightPainter(res, res),
		overlay: ui.NewOverlay(res, res, cfg.Scale),
		refresh: core.NewFixedStep(progressTPS),
		scale:   cfg.Scale,
		status:  "press G to generate",
	}
	g.hud = ui.NewHUD(&cfg.Island, "Island", cfg.HUDWidth, res*cfg.Scale)
	g.view = g.surface.Snapshot()
	return g, nil
}

// Update handles per-frame input and polls the running shore job.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.job != nil {
			g.job.RequestCancel()
		}
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.generate(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.generate(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.startShores()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if g.job != nil {
			g.job.RequestCancel()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.post(func() { g.gen.AddNoise() }, "noise added")
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.post(func() { g.gen.BlendHeights() }, "blended")
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.post(func() { g.gen.ResetSeaFloor() }, "sea floor reset")
	}

	g.pollJob()
	g.overlay.Update()
	g.hud.SetStatus(g.statusLines()...)
	g.hud.Update(g.res() * g.scale)
	return nil
}

// generate builds a new island. With reuse set the previous seed is replayed.
func (g *Game) generate(reuse bool) {
	cfg := g.cfg.Island
	if reuse && g.isl != nil {
		cfg.Seed = g.isl.Seed
		cfg.UseRandomSeed = false
	}
	if g.job != nil {
		g.job.RequestCancel()
		g.job = nil
	}
	gen, err := island.NewGenerator(cfg, g.surface)
	if err != nil {
		g.status = err.Error()
		return
	}
	isl, err := gen.Generate()
	if err != nil {
		g.status = err.Error()
		return
	}
	g.gen, g.isl = gen, isl
	g.view = g.surface.Snapshot()
	g.status = "generated"
}

func (g *Game) startShores() {
	if g.isl == nil {
		g.status = "generate an island first"
		return
	}
	job, err := g.gen.StartShores(g.ctx, g.isl)
	if errors.Is(err, island.ErrShoreJobRunning) {
		g.status = "shores already running"
		return
	}
	if err != nil {
		g.status = err.Error()
		return
	}
	g.job = job
	g.status = "shores running"
}

func (g *Game) post(apply func(), done string) {
	if g.gen == nil {
		g.status = "generate an island first"
		return
	}
	if g.job != nil {
		g.status = "wait for shores to finish"
		return
	}
	apply()
	g.view = g.surface.Snapshot()
	g.status = done
}

func (g *Game) pollJob() {
	if g.job == nil {
		return
	}
	if !g.job.IsDone() {
		if g.refresh.ShouldStep() {
			g.status = "shores " + g.job.ProgressText()
		}
		return
	}
	cancelled := g.job.Cancelled()
	g.job = nil
	if err := g.gen.Commit(g.isl); err != nil {
		g.status = err.Error()
		return
	}
	g.view = g.surface.Snapshot()
	if cancelled {
		g.status = "shores cancelled"
		return
	}
	g.status = "shores done"
}

func (g *Game) statusLines() []string {
	lines := []string{g.status}
	if g.isl != nil {
		lines = append(lines, "seed "+g.isl.Seed)
	}
	lo, hi := g.view.MinMax()
	lines = append(lines, fmt.Sprintf("height %.3f..%.3f", lo, hi))
	return lines
}

func (g *Game) res() int { return g.cfg.Resolution }

// Draw renders the heightmap, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.BlitHeights(screen, g.view, g.scale)
	var mask *core.ByteGrid
	if g.isl != nil {
		mask = g.isl.Mask
	}
	g.overlay.Draw(screen, mask)
	g.hud.Draw(screen, g.res()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.res() * g.scale
	return side + g.cfg.HUDWidth, side
}
