//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"island-gen/internal/app"
	"island-gen/internal/island"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	island.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	side := cfg.Resolution * cfg.Scale
	ebiten.SetWindowTitle("island-gen")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(side+cfg.HUDWidth, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
