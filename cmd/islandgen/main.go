package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"

	"island-gen/internal/app"
	"island-gen/internal/island"
	"island-gen/internal/render"
	"island-gen/internal/terrain"
)

const progressInterval = 500 * time.Millisecond

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	maskPNG := flag.Bool("mask", false, "also write the classified mask as <out>_mask.png")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	island.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(cfg, *maskPNG, logger); err != nil {
		fmt.Fprintf(os.Stderr, "islandgen: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, maskPNG bool, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	passes, err := cfg.PostPasses()
	if err != nil {
		return err
	}

	surface := terrain.NewMemorySurface(cfg.Resolution)
	gen, err := island.NewGenerator(cfg.Island, surface)
	if err != nil {
		return err
	}
	isl, err := gen.Generate()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	job, err := gen.StartShores(ctx, isl)
	if err != nil {
		return err
	}
	waitForShores(job, logger)
	if job.Cancelled() {
		return fmt.Errorf("shore generation stopped at %s: %w", job.ProgressText(), context.DeadlineExceeded)
	}
	if err := gen.Commit(isl); err != nil {
		return err
	}

	for _, p := range passes {
		gen.Apply(p)
	}

	heights := surface.Snapshot()
	rawPath := cfg.Out + ".raw"
	if err := terrain.SaveRaw(rawPath, heights); err != nil {
		return err
	}
	pngPath := cfg.Out + ".png"
	if err := render.SavePNG(pngPath, heights); err != nil {
		return err
	}
	if maskPNG {
		if err := render.SaveMaskPNG(cfg.Out+"_mask.png", isl.Mask); err != nil {
			return err
		}
	}

	lo, hi := heights.MinMax()
	logger.Info("heightmap written", "raw", rawPath, "png", pngPath, "seed", isl.Seed, "min", lo, "max", hi)
	return nil
}

func waitForShores(job *island.ShoreJob, logger *slog.Logger) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-job.Done():
			return
		case <-ticker.C:
			logger.Info("shores", "progress", job.ProgressText(), "cells", job.Processed(), "total", job.Total())
		}
	}
}
