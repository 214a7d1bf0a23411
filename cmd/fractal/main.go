// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command fractal is a real-time Mandelbrot explorer in a window.
//
// Keys: A/D/W/S pan, Up/Down zoom, Left/Right change the iteration limit,
// X saves a screenshot, Escape quits.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/fractal"
	_ "github.com/gogpu/fractal/gpu"
	"github.com/gogpu/fractal/internal/cli"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fractal: %v", err)
	}
}

func run() error {
	opts := cli.Register(flag.CommandLine, fractal.DefaultConfig())
	var (
		scale   = flag.Float64("scale", 1, "window scale factor")
		showHUD = flag.Bool("hud", true, "draw the statistics overlay")
	)
	flag.Parse()

	logger := cli.SetupLogging(os.Stderr, opts.Verbose)
	cfg := opts.Config

	table, s, err := cli.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	loopOpts := []fractal.LoopOption{
		fractal.WithViewport(cfg.Viewport()),
		fractal.WithScreenshotter(fractal.NewScreenshotter(cfg.ScreenshotDir)),
	}
	if *showHUD {
		h, err := hud.New()
		if err != nil {
			return err
		}
		defer h.Close()
		loopOpts = append(loopOpts, fractal.WithHUD(h.Draw))
	}

	g, err := newGame(cfg.Width, cfg.Height, s, table, loopOpts...)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(float64(cfg.Width)**scale), int(float64(cfg.Height)**scale))
	ebiten.SetWindowTitle("fractal")
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)

	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "strategy", s.Name())
	return ebiten.RunGame(g)
}
