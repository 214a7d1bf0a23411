// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command fractalterm explores the Mandelbrot set in a true-color terminal.
//
// Each character cell shows two pixels stacked with an upper half block.
// Keys: a/d/w/s pan, arrow Up/Down zoom, arrow Left/Right change the
// iteration limit, x saves a screenshot, q or Escape quits.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/fractal"
	_ "github.com/gogpu/fractal/gpu"
	"github.com/gogpu/fractal/internal/cli"
	"github.com/gogpu/fractal/internal/hud"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fractalterm: %v", err)
	}
}

func run() error {
	opts := cli.Register(flag.CommandLine, fractal.DefaultConfig())
	var (
		supersample = flag.Int("supersample", 2, "pixels rendered per displayed pixel on each axis")
		hold        = flag.Duration("hold", defaultHold, "how long a key press counts as held")
		showHUD     = flag.Bool("hud", false, "draw the statistics overlay")
		logFile     = flag.String("log", "", "write logs to this file (the terminal is in use)")
	)
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	cli.SetupLogging(logOut, opts.Verbose)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	cfg := opts.Config
	cfg.Width, cfg.Height = frameSize(cols, rows, *supersample)

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
		h, err := hud.New(hud.WithSize(float64(8 * *supersample)))
		if err != nil {
			return err
		}
		defer h.Close()
		loopOpts = append(loopOpts, fractal.WithHUD(h.Draw))
	}

	keys := newHeldKeys(*hold)
	loop, err := fractal.NewLoop(cfg.Width, cfg.Height, s, table, newHalfBlockPresenter(screen), keys, loopOpts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	for loop.State() == fractal.StateRunning {
		if err := drainEvents(events, keys, loop, *supersample); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := loop.Step(); err != nil {
			return err
		}
	}
	return nil
}

// pumpEvents forwards polled events until poll returns nil (screen finalized)
// or done is closed. events is closed on return.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// drainEvents applies all pending terminal events without blocking.
func drainEvents(events <-chan tcell.Event, keys *heldKeys, loop *fractal.Loop, supersample int) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				loop.Terminate()
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.Feed(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				cols, rows := ev.Size()
				if err := loop.Resize(frameSize(cols, rows, supersample)); err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}
