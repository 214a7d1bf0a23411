// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command fractalrender renders one Mandelbrot frame to a PNG file.
//
// With -compare it renders the frame with every available strategy,
// reports timings and pixel differences against the scalar reference, and
// writes a comparison image with one reference | strategy | diff row per
// strategy.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/fractal"
	_ "github.com/gogpu/fractal/gpu"
	"github.com/gogpu/fractal/internal/cli"
	"github.com/gogpu/fractal/internal/texture"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fractalrender: %v", err)
	}
}

func run() error {
	opts := cli.Register(flag.CommandLine, fractal.DefaultConfig())
	var (
		output  = flag.String("o", "fractal.png", "output file")
		compare = flag.Bool("compare", false, "render with every strategy and compare against scalar")
		outDir  = flag.String("dir", "tmp", "output directory for -compare")
		maxDiff = flag.Float64("threshold", 2.0, "maximum mismatched pixel percentage for -compare")
	)
	flag.Parse()
	cli.SetupLogging(os.Stderr, opts.Verbose)
	cfg := opts.Config

	if *compare {
		return runCompare(cfg, *outDir, *maxDiff)
	}

	table, s, err := cli.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	f := fractal.NewFrame(cfg.Width, cfg.Height)
	start := time.Now()
	if err := s.Compute(f, cfg.Viewport(), table); err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := f.SavePNG(*output); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d in %v -> %s\n", s.Name(), cfg.Width, cfg.Height, elapsed.Round(10*time.Microsecond), *output)
	return nil
}

func runCompare(cfg fractal.Config, dir string, threshold float64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	table, err := texture.ColorTable(cfg.Texture)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	results, err := renderAll(fractal.Available(), cfg.Width, cfg.Height, cfg.Viewport(), table)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	total := cfg.Width * cfg.Height
	p.Printf("Mandelbrot strategies: %dx%d, maxIter %d\n\n", cfg.Width, cfg.Height, cfg.Viewport().MaxIter)

	failed := false
	for _, r := range results {
		if r.Err != nil {
			p.Printf("  %-9s SKIP (%v)\n", r.Name, r.Err)
			continue
		}
		path := filepath.Join(dir, "fractal_"+r.Name+".png")
		if err := r.Frame.SavePNG(path); err != nil {
			return err
		}
		status := "PASS"
		if r.DiffPercent > threshold {
			status = "FAIL"
			failed = true
		}
		p.Printf("  %-9s %12v  diff %d / %d (%.2f%%) %s\n",
			r.Name, r.Elapsed.Round(10*time.Microsecond), r.DiffCount, total, r.DiffPercent, status)
	}

	sheet := buildComparison(results)
	if sheet != nil {
		path := filepath.Join(dir, "comparison.png")
		if err := savePNG(sheet, path); err != nil {
			return err
		}
		p.Printf("\nComparison: %s\n", path)
	}
	if failed {
		return fmt.Errorf("pixel difference above %.1f%%", threshold)
	}
	return nil
}
