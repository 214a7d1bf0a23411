// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli holds the flag, logging and setup code shared by the commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/texture"
)

// Options are the command-line settings common to all commands.
type Options struct {
	Config  fractal.Config
	Verbose bool
}

// Register binds the common flags on fs, with defaults taken from cfg.
func Register(fs *flag.FlagSet, cfg fractal.Config) *Options {
	o := &Options{Config: cfg}
	fs.IntVar(&o.Config.Width, "width", cfg.Width, "frame width in pixels")
	fs.IntVar(&o.Config.Height, "height", cfg.Height, "frame height in pixels")
	fs.StringVar(&o.Config.Strategy, "strategy", cfg.Strategy,
		"compute strategy ("+strings.Join(fractal.Available(), ", ")+"); empty selects the best available")
	fs.StringVar(&o.Config.Texture, "texture", cfg.Texture, "color table image (png, jpeg, bmp, tiff, webp); empty uses the built-in gradient")
	fs.StringVar(&o.Config.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "screenshot directory")
	fs.IntVar(&o.Config.MaxIter, "iter", cfg.MaxIter, "starting iteration limit")
	fs.BoolVar(&o.Verbose, "v", false, "verbose (debug) logging")
	return o
}

// SetupLogging installs a text slog handler writing to w as both the
// default logger and the fractal package logger.
func SetupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	fractal.SetLogger(l)
	return l
}

// Open validates cfg, loads its color table and initializes its strategy.
// The caller owns the returned strategy and must Close it.
func Open(cfg fractal.Config) (*fractal.ColorTable, fractal.Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	table, err := texture.ColorTable(cfg.Texture)
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.NewStrategy(table)
	if err != nil {
		return nil, nil, fmt.Errorf("select strategy: %w", err)
	}
	return table, s, nil
}
