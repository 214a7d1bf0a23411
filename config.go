// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"fmt"
)

// Default frame dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
)

// Config collects the startup settings shared by the frontends.
//
// Example:
//
//	cfg := fractal.DefaultConfig().
//	    WithSize(1280, 720).
//	    WithStrategy(fractal.StrategyParallel)
type Config struct {
	// Width and Height are the frame dimensions in pixels.
	Width, Height int

	// Strategy is the strategy name; empty selects the best available.
	Strategy string

	// Texture is the color table image path; empty uses the built-in gradient.
	Texture string

	// ScreenshotDir is where screenshots are written.
	ScreenshotDir string

	// MaxIter and MaxIterLimit override the viewport iteration defaults when positive.
	MaxIter      int
	MaxIterLimit int
}

// DefaultConfig returns the default 800x450 configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// WithSize returns c with the given frame size.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithStrategy returns c with the given strategy name.
func (c Config) WithStrategy(name string) Config {
	c.Strategy = name
	return c
}

// WithTexture returns c with the given color table image path.
func (c Config) WithTexture(path string) Config {
	c.Texture = path
	return c
}

// WithScreenshotDir returns c with the given screenshot directory.
func (c Config) WithScreenshotDir(dir string) Config {
	c.ScreenshotDir = dir
	return c
}

// WithIterations returns c with the given iteration start value and limit.
func (c Config) WithIterations(maxIter, limit int) Config {
	c.MaxIter, c.MaxIterLimit = maxIter, limit
	return c
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrFrameSize, c.Width, c.Height))
	}
	if c.Strategy != "" && !IsRegistered(c.Strategy) {
		errs = append(errs, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, c.Strategy, Available()))
	}
	if c.MaxIterLimit > 0 && c.MaxIterLimit < MinIter {
		errs = append(errs, fmt.Errorf("fractal: iteration limit %d below %d", c.MaxIterLimit, MinIter))
	}
	return errors.Join(errs...)
}

// Viewport returns the starting viewport for c.
func (c Config) Viewport() Viewport {
	vp := DefaultViewport(c.Width, c.Height)
	if c.MaxIterLimit > 0 {
		vp.MaxIterLimit = c.MaxIterLimit
	}
	if c.MaxIter > 0 {
		vp.MaxIter = c.MaxIter
	}
	vp.Clamp()
	return vp
}

// NewStrategy creates and initializes the configured strategy, or the best
// available one when Strategy is empty.
func (c Config) NewStrategy(table *ColorTable) (Strategy, error) {
	if c.Strategy == "" {
		return InitDefault(table)
	}
	return New(c.Strategy, table)
}
