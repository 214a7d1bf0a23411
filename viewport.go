// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import "math"

// Viewport defaults, matching the classic 800x450 explorer.
const (
	// DefaultVelocity is the initial pan speed in pixels per second.
	DefaultVelocity = 500.0

	// DefaultScale is the per-tick zoom-in factor.
	DefaultScale = 0.993

	// DefaultMaxIter is the initial iteration limit.
	DefaultMaxIter = 30

	// DefaultMaxIterLimit is the upper bound for the iteration limit.
	DefaultMaxIterLimit = 5500

	// MinIter is the lower bound for the iteration limit.
	MinIter = 2

	// MinZoom and MaxZoom bound Zoom, in plane units per pixel. At MaxZoom
	// the whole set fits in a single pixel.
	MinZoom = 1e-300
	MaxZoom = 10.0

	// MinVelocity and MaxVelocity bound the pan speed in pixels per second.
	MinVelocity = 1e-300
	MaxVelocity = 1e12

	// defaultSpan is the height of the complex plane visible at startup.
	defaultSpan = 2.2
)

// Point is a pair of float64 coordinates.
type Point struct {
	X, Y float64
}

// Viewport is the view of the complex plane mapped onto pixel space.
//
// Only the Controller mutates a Viewport, once per tick. Strategies receive it
// by value, so every Compute call works on a stable snapshot.
type Viewport struct {
	// Offset is the pixel that maps to the origin of the complex plane.
	Offset Point

	// Zoom is the number of plane units per pixel on both axes.
	Zoom float64

	// Velocity is the pan speed in pixels per second.
	Velocity float64

	// Scale is the zoom-in factor applied per tick, in (0, 1).
	Scale float64

	// MaxIter is the iteration limit, kept in [MinIter, MaxIterLimit].
	MaxIter int

	// MaxIterLimit is the upper bound for MaxIter.
	MaxIterLimit int
}

// DefaultViewport returns the startup viewport for a width x height frame.
// The origin is placed at (floor(1.3*width/2), floor(height/2)) so the main
// cardioid sits slightly right of center.
func DefaultViewport(width, height int) Viewport {
	h := float64(height)
	if h <= 0 {
		h = 1
	}
	return Viewport{
		Offset: Point{
			X: math.Floor(1.3 * float64(width) / 2),
			Y: math.Floor(float64(height) / 2),
		},
		Zoom:         defaultSpan / h,
		Velocity:     DefaultVelocity,
		Scale:        DefaultScale,
		MaxIter:      DefaultMaxIter,
		MaxIterLimit: DefaultMaxIterLimit,
	}
}

// Sample returns the complex sample c for pixel (x, y).
func (v Viewport) Sample(x, y int) (cx, cy float64) {
	cx = (float64(x) - v.Offset.X) * v.Zoom
	cy = (float64(y) - v.Offset.Y) * v.Zoom
	return cx, cy
}

// Clamp restores the viewport invariants: MaxIter in [MinIter, MaxIterLimit],
// Zoom in [MinZoom, MaxZoom] and Velocity in [MinVelocity, MaxVelocity].
// A MaxIterLimit below MinIter is raised to MinIter first. When Zoom is
// clamped, Velocity is rescaled by the same factor so panning keeps its
// on-screen speed. NaN or non-positive values are replaced by the lower bound.
func (v *Viewport) Clamp() {
	if v.MaxIterLimit < MinIter {
		v.MaxIterLimit = MinIter
	}
	v.MaxIter = min(max(v.MaxIter, MinIter), v.MaxIterLimit)

	switch {
	case math.IsNaN(v.Zoom) || v.Zoom <= 0:
		v.Zoom = MinZoom
	case v.Zoom > MaxZoom:
		v.Velocity *= MaxZoom / v.Zoom
		v.Zoom = MaxZoom
	case v.Zoom < MinZoom:
		v.Velocity *= MinZoom / v.Zoom
		v.Zoom = MinZoom
	}

	switch {
	case math.IsNaN(v.Velocity) || v.Velocity < MinVelocity:
		v.Velocity = MinVelocity
	case v.Velocity > MaxVelocity:
		v.Velocity = MaxVelocity
	}
}

// Valid reports whether the viewport can be rendered.
func (v Viewport) Valid() bool {
	return v.Zoom > 0 && !math.IsInf(v.Zoom, 0) &&
		!math.IsNaN(v.Offset.X) && !math.IsNaN(v.Offset.Y) &&
		v.MaxIter >= MinIter && v.MaxIter <= v.MaxIterLimit
}
