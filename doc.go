// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fractal renders an interactively explorable Mandelbrot set in real time.
//
// # Overview
//
// Every tick the render loop reads input, updates the [Viewport], computes a
// full [Frame] with a [Strategy] and hands it to a [Presenter]. For each pixel
// the strategy estimates an escape-time value with [Escape] and maps it to a
// color through the diagonal of a [ColorTable].
//
// # Quick Start
//
//	table, err := texture.LoadColorTable("texture.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := fractal.InitDefault(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	frame := fractal.NewFrame(800, 450)
//	vp := fractal.DefaultViewport(800, 450)
//	if err := s.Compute(frame, vp, table); err != nil {
//	    log.Fatal(err)
//	}
//	_ = frame.SavePNG("mandelbrot.png")
//
// # Strategies
//
// Four interchangeable strategies produce the same frame:
//   - scalar: nested loop over every pixel (correctness baseline)
//   - batch: whole-grid stepping over a compacted set of still-iterating pixels
//   - parallel: scalar math with row bands on a worker pool
//   - gpu: WGSL compute shader on wgpu/hal (import [github.com/gogpu/fractal/gpu])
//
// CPU strategies produce bit-identical iteration counts. The GPU strategy
// computes in float32 and matches within a small tolerance.
//
// # Coordinate System
//
// Pixel (x, y) maps to c = ((x - Offset.X)·Zoom, (y - Offset.Y)·Zoom). Offsets
// are in pixels, Zoom is plane units per pixel, both axes share the same zoom.
package fractal
