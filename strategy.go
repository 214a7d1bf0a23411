// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import "fmt"

// Strategy names.
const (
	// StrategyScalar is the nested-loop reference strategy.
	StrategyScalar = "scalar"

	// StrategyBatch is the whole-grid masked stepping strategy.
	StrategyBatch = "batch"

	// StrategyParallel is the worker-pool strategy.
	StrategyParallel = "parallel"

	// StrategyGPU is the WGSL compute shader strategy (package gpu).
	StrategyGPU = "gpu"
)

// Strategy computes a full frame of the Mandelbrot set.
//
// All strategies are drop-in substitutable: given the same frame size,
// viewport and color table they produce the same pixels (the GPU strategy
// within float32 rounding). Compute overwrites every pixel of dst and never
// mutates vp or table.
//
// Strategies are registered via Register and selected via Get, New or InitDefault.
type Strategy interface {
	// Name returns the strategy identifier (e.g., "scalar", "gpu").
	Name() string

	// Init prepares resources. Device-resident strategies upload the color
	// table here; CPU strategies only validate it.
	Init(table *ColorTable) error

	// Compute renders vp into dst using table.
	Compute(dst *Frame, vp Viewport, table *ColorTable) error

	// Close releases all strategy resources. The strategy must not be used
	// after Close is called.
	Close()
}

// IterationCounter is implemented by strategies that can expose raw
// iteration counts. dst must hold width*height entries, row-major.
type IterationCounter interface {
	Iterations(dst []int32, width, height int, vp Viewport)
}

// checkCompute validates the common Compute preconditions.
func checkCompute(dst *Frame, vp Viewport, table *ColorTable) error {
	if table == nil {
		return ErrNilColorTable
	}
	if dst == nil || dst.Empty() {
		return ErrFrameSize
	}
	if !vp.Valid() {
		return fmt.Errorf("fractal: invalid viewport (zoom=%g, maxIter=%d, limit=%d)",
			vp.Zoom, vp.MaxIter, vp.MaxIterLimit)
	}
	return nil
}

// colorize maps iteration counts onto RGBA pixel data of the same length.
func colorize(data []uint8, counts []int32, limit int, table *ColorTable) {
	for i, n := range counts {
		idx := table.Index(int(n), limit)
		r, g, b := table.RGBAt(idx, idx)
		p := i * 4
		data[p+0] = r
		data[p+1] = g
		data[p+2] = b
		data[p+3] = 255
	}
}

// countScratch returns s resized to n entries, reallocating only when needed.
func countScratch(s []int32, n int) []int32 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int32, n)
}
