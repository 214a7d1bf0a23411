// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu registers the "gpu" fractal strategy.
//
// The strategy evaluates the escape-time kernel in a WGSL compute shader
// through wgpu/hal, one invocation per pixel, and reads the colored frame
// back into host memory. The color table is uploaded once at Init.
//
// Import this package for its side effect:
//
//	import _ "github.com/gogpu/fractal/gpu"
//
// If no Vulkan device can be opened, fractal.InitDefault logs the failure
// and falls back to the parallel CPU strategy. Building with the nogpu tag
// leaves the strategy unregistered.
package gpu
