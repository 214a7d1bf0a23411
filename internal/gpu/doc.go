// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

// Package gpu computes Mandelbrot frames with a WGSL compute shader.
//
// The kernel talks to the GPU through the gogpu/wgpu HAL layer (Vulkan,
// zero CGO). The shader is compiled to SPIR-V with gogpu/naga at pipeline
// creation time. Each frame uploads a small uniform block, dispatches one
// invocation per pixel in 8x8 workgroups and reads the packed RGBA result
// back through a staging buffer.
//
// The color table is uploaded once as a storage buffer and sampled on its
// diagonal inside the shader, so the GPU output matches the CPU strategies
// up to float32 rounding near the set boundary.
//
// A device may be shared with a host application through SetDeviceProvider;
// otherwise the kernel opens its own.
package gpu
