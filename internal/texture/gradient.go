// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"image"
	"image/color"
)

// DefaultGradientSize is the edge length of the built-in gradient image.
const DefaultGradientSize = 512

// Gradient returns a size x size image whose diagonal runs from deep blue
// through orange to black. The last diagonal entries (pixels inside the set)
// are black.
func Gradient(size int) *image.RGBA {
	size = max(size, 2)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	span := float64(2 * (size - 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, gradientAt(float64(x+y)/span))
		}
	}
	return img
}

// gradientAt evaluates the Bernstein-polynomial palette at t in [0, 1].
func gradientAt(t float64) color.RGBA {
	u := 1 - t
	r := 9 * u * t * t * t
	g := 15 * u * u * t * t
	b := 8.5 * u * u * u * t
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1) * 255) //nolint:gosec // clamped to [0, 255]
}
