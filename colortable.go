// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"image"
	"image/color"
)

// Color table errors.
var (
	// ErrEmptyImage is returned when a source image is too small to build a table.
	ErrEmptyImage = errors.New("fractal: color table source must be at least 2x2 pixels")

	// ErrNilColorTable is returned when a strategy is given no color table.
	ErrNilColorTable = errors.New("fractal: nil color table")
)

// ColorTable is an immutable square grid of RGB colors.
//
// Only the diagonal is sampled: iteration count i under limit L selects the
// color at (idx, idx) where idx = floor(Size*i/L). The table is read-only after
// construction and safe to share between goroutines.
type ColorTable struct {
	size int
	pix  []uint8 // RGB, 3 bytes per entry, row-major
}

// NewColorTable builds a table from the top-left corner of img.
// The table size is min(width, height) - 1 on each axis.
func NewColorTable(img image.Image) (*ColorTable, error) {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy()) - 1
	if size < 1 {
		return nil, ErrEmptyImage
	}

	t := &ColorTable{
		size: size,
		pix:  make([]uint8, size*size*3),
	}
	rgba, isRGBA := img.(*image.RGBA)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 3
			if isRGBA {
				c := rgba.RGBAAt(b.Min.X+x, b.Min.Y+y)
				t.pix[i+0], t.pix[i+1], t.pix[i+2] = c.R, c.G, c.B
				continue
			}
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.pix[i+0] = uint8(r >> 8) //nolint:gosec // 16-bit channel to 8-bit
			t.pix[i+1] = uint8(g >> 8) //nolint:gosec // 16-bit channel to 8-bit
			t.pix[i+2] = uint8(bl >> 8) //nolint:gosec // 16-bit channel to 8-bit
		}
	}
	return t, nil
}

// Size returns the edge length of the table.
func (t *ColorTable) Size() int {
	return t.size
}

// Index maps iteration count i under limit to a diagonal index in
// [0, Size-1]. Out-of-range results are clamped; a non-positive limit maps to 0.
func (t *ColorTable) Index(i, limit int) int {
	if limit <= 0 {
		return 0
	}
	idx := t.size * i / limit
	return min(max(idx, 0), t.size-1)
}

// RGBAt returns the RGB triple at (x, y). Coordinates are clamped to the table.
func (t *ColorTable) RGBAt(x, y int) (r, g, b uint8) {
	x = min(max(x, 0), t.size-1)
	y = min(max(y, 0), t.size-1)
	i := (y*t.size + x) * 3
	return t.pix[i], t.pix[i+1], t.pix[i+2]
}

// Color returns the gradient color for iteration count i under limit.
func (t *ColorTable) Color(i, limit int) color.RGBA {
	idx := t.Index(i, limit)
	r, g, b := t.RGBAt(idx, idx)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
