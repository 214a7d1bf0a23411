// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
)

// ErrFrameSize is returned when a frame has no pixels.
var ErrFrameSize = errors.New("fractal: frame must have positive width and height")

// Frame is a width x height RGBA color buffer. Alpha is always opaque.
//
// A Frame is overwritten by every Compute call and has no identity across
// ticks. It implements image.Image and draw.Image.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFrame creates an opaque black frame with the given dimensions.
// Negative dimensions are treated as zero.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw pixel data (RGBA format, row-major, stride 4*Width).
func (f *Frame) Data() []uint8 {
	return f.data
}

// Empty reports whether the frame has no pixels.
func (f *Frame) Empty() bool {
	return f.width <= 0 || f.height <= 0
}

// Resize changes the frame dimensions, reusing the backing array when it is
// large enough. Pixel contents are reset to opaque black.
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height * 4
	if cap(f.data) >= n {
		f.data = f.data[:n]
	} else {
		f.data = make([]uint8, n)
	}
	f.width, f.height = width, height
	f.Clear(color.RGBA{A: 255})
}

// Clear fills the entire frame with c.
func (f *Frame) Clear(c color.RGBA) {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = c.R
		f.data[i+1] = c.G
		f.data[i+2] = c.B
		f.data[i+3] = 255
	}
}

// SetRGB sets the color of a single pixel. Out-of-bounds writes are ignored.
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = r
	f.data[i+1] = g
	f.data[i+2] = b
	f.data[i+3] = 255
}

// RGBAAt returns the color of a single pixel, or transparent black when out of bounds.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{R: f.data[i], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}
}

// CopyFrom copies src into f, resizing f to match.
func (f *Frame) CopyFrom(src *Frame) {
	if f.width != src.width || f.height != src.height {
		f.Resize(src.width, src.height)
	}
	copy(f.data, src.data)
}

// ToImage converts the frame to a new image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface. The color is flattened onto an
// opaque pixel.
func (f *Frame) Set(x, y int, c color.Color) {
	rgba, _ := color.RGBAModel.Convert(c).(color.RGBA)
	f.SetRGB(x, y, rgba.R, rgba.G, rgba.B)
}
