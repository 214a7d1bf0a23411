// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture loads color table source images.
//
// PNG, JPEG, BMP, TIFF and WebP files are supported. A missing or
// undecodable file is reported as ErrTextureLoad; callers treat it as a
// fatal configuration error.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/fractal"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture errors.
var (
	// ErrTextureLoad is returned when a texture cannot be opened or decoded.
	ErrTextureLoad = errors.New("texture: load failed")

	// ErrEmptyData is returned when texture data is empty.
	ErrEmptyData = errors.New("texture: empty data")
)

// Load loads an image from path, detecting the format from its content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrTextureLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadBytes decodes an image held in memory.
func LoadBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrTextureLoad, ErrEmptyData)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrTextureLoad, err)
	}
	fractal.Logger().Debug("texture decoded", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// LoadColorTable loads path and builds a color table from it.
func LoadColorTable(path string) (*fractal.ColorTable, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	t, err := fractal.NewColorTable(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTextureLoad, path, err)
	}
	return t, nil
}

// ColorTable returns the color table for path, or the built-in gradient
// table when path is empty.
func ColorTable(path string) (*fractal.ColorTable, error) {
	if path == "" {
		return fractal.NewColorTable(Gradient(DefaultGradientSize))
	}
	return LoadColorTable(path)
}
