// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"time"

	"github.com/gogpu/fractal"
)

// result is one strategy's render of the comparison frame.
type result struct {
	Name        string
	Frame       *fractal.Frame
	Elapsed     time.Duration
	DiffCount   int
	DiffPercent float64
	Err         error
}

// renderAll renders vp with each named strategy. The scalar strategy is
// always rendered first and is the reference for the diff counts.
// Strategies that fail to initialize are reported with Err set.
func renderAll(names []string, w, h int, vp fractal.Viewport, table *fractal.ColorTable) ([]result, error) {
	order := []string{fractal.StrategyScalar}
	for _, n := range names {
		if n != fractal.StrategyScalar {
			order = append(order, n)
		}
	}

	results := make([]result, 0, len(order))
	var ref *fractal.Frame
	for _, name := range order {
		r := render(name, w, h, vp, table)
		if name == fractal.StrategyScalar {
			if r.Err != nil {
				return nil, fmt.Errorf("reference render: %w", r.Err)
			}
			ref = r.Frame
		}
		if r.Err == nil {
			r.DiffCount, r.DiffPercent = comparePixels(ref, r.Frame)
		}
		results = append(results, r)
	}
	return results, nil
}

func render(name string, w, h int, vp fractal.Viewport, table *fractal.ColorTable) result {
	r := result{Name: name}
	s, err := fractal.New(name, table)
	if err != nil {
		r.Err = err
		return r
	}
	defer s.Close()

	f := fractal.NewFrame(w, h)
	start := time.Now()
	if err := s.Compute(f, vp, table); err != nil {
		r.Err = err
		return r
	}
	r.Elapsed = time.Since(start)
	r.Frame = f
	return r
}

// comparePixels counts pixels that differ between a and b.
func comparePixels(a, b *fractal.Frame) (count int, percent float64) {
	w, h := a.Width(), a.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				count++
			}
		}
	}
	percent = float64(count) / float64(w*h) * 100
	return count, percent
}

// buildComparison stacks one reference | strategy | diff row per
// successful non-reference result. It returns nil when there is nothing
// to compare.
func buildComparison(results []result) *image.RGBA {
	var ref *fractal.Frame
	var rows []result
	for _, r := range results {
		switch {
		case r.Err != nil:
		case r.Name == fractal.StrategyScalar:
			ref = r.Frame
		default:
			rows = append(rows, r)
		}
	}
	if ref == nil || len(rows) == 0 {
		return nil
	}

	w, h := ref.Width(), ref.Height()
	sheet := image.NewRGBA(image.Rect(0, 0, w*3, h*len(rows)))
	for i, r := range rows {
		y0 := i * h
		draw.Draw(sheet, image.Rect(0, y0, w, y0+h), ref, image.Point{}, draw.Src)
		draw.Draw(sheet, image.Rect(w, y0, 2*w, y0+h), r.Frame, image.Point{}, draw.Src)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				ca := ref.RGBAAt(x, y)
				if ca != r.Frame.RGBAAt(x, y) {
					sheet.SetRGBA(2*w+x, y0+y, color.RGBA{R: 255, A: 255})
					continue
				}
				gray := uint8((uint32(ca.R) + uint32(ca.G) + uint32(ca.B)) / 3) //nolint:gosec // average of bytes
				sheet.SetRGBA(2*w+x, y0+y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
			}
		}
	}
	return sheet
}

// savePNG writes an RGBA image to a PNG file.
func savePNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
