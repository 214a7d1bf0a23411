// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/fractal"
	"golang.org/x/image/draw"
)

// upperHalf shows the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

// cellScreen is the part of tcell.Screen the presenter draws through.
type cellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Clear()
	Show()
}

// halfBlockPresenter scales frames onto the terminal, two pixels per cell.
type halfBlockPresenter struct {
	screen  cellScreen
	scaler  draw.Scaler
	scratch *image.RGBA
}

func newHalfBlockPresenter(screen cellScreen) *halfBlockPresenter {
	return &halfBlockPresenter{screen: screen, scaler: draw.ApproxBiLinear}
}

func (p *halfBlockPresenter) Clear() {
	p.screen.Clear()
}

func (p *halfBlockPresenter) Present(f *fractal.Frame) error {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 || f.Empty() {
		return nil
	}
	target := image.Rect(0, 0, cols, rows*2)
	if p.scratch == nil || p.scratch.Bounds() != target {
		p.scratch = image.NewRGBA(target)
	}

	var src image.Image = f
	if f.Bounds() == target {
		draw.Draw(p.scratch, target, src, image.Point{}, draw.Src)
	} else {
		p.scaler.Scale(p.scratch, target, src, src.Bounds(), draw.Src, nil)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := p.scratch.RGBAAt(x, 2*y)
			bottom := p.scratch.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

// frameSize returns the frame dimensions for a terminal of cols x rows
// rendered at the given supersampling factor.
func frameSize(cols, rows, supersample int) (int, int) {
	supersample = max(supersample, 1)
	return max(cols, 1) * supersample, max(rows, 1) * 2 * supersample
}
