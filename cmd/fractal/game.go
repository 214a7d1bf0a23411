// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/fractal"
	"github.com/hajimehoshi/ebiten/v2"
)

// keymap binds keyboard keys to explorer actions.
var keymap = []struct {
	key    ebiten.Key
	action fractal.Action
}{
	{ebiten.KeyA, fractal.PanLeft},
	{ebiten.KeyD, fractal.PanRight},
	{ebiten.KeyW, fractal.PanUp},
	{ebiten.KeyS, fractal.PanDown},
	{ebiten.KeyUp, fractal.ZoomIn},
	{ebiten.KeyDown, fractal.ZoomOut},
	{ebiten.KeyLeft, fractal.IterDown},
	{ebiten.KeyRight, fractal.IterUp},
	{ebiten.KeyX, fractal.Screenshot},
	{ebiten.KeyEscape, fractal.Quit},
}

// pollKeys returns the actions whose keys are held according to pressed.
func pollKeys(pressed func(ebiten.Key) bool) fractal.KeySet {
	var ks fractal.KeySet
	for _, m := range keymap {
		if pressed(m.key) {
			ks = ks.With(m.action)
		}
	}
	return ks
}

// keyboard is a fractal.InputSource reading ebiten's key state.
type keyboard struct{}

func (keyboard) Poll() fractal.Input {
	return pollKeys(ebiten.IsKeyPressed)
}

// pixelPresenter copies each frame into a buffer drawn by game.Draw.
type pixelPresenter struct {
	pixels []byte
}

func (p *pixelPresenter) Clear() {
	clear(p.pixels)
}

func (p *pixelPresenter) Present(f *fractal.Frame) error {
	if len(p.pixels) != len(f.Data()) {
		p.pixels = make([]byte, len(f.Data()))
	}
	copy(p.pixels, f.Data())
	return nil
}

// game adapts fractal.Loop to ebiten.Game. Each ebiten update runs one
// loop tick.
type game struct {
	loop      *fractal.Loop
	presenter *pixelPresenter
	name      string
	width     int
	height    int
}

func newGame(width, height int, s fractal.Strategy, table *fractal.ColorTable, opts ...fractal.LoopOption) (*game, error) {
	p := &pixelPresenter{pixels: make([]byte, width*height*4)}
	loop, err := fractal.NewLoop(width, height, s, table, p, keyboard{}, opts...)
	if err != nil {
		return nil, err
	}
	return &game{
		loop:      loop,
		presenter: p,
		name:      s.Name(),
		width:     width,
		height:    height,
	}, nil
}

func (g *game) Update() error {
	if err := g.loop.Step(); err != nil {
		if errors.Is(err, fractal.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	if g.loop.State() == fractal.StateTerminated {
		return ebiten.Termination
	}
	ebiten.SetWindowTitle(fmt.Sprintf("FPS: %.2f [%s]", g.loop.FPS(), g.name))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if len(g.presenter.pixels) == g.width*g.height*4 {
		screen.WritePixels(g.presenter.pixels)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
