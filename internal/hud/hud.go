// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hud draws a small statistics overlay onto rendered frames.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultSize is the default font size in points.
const DefaultSize = 12

// padding around the text block, in pixels.
const padding = 4

// maskCacheSize bounds the number of rendered lines kept between frames.
const maskCacheSize = 64

// HUD renders strategy, FPS and viewport state in the top-left corner.
type HUD struct {
	face       font.Face
	printer    *message.Printer
	fg         color.Color
	bg         color.Color
	lineHeight int
	ascent     int
	masks      *cache.Cache[string, *image.Alpha]
}

// Option configures a HUD.
type Option func(*options)

type options struct {
	size float64
	fg   color.Color
	bg   color.Color
	lang language.Tag
}

// WithSize sets the font size in points.
func WithSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.size = size
		}
	}
}

// WithColors sets the text and backdrop colors.
func WithColors(fg, bg color.Color) Option {
	return func(o *options) {
		o.fg = fg
		o.bg = bg
	}
}

// WithLanguage sets the locale used for number formatting.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// New parses the embedded Go Mono font and returns a HUD.
func New(opts ...Option) (*HUD, error) {
	o := options{
		size: DefaultSize,
		fg:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		bg:   color.RGBA{A: 160},
		lang: language.English,
	}
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    o.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: create face: %w", err)
	}

	m := face.Metrics()
	return &HUD{
		face:       face,
		printer:    message.NewPrinter(o.lang),
		fg:         o.fg,
		bg:         o.bg,
		lineHeight: m.Height.Ceil(),
		ascent:     m.Ascent.Ceil(),
		masks:      cache.New[string, *image.Alpha](maskCacheSize),
	}, nil
}

// Lines formats s into the overlay text.
func (h *HUD) Lines(s fractal.Stats) []string {
	vp := s.Viewport
	return []string{
		h.printer.Sprintf("%s  %.1f fps", s.Strategy, s.FPS),
		h.printer.Sprintf("iter %d / %d", vp.MaxIter, vp.MaxIterLimit),
		h.printer.Sprintf("zoom %.3e  frame %d", vp.Zoom, s.Frames),
	}
}

// Draw paints the overlay for s onto dst. Text that does not fit is clipped.
func (h *HUD) Draw(dst *fractal.Frame, s fractal.Stats) {
	if dst == nil || dst.Empty() {
		return
	}
	lines := h.Lines(s)
	masks := make([]*image.Alpha, len(lines))

	width := 0
	for i, line := range lines {
		masks[i] = h.masks.GetOrCreate(line, func() *image.Alpha { return h.renderLine(line) })
		width = max(width, masks[i].Bounds().Dx())
	}
	box := image.Rect(0, 0, width+2*padding, len(lines)*h.lineHeight+2*padding).
		Intersect(dst.Bounds())
	draw.Draw(dst, box, image.NewUniform(h.bg), image.Point{}, draw.Over)

	fg := image.NewUniform(h.fg)
	for i, mask := range masks {
		r := mask.Bounds().Add(image.Pt(padding, padding+i*h.lineHeight))
		draw.DrawMask(dst, r, fg, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// renderLine rasterizes line into a coverage mask one line tall.
func (h *HUD) renderLine(line string) *image.Alpha {
	w := font.MeasureString(h.face, line).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, max(w, 1), h.lineHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: h.face,
		Dot:  fixed.P(0, h.ascent),
	}
	d.DrawString(line)
	return mask
}

// CacheStats reports the line mask cache counters.
func (h *HUD) CacheStats() cache.Stats {
	return h.masks.Stats()
}

// Close drops the cached line masks and releases the font face.
func (h *HUD) Close() error {
	h.masks.Clear()
	return h.face.Close()
}
