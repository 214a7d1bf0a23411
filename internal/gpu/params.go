// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/fractal"
)

// paramsSize is the byte size of the Params uniform in mandelbrot.wgsl.
const paramsSize = 32

// frameParams mirrors the shader's Params uniform.
type frameParams struct {
	Width     uint32
	Height    uint32
	MaxIter   uint32
	TableSize uint32
	OffsetX   float32
	OffsetY   float32
	Zoom      float32
	Stride    uint32
}

func makeFrameParams(w, h int, vp fractal.Viewport, tableSize int) frameParams {
	return frameParams{
		Width:     uint32(w),          //nolint:gosec // frame dimensions fit uint32
		Height:    uint32(h),          //nolint:gosec // frame dimensions fit uint32
		MaxIter:   uint32(vp.MaxIter), //nolint:gosec // MaxIter is clamped non-negative
		TableSize: uint32(tableSize),  //nolint:gosec // table size fits uint32
		OffsetX:   float32(vp.Offset.X),
		OffsetY:   float32(vp.Offset.Y),
		Zoom:      float32(vp.Zoom),
		Stride:    uint32(tableSize), //nolint:gosec // table size fits uint32
	}
}

// bytes encodes p in std140 order.
func (p frameParams) bytes() []byte {
	out := make([]byte, paramsSize)
	binary.LittleEndian.PutUint32(out[0:], p.Width)
	binary.LittleEndian.PutUint32(out[4:], p.Height)
	binary.LittleEndian.PutUint32(out[8:], p.MaxIter)
	binary.LittleEndian.PutUint32(out[12:], p.TableSize)
	binary.LittleEndian.PutUint32(out[16:], math.Float32bits(p.OffsetX))
	binary.LittleEndian.PutUint32(out[20:], math.Float32bits(p.OffsetY))
	binary.LittleEndian.PutUint32(out[24:], math.Float32bits(p.Zoom))
	binary.LittleEndian.PutUint32(out[28:], p.Stride)
	return out
}

// packTable serializes the whole table as packed RGBA8 words, row-major.
func packTable(t *fractal.ColorTable) []byte {
	size := t.Size()
	out := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b := t.RGBAt(x, y)
			packed := uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF<<24
			binary.LittleEndian.PutUint32(out[(y*size+x)*4:], packed)
		}
	}
	return out
}

// unpackPixels expands packed RGBA8 words into RGBA bytes.
func unpackPixels(src []byte, dst []uint8, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		packed := binary.LittleEndian.Uint32(src[i*4:])
		dst[i*4+0] = uint8(packed)       //nolint:gosec // byte extraction
		dst[i*4+1] = uint8(packed >> 8)  //nolint:gosec // byte extraction
		dst[i*4+2] = uint8(packed >> 16) //nolint:gosec // byte extraction
		dst[i*4+3] = uint8(packed >> 24) //nolint:gosec // byte extraction
	}
}
