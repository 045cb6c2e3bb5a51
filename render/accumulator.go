// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/flame"
	"github.com/gogpu/flame/internal/color"
)

// Source is the read surface of an accumulator.
// *flame.Accumulator implements it.
type Source interface {
	Width() int
	Height() int
	IsHit(x, y int) bool
	Intensity(x, y int) float64
	Color(palette flame.Palette, background flame.Color, x, y int) flame.Color
}

var _ Source = (*flame.Accumulator)(nil)

// Color renders every pixel with src.Color, sRGB-encoded to 8 bits.
func Color(src Source, palette flame.Palette, background flame.Color) *image.NRGBA {
	w, h := src.Width(), src.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for row := range h {
		y := h - 1 - row
		for x := range w {
			img.SetNRGBA(x, row, src.Color(palette, background, x, y).NRGBA())
		}
	}
	flame.Logger().Debug("render: color", "width", w, "height", h)
	return img
}

// Gray renders the intensity of every pixel as an sRGB-encoded gray level:
// black where nothing landed, white at the most-hit pixel.
func Gray(src Source) *image.Gray {
	w, h := src.Width(), src.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for row := range h {
		y := h - 1 - row
		off := row * img.Stride
		for x := range w {
			img.Pix[off+x] = color.Encode8(src.Intensity(x, y))
		}
	}
	flame.Logger().Debug("render: gray", "width", w, "height", h)
	return img
}

// Bitmap renders hit pixels black on a white background.
func Bitmap(src Source) *image.Gray {
	w, h := src.Width(), src.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for row := range h {
		y := h - 1 - row
		off := row * img.Stride
		for x := range w {
			if !src.IsHit(x, y) {
				img.Pix[off+x] = 0xff
			}
		}
	}
	flame.Logger().Debug("render: bitmap", "width", w, "height", h)
	return img
}
