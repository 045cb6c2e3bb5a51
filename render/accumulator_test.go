// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/flame"
)

// fakeSource has a single hit pixel at the bottom-left corner.
type fakeSource struct{ w, h int }

func (s fakeSource) Width() int          { return s.w }
func (s fakeSource) Height() int         { return s.h }
func (s fakeSource) IsHit(x, y int) bool { return x == 0 && y == 0 }

func (s fakeSource) Intensity(x, y int) float64 {
	if s.IsHit(x, y) {
		return 1
	}
	return 0
}

func (s fakeSource) Color(_ flame.Palette, bg flame.Color, x, y int) flame.Color {
	if s.IsHit(x, y) {
		return flame.Red
	}
	return bg
}

func TestColorFlipsRows(t *testing.T) {
	img := Color(fakeSource{w: 3, h: 2}, flame.RGBPalette, flame.Black)

	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Bounds() = %v, want 3x2", b)
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left = %v, want red", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("top-left = %v, want black", got)
	}
}

func TestGray(t *testing.T) {
	img := Gray(fakeSource{w: 2, h: 2})
	if got := img.GrayAt(0, 1).Y; got != 255 {
		t.Errorf("hit pixel = %d, want 255", got)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {1, 1}} {
		if got := img.GrayAt(p[0], p[1]).Y; got != 0 {
			t.Errorf("pixel %v = %d, want 0", p, got)
		}
	}
}

func TestBitmap(t *testing.T) {
	img := Bitmap(fakeSource{w: 2, h: 2})
	if got := img.GrayAt(0, 1).Y; got != 0 {
		t.Errorf("hit pixel = %d, want 0 (black)", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("empty pixel = %d, want 255 (white)", got)
	}
}

func TestBitmapSierpinski(t *testing.T) {
	p := flame.Sierpinski()
	acc, err := p.IFS.Compute(p.Frame, 32, 32, 4)
	if err != nil {
		t.Fatal(err)
	}
	img := Bitmap(acc)

	// The right angle of the triangle is at the bottom-left of the image;
	// the top-right corner lies outside it.
	if got := img.GrayAt(0, 31).Y; got != 0 {
		t.Errorf("bottom-left = %d, want hit", got)
	}
	if got := img.GrayAt(31, 0).Y; got != 255 {
		t.Errorf("top-right = %d, want empty", got)
	}
}
