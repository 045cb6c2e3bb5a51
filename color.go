package flame

import (
	"fmt"
	stdcolor "image/color"

	"github.com/gogpu/flame/internal/color"
)

// Color is an opaque color with linear red, green and blue components,
// each in [0, 1]. The zero value is black.
type Color struct {
	r, g, b float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a color from its linear components.
func NewColor(r, g, b float64) (Color, error) {
	if !in01(r) || !in01(g) || !in01(b) {
		return Color{}, fmt.Errorf("%w: (%g, %g, %g)", ErrColorRange, r, g, b)
	}
	return Color{r: r, g: g, b: b}, nil
}

// RGB is like NewColor but panics on out-of-range components.
// It is meant for color literals.
func RGB(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Red returns the red component.
func (c Color) Red() float64 { return c.r }

// Green returns the green component.
func (c Color) Green() float64 { return c.g }

// Blue returns the blue component.
func (c Color) Blue() float64 { return c.b }

// Mix returns proportion*c + (1-proportion)*other.
// It panics if proportion is outside [0, 1].
func (c Color) Mix(other Color, proportion float64) Color {
	if !in01(proportion) {
		panic(fmt.Sprintf("flame: mix proportion %g out of [0, 1]", proportion))
	}
	p, q := proportion, 1-proportion
	return Color{
		r: p*c.r + q*other.r,
		g: p*c.g + q*other.g,
		b: p*c.b + q*other.b,
	}
}

// NRGBA returns the gamma-encoded 8-bit sRGB representation of c.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: color.Encode8(c.r),
		G: color.Encode8(c.g),
		B: color.Encode8(c.b),
		A: 0xff,
	}
}

// RGBA implements the image/color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// PackedRGB returns c encoded as sRGB and packed as 0xRRGGBB.
func (c Color) PackedRGB() uint32 {
	n := c.NRGBA()
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.r, c.g, c.b)
}

// in01 reports whether v lies in [0, 1]. NaN does not.
func in01(v float64) bool {
	return v >= 0 && v <= 1
}
