package flame

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hsluv/hsluv-go"

	"github.com/gogpu/flame/internal/color"
)

// Palette maps a color index in [0, 1] to a color.
type Palette interface {
	ColorForIndex(index float64) Color
}

// InterpolatedPalette interpolates linearly between an ordered list of
// control colors spread evenly over [0, 1].
type InterpolatedPalette struct {
	colors []Color
}

var _ Palette = (*InterpolatedPalette)(nil)

// RGBPalette goes from red at 0 through green at 0.5 to blue at 1.
var RGBPalette = &InterpolatedPalette{colors: []Color{Red, Green, Blue}}

// NewInterpolatedPalette creates a palette from at least two control colors.
func NewInterpolatedPalette(colors ...Color) (*InterpolatedPalette, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, len(colors))
	}
	return &InterpolatedPalette{colors: append([]Color(nil), colors...)}, nil
}

// Colors returns a copy of the control colors.
func (p *InterpolatedPalette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// ColorForIndex returns the color at position index. Index 0 and 1 return
// the first and last control colors exactly; a position that falls on a
// control color returns it unchanged.
//
// It panics if index is outside [0, 1].
func (p *InterpolatedPalette) ColorForIndex(index float64) Color {
	if !in01(index) {
		panic(fmt.Sprintf("flame: palette index %g out of [0, 1]", index))
	}
	pos := index * float64(len(p.colors)-1)
	k := math.Floor(pos)
	i := int(k)
	if pos == k {
		return p.colors[i]
	}
	return p.colors[i].Mix(p.colors[i+1], 1-(pos-k))
}

// Saturation and lightness of the control colors of a random palette,
// in HSLuv units.
const (
	randomPaletteSaturation = 90
	randomPaletteLightness  = 60
)

// NewRandomPalette creates a palette of n control colors with random hues.
// Hues are drawn in HSLuv space so that all control colors share the same
// perceived lightness.
func NewRandomPalette(n int, rng *rand.Rand) (*InterpolatedPalette, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, n)
	}
	colors := make([]Color, n)
	for i := range colors {
		r, g, b := hsluv.HsluvToRGB(rng.Float64()*360, randomPaletteSaturation, randomPaletteLightness)
		colors[i] = Color{
			r: color.SRGBToLinear(clamp01(r)),
			g: color.SRGBToLinear(clamp01(g)),
			b: color.SRGBToLinear(clamp01(b)),
		}
	}
	return &InterpolatedPalette{colors: colors}, nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
