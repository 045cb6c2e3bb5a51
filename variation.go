package flame

import (
	"math"
	"strings"
)

// Variation identifies one of the nonlinear point functions a flame
// transform blends together. The set is closed: the value of a Variation is
// its position in weight vectors.
type Variation int

// The variation catalog, in weight-vector order.
const (
	Linear Variation = iota
	Sinusoidal
	Spherical
	Swirl
	Horseshoe
	Bubble

	// NumVariations is the number of variations in the catalog and the
	// required length of every weight vector.
	NumVariations = int(Bubble) + 1
)

var variationNames = [NumVariations]string{
	Linear:     "Linear",
	Sinusoidal: "Sinusoidal",
	Spherical:  "Spherical",
	Swirl:      "Swirl",
	Horseshoe:  "Horseshoe",
	Bubble:     "Bubble",
}

// Spherical and Horseshoe divide by r and yield NaN or Inf at the origin.
// Those values are left to propagate; the accumulator drops them.
var variationFuncs = [NumVariations]func(Point) Point{
	Linear: func(p Point) Point {
		return p
	},
	Sinusoidal: func(p Point) Point {
		return Point{X: math.Sin(p.X), Y: math.Sin(p.Y)}
	},
	Spherical: func(p Point) Point {
		r2 := p.X*p.X + p.Y*p.Y
		return Point{X: p.X / r2, Y: p.Y / r2}
	},
	Swirl: func(p Point) Point {
		sin, cos := math.Sincos(p.X*p.X + p.Y*p.Y)
		return Point{
			X: p.X*sin - p.Y*cos,
			Y: p.X*cos + p.Y*sin,
		}
	},
	Horseshoe: func(p Point) Point {
		r := p.R()
		return Point{
			X: (p.X - p.Y) * (p.X + p.Y) / r,
			Y: 2 * p.X * p.Y / r,
		}
	},
	Bubble: func(p Point) Point {
		k := 4 / (p.X*p.X + p.Y*p.Y + 4)
		return Point{X: k * p.X, Y: k * p.Y}
	},
}

// Variations returns every variation in index order.
func Variations() []Variation {
	vs := make([]Variation, NumVariations)
	for i := range vs {
		vs[i] = Variation(i)
	}
	return vs
}

// VariationByName looks up a variation by its name, ignoring case.
func VariationByName(name string) (Variation, bool) {
	for i, n := range variationNames {
		if strings.EqualFold(n, name) {
			return Variation(i), true
		}
	}
	return 0, false
}

// Index returns the position of v in weight vectors.
func (v Variation) Index() int { return int(v) }

// Valid reports whether v belongs to the catalog.
func (v Variation) Valid() bool { return v >= 0 && int(v) < NumVariations }

// Name returns the display name of the variation.
func (v Variation) Name() string {
	if !v.Valid() {
		return "Variation(?)"
	}
	return variationNames[v]
}

func (v Variation) String() string { return v.Name() }

// TransformPoint applies the variation to p.
func (v Variation) TransformPoint(p Point) Point {
	return variationFuncs[v](p)
}
