package flame

import (
	"slices"
	"strings"
)

// Preset is a ready-made fractal together with the frame it is meant to be
// viewed in. Exactly one of Flame and IFS is set.
type Preset struct {
	Name  string
	Frame Rectangle
	Flame *Flame
	IFS   *IFS
}

// Presets returns the built-in fractals, sorted by name.
func Presets() []Preset {
	ps := []Preset{SharkFin(), Turbulence(), Barnsley(), Sierpinski()}
	slices.SortFunc(ps, func(a, b Preset) int { return strings.Compare(a.Name, b.Name) })
	return ps
}

// PresetByName looks up a built-in fractal by name, ignoring case.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// SharkFin returns the "shark fin" flame.
func SharkFin() Preset {
	return Preset{
		Name:  "sharkfin",
		Frame: mustRect(Pt(-0.25, 0), 5, 4),
		Flame: NewFlame(
			mustFlameTransform(Affine{
				A: -0.4113504, B: -0.7124804, C: -0.4,
				D: 0.7124795, E: -0.4113508, F: 0.8,
			}, 1, 0.1, 0, 0, 0, 0),
			mustFlameTransform(Affine{
				A: -0.3957339, B: 0, C: -1.6,
				D: 0, E: -0.3957337, F: 0.2,
			}, 0, 0, 0, 0, 0.8, 1),
			mustFlameTransform(Affine{
				A: 0.4810169, B: 0, C: 1,
				D: 0, E: 0.4810169, F: 0.9,
			}, 1, 0, 0, 0, 0, 0),
		),
	}
}

// Turbulence returns the "turbulence" flame.
func Turbulence() Preset {
	return Preset{
		Name:  "turbulence",
		Frame: mustRect(Pt(0.1, 0.1), 3, 3),
		Flame: NewFlame(
			mustFlameTransform(Affine{
				A: 0.7124807, B: -0.4113509, C: -0.3,
				D: 0.4113513, E: 0.7124808, F: -0.7,
			}, 0.5, 0, 0, 0.4, 0, 0),
			mustFlameTransform(Affine{
				A: 0.3731079, B: -0.6462417, C: 0.4,
				D: 0.6462414, E: 0.3731076, F: 0.3,
			}, 1, 0, 0.1, 0, 0, 0),
			mustFlameTransform(Affine{
				A: 0.0842641, B: -0.314478, C: -0.1,
				D: 0.314478, E: 0.0842641, F: 0.3,
			}, 1, 0, 0, 0, 0, 0),
		),
	}
}

// Barnsley returns the Barnsley fern as a flame with linear transforms only.
func Barnsley() Preset {
	return Preset{
		Name:  "barnsley",
		Frame: mustRect(Pt(0, 4.5), 6, 10),
		Flame: NewFlame(
			AffineFlameTransform(Affine{A: 0, B: 0, C: 0, D: 0, E: 0.16, F: 0}),
			AffineFlameTransform(Affine{A: 0.2, B: -0.26, C: 0, D: 0.23, E: 0.22, F: 1.6}),
			AffineFlameTransform(Affine{A: -0.15, B: 0.28, C: 0, D: 0.26, E: 0.24, F: 0.44}),
			AffineFlameTransform(Affine{A: 0.85, B: 0.04, C: 0, D: -0.04, E: 0.85, F: 1.6}),
		),
	}
}

// Sierpinski returns the Sierpinski triangle as an IFS over the unit square.
// Each map halves the plane towards one corner: (0,0), (1,0) or (0,1).
func Sierpinski() Preset {
	half := Scale(0.5, 0.5)
	return Preset{
		Name:  "sierpinski",
		Frame: mustRect(Pt(0.5, 0.5), 1, 1),
		IFS: NewIFS(
			half,
			Translate(0.5, 0).Compose(half),
			Translate(0, 0.5).Compose(half),
		),
	}
}

func mustRect(center Point, w, h float64) Rectangle {
	r, err := NewRectangle(center, w, h)
	if err != nil {
		panic(err)
	}
	return r
}

func mustFlameTransform(a Affine, weights ...float64) FlameTransform {
	t, err := NewFlameTransform(a, weights)
	if err != nil {
		panic(err)
	}
	return t
}
