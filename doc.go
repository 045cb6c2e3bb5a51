// Package flame renders flame and IFS fractals with the chaos-game algorithm.
//
// # Overview
//
// A fractal is a small set of transforms of the plane. Starting from the
// origin, the chaos game repeatedly applies one transform picked at random
// and records where the point lands. The visited points are binned into an
// [Accumulator], one cell per output pixel, from which per-pixel intensity
// and color are derived.
//
// # Quick Start
//
//	import "github.com/gogpu/flame"
//
//	p := flame.SharkFin()
//	acc, err := p.Flame.Compute(p.Frame, 500, 400, 50)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := acc.Color(flame.RGBPalette, flame.Black, 250, 200)
//
// # Transforms
//
// An [Affine] is a 2x3 matrix. A [FlameTransform] applies an affine map and
// then blends the six [Variation]s of the catalog according to a weight
// vector. An [IFS] uses affine maps only and records hits without color.
//
// # Coordinate System
//
// The plane uses mathematical coordinates (Y grows upward). Accumulator
// pixel (0, 0) is the bottom-left corner of the frame; the render package
// flips rows when producing images.
//
// # Determinism
//
// A run is single-threaded and driven by one seeded random source. The same
// inputs and seed (see [WithSeed]) always yield the same accumulator.
package flame
