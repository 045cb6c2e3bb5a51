package flame

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// pcgStream is the fixed stream selector of the PCG generator; only the
// seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// ColorIndexes returns the color index assigned to each of n transforms.
// Transform 0 gets 0 and transform 1 gets 1; the following ones subdivide
// [0, 1] in binary order (1/2, 1/4, 3/4, 1/8, ...) so that neighbouring
// transforms end up far apart on the palette.
func ColorIndexes(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d transforms", ErrNoTransforms, n)
	}
	indexes := make([]float64, n)
	for i := range indexes {
		if i <= 1 {
			indexes[i] = float64(i)
			continue
		}
		den := math.Exp2(math.Ceil(math.Log2(float64(i))))
		num := 1 + 2*(float64(i)-den/2-1)
		indexes[i] = num / den
	}
	return indexes, nil
}

// chaosGame iterates a set of transforms from the origin and records the
// visited points.
type chaosGame struct {
	transforms []Transformer

	// colorIndexes holds one color index per transform. A nil slice means
	// hit-only recording.
	colorIndexes []float64

	rng    *rand.Rand
	warmup int
}

func newChaosGame(transforms []Transformer, colorIndexes []float64, o computeOptions) *chaosGame {
	return &chaosGame{
		transforms:   transforms,
		colorIndexes: colorIndexes,
		rng:          rand.New(rand.NewPCG(o.seed, pcgStream)),
		warmup:       o.warmup,
	}
}

// run performs the warm-up iterations, then records iterations points
// into b. Degenerate points (NaN, infinities) are fed to b like any other
// and dropped there.
func (g *chaosGame) run(b *AccumulatorBuilder, iterations int) {
	n := len(g.transforms)
	p := Origin
	c := 0.0

	for range g.warmup {
		i := g.rng.IntN(n)
		p = g.transforms[i].TransformPoint(p)
		if g.colorIndexes != nil {
			c = (g.colorIndexes[i] + c) / 2
		}
	}

	if g.colorIndexes == nil {
		for range iterations {
			p = g.transforms[g.rng.IntN(n)].TransformPoint(p)
			b.HitOnly(p)
		}
		return
	}

	for range iterations {
		i := g.rng.IntN(n)
		p = g.transforms[i].TransformPoint(p)
		c = (g.colorIndexes[i] + c) / 2
		b.Hit(p, c)
	}
}

// compute validates the run parameters, plays the chaos game and returns
// the resulting accumulator. Every error is reported before iterating.
func compute(transforms []Transformer, colorIndexes []float64,
	frame Rectangle, width, height, density int, opts []ComputeOption) (*Accumulator, error) {
	if len(transforms) == 0 {
		return nil, ErrNoTransforms
	}
	if density < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDensity, density)
	}
	b, err := NewAccumulatorBuilder(frame, width, height)
	if err != nil {
		return nil, err
	}

	if density > 0 && density > math.MaxInt/width/height {
		return nil, fmt.Errorf("%w: %d samples per pixel on a %dx%d grid overflows the iteration count",
			ErrInvalidDensity, density, width, height)
	}

	o := newComputeOptions(opts)
	iterations := density * width * height

	log := Logger()
	log.Debug("flame: chaos game",
		"transforms", len(transforms),
		"frame", frame.String(),
		"width", width,
		"height", height,
		"iterations", iterations,
		"seed", o.seed)

	start := time.Now()
	newChaosGame(transforms, colorIndexes, o).run(b, iterations)
	acc := b.Build()

	log.Debug("flame: chaos game done",
		"elapsed", time.Since(start),
		"max_hits", acc.MaxHitCount())
	return acc, nil
}
