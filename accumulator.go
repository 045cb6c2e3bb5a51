package flame

import (
	"fmt"
	"math"
)

// Accumulator is the immutable result of a chaos-game run: for every pixel
// of a width x height grid, the number of sampled points that landed in it
// and the sum of their color indexes.
//
// Pixel (0, 0) corresponds to the bottom-left corner of the frame; y grows
// upward like in the plane. Renderers flip rows when producing images.
type Accumulator struct {
	width, height int

	hitCount      []int
	colorIndexSum []float64
	maxHitCount   int

	// intensityDenominator is ln(maxHitCount + 1), fixed at build time.
	intensityDenominator float64
}

// Width returns the number of pixel columns.
func (a *Accumulator) Width() int { return a.width }

// Height returns the number of pixel rows.
func (a *Accumulator) Height() int { return a.height }

// MaxHitCount returns the hit count of the most-hit pixel.
func (a *Accumulator) MaxHitCount() int { return a.maxHitCount }

// HitCount returns the number of points that landed in pixel (x, y).
// It panics if (x, y) is outside the grid.
func (a *Accumulator) HitCount(x, y int) int {
	return a.hitCount[a.index(x, y)]
}

// IsHit reports whether at least one point landed in pixel (x, y).
// It panics if (x, y) is outside the grid.
func (a *Accumulator) IsHit(x, y int) bool {
	return a.hitCount[a.index(x, y)] > 0
}

// Intensity returns ln(hits+1) / ln(maxHits+1) for pixel (x, y): 0 for a
// pixel never hit, exactly 1 for the most-hit pixel. The logarithm keeps a
// few very hot pixels from washing out the rest of the image.
//
// It panics if (x, y) is outside the grid.
func (a *Accumulator) Intensity(x, y int) float64 {
	i := a.index(x, y)
	if a.hitCount[i] == 0 {
		return 0
	}
	return math.Log(float64(a.hitCount[i])+1) / a.intensityDenominator
}

// Color returns the display color of pixel (x, y): the palette color of the
// mean color index of its hits, mixed with background in proportion to the
// pixel's intensity. A pixel never hit is exactly background.
//
// It panics if (x, y) is outside the grid.
func (a *Accumulator) Color(palette Palette, background Color, x, y int) Color {
	i := a.index(x, y)
	n := a.hitCount[i]
	if n == 0 {
		return background
	}
	mean := math.Min(1, a.colorIndexSum[i]/float64(n))
	return palette.ColorForIndex(mean).Mix(background, a.Intensity(x, y))
}

// index returns the offset of pixel (x, y) in the backing arrays.
func (a *Accumulator) index(x, y int) int {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		panic(fmt.Sprintf("flame: pixel (%d, %d) out of range %dx%d", x, y, a.width, a.height))
	}
	return y*a.width + x
}

// AccumulatorBuilder collects hits into a mutable grid. It is not safe for
// concurrent use; shard builders per goroutine and Merge them instead.
type AccumulatorBuilder struct {
	frame         Rectangle
	width, height int

	// toPixel maps the frame onto [0,width) x [0,height).
	toPixel Affine

	hitCount      []int
	colorIndexSum []float64
	maxHitCount   int
}

// NewAccumulatorBuilder creates a builder sampling frame onto a grid of
// width x height pixels.
func NewAccumulatorBuilder(frame Rectangle, width, height int) (*AccumulatorBuilder, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: accumulator %dx%d", ErrInvalidDimension, width, height)
	}
	if !(frame.Width() > 0) || !(frame.Height() > 0) {
		return nil, fmt.Errorf("%w: frame %s", ErrInvalidDimension, frame)
	}

	// Move the frame's bottom-left corner to the origin, then stretch the
	// frame to the grid size.
	translation := Translate(-frame.Left(), -frame.Bottom())
	scaling := Scale(float64(width)/frame.Width(), float64(height)/frame.Height())

	return &AccumulatorBuilder{
		frame:         frame,
		width:         width,
		height:        height,
		toPixel:       scaling.Compose(translation),
		hitCount:      make([]int, width*height),
		colorIndexSum: make([]float64, width*height),
	}, nil
}

// Frame returns the sampled region of the plane.
func (b *AccumulatorBuilder) Frame() Rectangle { return b.frame }

// Width returns the number of pixel columns.
func (b *AccumulatorBuilder) Width() int { return b.width }

// Height returns the number of pixel rows.
func (b *AccumulatorBuilder) Height() int { return b.height }

// Hit records p with the given color index. Points outside the frame,
// including points with NaN coordinates, are ignored.
func (b *AccumulatorBuilder) Hit(p Point, colorIndex float64) {
	i, ok := b.pixel(p)
	if !ok {
		return
	}
	b.hitCount[i]++
	b.colorIndexSum[i] += colorIndex
	b.maxHitCount = max(b.maxHitCount, b.hitCount[i])
}

// HitOnly records p without a color index.
func (b *AccumulatorBuilder) HitOnly(p Point) {
	i, ok := b.pixel(p)
	if !ok {
		return
	}
	b.hitCount[i]++
	b.maxHitCount = max(b.maxHitCount, b.hitCount[i])
}

// pixel returns the grid offset p falls in.
func (b *AccumulatorBuilder) pixel(p Point) (int, bool) {
	if !b.frame.Contains(p) {
		return 0, false
	}
	q := b.toPixel.TransformPoint(p)
	// A point just below the right or top edge can round onto the edge
	// after scaling.
	x := min(int(math.Floor(q.X)), b.width-1)
	y := min(int(math.Floor(q.Y)), b.height-1)
	return y*b.width + x, true
}

// Merge adds the hits of other into b. Both builders must have the same frame
// and grid size. The maximum hit count is recomputed from the merged grid.
func (b *AccumulatorBuilder) Merge(other *AccumulatorBuilder) error {
	if other.frame != b.frame {
		return fmt.Errorf("%w: %s and %s", ErrFrameMismatch, b.frame, other.frame)
	}
	if other.width != b.width || other.height != b.height {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrSizeMismatch,
			b.width, b.height, other.width, other.height)
	}
	b.maxHitCount = 0
	for i := range b.hitCount {
		b.hitCount[i] += other.hitCount[i]
		b.colorIndexSum[i] += other.colorIndexSum[i]
		b.maxHitCount = max(b.maxHitCount, b.hitCount[i])
	}
	return nil
}

// Build returns an immutable snapshot of the collected hits. The builder can
// keep collecting afterwards without affecting the snapshot.
func (b *AccumulatorBuilder) Build() *Accumulator {
	return &Accumulator{
		width:                b.width,
		height:               b.height,
		hitCount:             append([]int(nil), b.hitCount...),
		colorIndexSum:        append([]float64(nil), b.colorIndexSum...),
		maxHitCount:          b.maxHitCount,
		intensityDenominator: math.Log(float64(b.maxHitCount) + 1),
	}
}
