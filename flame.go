package flame

import (
	"fmt"
	"slices"
)

// Flame is an immutable flame fractal definition: a list of flame
// transforms, each assigned a color index by its position.
type Flame struct {
	transforms []FlameTransform
}

// NewFlame creates a flame from the given transforms.
func NewFlame(transforms ...FlameTransform) *Flame {
	return &Flame{transforms: append([]FlameTransform(nil), transforms...)}
}

// Len returns the number of transforms.
func (f *Flame) Len() int { return len(f.transforms) }

// Transforms returns a copy of the transforms.
func (f *Flame) Transforms() []FlameTransform {
	return append([]FlameTransform(nil), f.transforms...)
}

// Compute plays the chaos game with the flame's transforms and accumulates
// density * width * height points sampled in frame onto a width x height
// grid, along with their running color index.
//
// The result only depends on the inputs and the seed (see WithSeed).
func (f *Flame) Compute(frame Rectangle, width, height, density int, opts ...ComputeOption) (*Accumulator, error) {
	colorIndexes, err := ColorIndexes(len(f.transforms))
	if err != nil {
		return nil, err
	}
	transforms := make([]Transformer, len(f.transforms))
	for i, t := range f.transforms {
		transforms[i] = t
	}
	return compute(transforms, colorIndexes, frame, width, height, density, opts)
}

// FlameBuilder edits the transforms of a flame. Every mutation notifies the
// functions registered with OnChange.
//
// Methods taking a transform index panic if it is out of range.
type FlameBuilder struct {
	transforms []FlameTransform

	// observers are notified in registration order.
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func()
}

// NewFlameBuilder creates a builder holding the transforms of f.
// A nil f starts an empty builder.
func NewFlameBuilder(f *Flame) *FlameBuilder {
	b := &FlameBuilder{}
	if f != nil {
		b.transforms = f.Transforms()
	}
	return b
}

// Len returns the number of transforms.
func (b *FlameBuilder) Len() int { return len(b.transforms) }

// Add appends a transform.
func (b *FlameBuilder) Add(t FlameTransform) {
	b.transforms = append(b.transforms, t)
	b.notify()
}

// Transform returns the transform at index i.
func (b *FlameBuilder) Transform(i int) FlameTransform {
	b.check(i)
	return b.transforms[i]
}

// SetTransform replaces the transform at index i.
func (b *FlameBuilder) SetTransform(i int, t FlameTransform) {
	b.check(i)
	b.transforms[i] = t
	b.notify()
}

// Remove deletes the transform at index i. Later transforms shift down.
func (b *FlameBuilder) Remove(i int) {
	b.check(i)
	b.transforms = append(b.transforms[:i], b.transforms[i+1:]...)
	b.notify()
}

// Affine returns the affine part of the transform at index i.
func (b *FlameBuilder) Affine(i int) Affine {
	b.check(i)
	return b.transforms[i].affine
}

// SetAffine replaces the affine part of the transform at index i.
func (b *FlameBuilder) SetAffine(i int, a Affine) {
	b.check(i)
	b.transforms[i].affine = a
	b.notify()
}

// VariationWeight returns the weight of v in the transform at index i.
func (b *FlameBuilder) VariationWeight(i int, v Variation) float64 {
	b.check(i)
	return b.transforms[i].weights[v]
}

// SetVariationWeight sets the weight of v in the transform at index i.
func (b *FlameBuilder) SetVariationWeight(i int, v Variation, w float64) {
	b.check(i)
	b.transforms[i].weights[v] = w
	b.notify()
}

// Build returns a flame with the current transforms. Later edits do not
// affect it.
func (b *FlameBuilder) Build() *Flame {
	return NewFlame(b.transforms...)
}

// OnChange registers fn to be called after every mutation. Observers run in
// the order they were registered. The returned function unregisters fn.
func (b *FlameBuilder) OnChange(fn func()) (cancel func()) {
	id := b.nextID
	b.nextID++
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		b.observers = slices.DeleteFunc(b.observers, func(o observer) bool { return o.id == id })
	}
}

func (b *FlameBuilder) notify() {
	for _, o := range b.observers {
		o.fn()
	}
}

func (b *FlameBuilder) check(i int) {
	if i < 0 || i >= len(b.transforms) {
		panic(fmt.Sprintf("flame: transform index %d out of range [0, %d)", i, len(b.transforms)))
	}
}
