package flame

import "fmt"

// IFS is an immutable iterated function system made of affine maps only.
// Its accumulator records hits without color.
type IFS struct {
	transforms []Affine
}

// NewIFS creates an IFS from the given affine maps.
func NewIFS(transforms ...Affine) *IFS {
	return &IFS{transforms: append([]Affine(nil), transforms...)}
}

// Len returns the number of transforms.
func (s *IFS) Len() int { return len(s.transforms) }

// Transforms returns a copy of the affine maps.
func (s *IFS) Transforms() []Affine {
	return append([]Affine(nil), s.transforms...)
}

// Compute plays the chaos game with the IFS maps and records
// density * width * height points sampled in frame. Query the result with
// Accumulator.IsHit or Accumulator.Intensity.
func (s *IFS) Compute(frame Rectangle, width, height, density int, opts ...ComputeOption) (*Accumulator, error) {
	transforms := make([]Transformer, len(s.transforms))
	for i, t := range s.transforms {
		transforms[i] = t
	}
	return compute(transforms, nil, frame, width, height, density, opts)
}

// Flame returns the equivalent flame, each map becoming a purely linear
// flame transform.
func (s *IFS) Flame() *Flame {
	ts := make([]FlameTransform, len(s.transforms))
	for i, a := range s.transforms {
		ts[i] = AffineFlameTransform(a)
	}
	return NewFlame(ts...)
}

// IFSBuilder edits the maps of an IFS.
// Methods taking an index panic if it is out of range.
type IFSBuilder struct {
	transforms []Affine
}

// NewIFSBuilder creates a builder holding the maps of s. A nil s starts an
// empty builder.
func NewIFSBuilder(s *IFS) *IFSBuilder {
	b := &IFSBuilder{}
	if s != nil {
		b.transforms = s.Transforms()
	}
	return b
}

// Len returns the number of maps.
func (b *IFSBuilder) Len() int { return len(b.transforms) }

// Add appends a map.
func (b *IFSBuilder) Add(a Affine) {
	b.transforms = append(b.transforms, a)
}

// Transform returns the map at index i.
func (b *IFSBuilder) Transform(i int) Affine {
	b.check(i)
	return b.transforms[i]
}

// SetTransform replaces the map at index i.
func (b *IFSBuilder) SetTransform(i int, a Affine) {
	b.check(i)
	b.transforms[i] = a
}

// Remove deletes the map at index i.
func (b *IFSBuilder) Remove(i int) {
	b.check(i)
	b.transforms = append(b.transforms[:i], b.transforms[i+1:]...)
}

// Build returns an IFS with the current maps.
func (b *IFSBuilder) Build() *IFS {
	return NewIFS(b.transforms...)
}

func (b *IFSBuilder) check(i int) {
	if i < 0 || i >= len(b.transforms) {
		panic(fmt.Sprintf("flame: transform index %d out of range [0, %d)", i, len(b.transforms)))
	}
}
