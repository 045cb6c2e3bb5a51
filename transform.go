package flame

import "fmt"

// Transformer maps a point of the plane to another point.
// Affine, Variation and FlameTransform implement it.
type Transformer interface {
	TransformPoint(p Point) Point
}

var (
	_ Transformer = Affine{}
	_ Transformer = Variation(0)
	_ Transformer = FlameTransform{}
)

// FlameTransform is an affine map followed by a weighted sum of variations.
//
// FlameTransform is a value type; its weights are copied on construction and
// never shared.
type FlameTransform struct {
	affine  Affine
	weights [NumVariations]float64
}

// NewFlameTransform creates a flame transform. weights must hold exactly one
// weight per variation, in catalog order.
func NewFlameTransform(affine Affine, weights []float64) (FlameTransform, error) {
	if len(weights) != NumVariations {
		return FlameTransform{}, fmt.Errorf("%w: got %d weights, want %d",
			ErrWeightCount, len(weights), NumVariations)
	}
	t := FlameTransform{affine: affine}
	copy(t.weights[:], weights)
	return t, nil
}

// AffineFlameTransform returns a flame transform that applies only the
// affine map, through the Linear variation with weight 1.
func AffineFlameTransform(affine Affine) FlameTransform {
	t := FlameTransform{affine: affine}
	t.weights[Linear] = 1
	return t
}

// IdentityFlameTransform returns the flame transform that leaves every point
// unchanged.
func IdentityFlameTransform() FlameTransform {
	return AffineFlameTransform(Identity())
}

// Affine returns the affine part of the transform.
func (t FlameTransform) Affine() Affine { return t.affine }

// Weight returns the weight of variation v.
func (t FlameTransform) Weight(v Variation) float64 { return t.weights[v] }

// Weights returns a copy of the weight vector.
func (t FlameTransform) Weights() []float64 {
	w := make([]float64, NumVariations)
	copy(w, t.weights[:])
	return w
}

// WithAffine returns a copy of t using a as its affine part.
func (t FlameTransform) WithAffine(a Affine) FlameTransform {
	t.affine = a
	return t
}

// WithWeight returns a copy of t with the weight of v set to w.
func (t FlameTransform) WithWeight(v Variation, w float64) FlameTransform {
	t.weights[v] = w
	return t
}

// TransformPoint applies the affine map once, then sums the weighted output
// of every variation with a nonzero weight. Variations with a zero weight are
// not evaluated. With all weights zero the result is the origin.
func (t FlameTransform) TransformPoint(p Point) Point {
	g := t.affine.TransformPoint(p)
	sum := Origin
	for i, w := range t.weights {
		if w == 0 {
			continue
		}
		sum = sum.Add(variationFuncs[i](g).Scale(w))
	}
	return sum
}
