package flame

import "math"

// Affine represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation.
func Translate(dx, dy float64) Affine {
	return Affine{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Scale creates a scaling.
func Scale(sx, sy float64) Affine {
	return Affine{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate creates a counter-clockwise rotation about the origin (angle in radians).
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// ShearX creates a horizontal shear: x' = x + sx*y.
func ShearX(sx float64) Affine {
	return Affine{
		A: 1, B: sx, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// ShearY creates a vertical shear: y' = sy*x + y.
func ShearY(sy float64) Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: sy, E: 1, F: 0,
	}
}

// Compose returns the matrix product t * u.
//
// The result applies u first, then t:
//
//	t.Compose(u).TransformPoint(p) == t.TransformPoint(u.TransformPoint(p))
func (t Affine) Compose(u Affine) Affine {
	return Affine{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// TransformPoint applies the transformation to a point.
func (t Affine) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// TranslationX returns the horizontal translation component.
func (t Affine) TranslationX() float64 { return t.C }

// TranslationY returns the vertical translation component.
func (t Affine) TranslationY() float64 { return t.F }

// IsIdentity returns true if the transformation is the identity.
func (t Affine) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}
