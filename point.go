package flame

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in the fractal plane.
type Point struct {
	X, Y float64
}

// Origin is the point (0, 0). Every chaos-game run starts here.
var Origin = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// R returns the polar radius of the point.
func (p Point) R() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Theta returns the polar angle of the point.
//
// The angle is atan2(x, y), measured from the positive Y axis. Variations
// that depend on the angle are defined against this convention.
func (p Point) Theta() float64 {
	return math.Atan2(p.X, p.Y)
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
