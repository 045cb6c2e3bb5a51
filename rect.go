package flame

import "fmt"

// Rectangle is an axis-aligned region of the plane, described by its center
// and its size. It is the frame a fractal is sampled in.
//
// The zero value is not a valid frame; use NewRectangle.
type Rectangle struct {
	center        Point
	width, height float64
}

// NewRectangle creates a rectangle centered on center.
// Width and height must be strictly positive.
func NewRectangle(center Point, width, height float64) (Rectangle, error) {
	if !(width > 0) || !(height > 0) {
		return Rectangle{}, fmt.Errorf("%w: rectangle %gx%g", ErrInvalidDimension, width, height)
	}
	return Rectangle{center: center, width: width, height: height}, nil
}

// Center returns the center of the rectangle.
func (r Rectangle) Center() Point { return r.center }

// Width returns the width of the rectangle.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the height of the rectangle.
func (r Rectangle) Height() float64 { return r.height }

// Left returns the smallest x coordinate.
func (r Rectangle) Left() float64 { return r.center.X - r.width/2 }

// Right returns the largest x coordinate. It is not part of the rectangle.
func (r Rectangle) Right() float64 { return r.center.X + r.width/2 }

// Bottom returns the smallest y coordinate.
func (r Rectangle) Bottom() float64 { return r.center.Y - r.height/2 }

// Top returns the largest y coordinate. It is not part of the rectangle.
func (r Rectangle) Top() float64 { return r.center.Y + r.height/2 }

// AspectRatio returns width / height.
func (r Rectangle) AspectRatio() float64 { return r.width / r.height }

// Contains reports whether p lies in the half-open region
// [Left, Right) x [Bottom, Top). Points with a NaN coordinate are never
// contained.
func (r Rectangle) Contains(p Point) bool {
	return r.Left() <= p.X && p.X < r.Right() &&
		r.Bottom() <= p.Y && p.Y < r.Top()
}

// ExpandToAspectRatio returns the smallest rectangle with the same center
// that contains r and whose width / height equals ratio. Exactly one
// dimension grows; neither shrinks.
func (r Rectangle) ExpandToAspectRatio(ratio float64) (Rectangle, error) {
	if !(ratio > 0) {
		return Rectangle{}, fmt.Errorf("%w: %g", ErrInvalidAspectRatio, ratio)
	}
	w, h := r.width, r.height
	switch current := r.AspectRatio(); {
	case ratio > current:
		w = h * ratio
	case ratio < current:
		h = w / ratio
	}
	return Rectangle{center: r.center, width: w, height: h}, nil
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%s %gx%g]", r.center, r.width, r.height)
}
