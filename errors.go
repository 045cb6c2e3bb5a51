package flame

import "errors"

// Configuration errors. They are returned before any iteration starts;
// callers match them with errors.Is.
var (
	// ErrInvalidDimension is returned for a non-positive width or height,
	// on a frame as well as on an accumulator grid.
	ErrInvalidDimension = errors.New("flame: width and height must be positive")

	// ErrInvalidDensity is returned when the sampling density is negative.
	ErrInvalidDensity = errors.New("flame: density must not be negative")

	// ErrInvalidAspectRatio is returned when expanding a frame to a
	// non-positive aspect ratio.
	ErrInvalidAspectRatio = errors.New("flame: aspect ratio must be positive")

	// ErrWeightCount is returned when a weight vector does not have exactly
	// one entry per variation.
	ErrWeightCount = errors.New("flame: weight count does not match variation catalog")

	// ErrColorRange is returned when a color component lies outside [0, 1].
	ErrColorRange = errors.New("flame: color component out of [0, 1]")

	// ErrPaletteTooSmall is returned when a palette has fewer than 2 colors.
	ErrPaletteTooSmall = errors.New("flame: palette needs at least 2 colors")

	// ErrNoTransforms is returned when computing a fractal with no transforms.
	ErrNoTransforms = errors.New("flame: no transforms to iterate")

	// ErrSizeMismatch is returned when merging accumulators of different shapes.
	ErrSizeMismatch = errors.New("flame: accumulator size mismatch")

	// ErrFrameMismatch is returned when merging accumulators that sample
	// different regions of the plane.
	ErrFrameMismatch = errors.New("flame: accumulator frame mismatch")
)
