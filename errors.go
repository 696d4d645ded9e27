package carve

import "errors"

// Sentinel errors reported by the carving core. Both are precondition
// violations: they are detected before any seam is removed, so a failed
// call never exposes a partially carved image.
var (
	// ErrInvalidDimension indicates the pixel buffer is empty or too small
	// for the gradient computation, which needs at least two distinct
	// pixels along each axis.
	ErrInvalidDimension = errors.New("carve: image width and height must be at least 2 pixels")

	// ErrInvalidReduction indicates the requested number of seams would
	// reduce the image width to zero or below.
	ErrInvalidReduction = errors.New("carve: seam count must be less than the image width")
)
