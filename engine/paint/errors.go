package paint

import "errors"

var (
	// ErrInvalidDimension is returned when a paint buffer is created with a non-positive width or height.
	// It aborts initialization of the owning surface.
	ErrInvalidDimension = errors.New("paint: invalid buffer dimension")

	// ErrOutOfBounds is returned when a texel access falls outside the buffer grid.
	// The coordinator clamps every mapped address, so seeing this outside tests means the mapper is broken.
	ErrOutOfBounds = errors.New("paint: texel out of bounds")

	// ErrDuplicateSurface is returned when a surface identifier is registered twice.
	ErrDuplicateSurface = errors.New("paint: duplicate surface")
)
