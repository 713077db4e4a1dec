package uniform

import "errors"

// Sentinel errors for uniform mesh-line construction and derivation.
var (
	// ErrBadDivision indicates a division below 1.
	ErrBadDivision = errors.New("uniform: division must be a positive point count")

	// ErrBadDensity indicates a density that is zero, negative, NaN or infinite.
	ErrBadDensity = errors.New("uniform: density must be positive and finite")

	// ErrBadResolution indicates a resolution that is zero, negative, NaN or infinite.
	ErrBadResolution = errors.New("uniform: resolution must be positive and finite")

	// ErrDegenerateInterval indicates a zero-length interval where a view
	// must divide by the length: density- and resolution-driven lines
	// cannot be built over it, and a division-driven line has no density.
	ErrDegenerateInterval = errors.New("uniform: start and stop must differ for density and resolution views")
)
