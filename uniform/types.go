// Package uniform: the Line contract and documented defaults for evenly
// spaced constant mesh lines.
package uniform

import "github.com/katalvlaran/meshline/mesh"

// DEFAULTS - single source of truth for the owned parameter each family
// assumes when none is given.
const (
	// DefaultDivision is the point count a division-driven line assumes.
	DefaultDivision = 1000

	// DefaultDensity is the minimum points-per-unit-length a
	// density-driven line assumes.
	DefaultDensity = 1000.0

	// DefaultResolution is the maximum spacing a resolution-driven line
	// assumes.
	DefaultResolution = 1e-3
)

// Line is the contract shared by the three uniform families. Each
// concrete family (DivisionLine, DensityLine, ResolutionLine) owns
// exactly one of the three views; the other two are derived, read-only,
// and recomputed on every call.
type Line interface {
	mesh.Constant

	// Division returns the number of sample points (owned or derived).
	Division() int

	// Density returns points per unit length. On a degenerate
	// division-driven line (start == stop) the density is undefined and
	// ErrDegenerateInterval is returned; the other families never error
	// here, their constructors already reject degenerate intervals.
	Density() (float64, error)

	// Resolution returns the spacing between adjacent points.
	Resolution() float64

	// With returns a new line with the given overrides applied. The
	// concrete family of the result follows the overridden view:
	// Division wins over Density, Density over Resolution; with none of
	// the three present the family and its owned value are preserved.
	// Start/Stop default to the receiver's endpoints.
	With(opts ...Option) (Line, error)

	// WithDivision resolves the division (override or current view, even
	// when derived), clamps it by any Min/MaxDivision bounds, and rebuilds
	// as a DivisionLine.
	WithDivision(opts ...Option) (Line, error)

	// WithDensity is WithDivision for the density view; the result is a
	// DensityLine.
	WithDensity(opts ...Option) (Line, error)

	// WithResolution is WithDivision for the resolution view; the result
	// is a ResolutionLine.
	WithResolution(opts ...Option) (Line, error)

	// WithStart returns the same family with the start endpoint replaced;
	// the owned value carries over and derived views recompute against
	// the new length.
	WithStart(start float64) (Line, error)

	// WithStop is WithStart for the stop endpoint.
	WithStop(stop float64) (Line, error)
}
