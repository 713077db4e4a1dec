// Package uniform: functional overrides for the wither operations. This
// file defines:
//   - Option / overrides (functional options with internal state),
//   - view setters (Division, Density, Resolution, Start, Stop),
//   - clamp bounds (MinX / MaxX) for each view.
//
// Design notes:
//   - An absent override means "keep the receiver's value" — resolving a
//     view from the receiver works even when that view is derived.
//   - Bounds clamp in a fixed order, minimum first then maximum, so
//     min > max deterministically yields max (see mesh.ClipInt).
//   - Bounds only act together with their own view: Min/MaxDivision are
//     consulted when the rebuild is division-driven, and so on.
package uniform

// Option records one override for a wither call.
type Option func(*overrides)

// overrides accumulates the resolved override set. Fields are pointers:
// nil means "not overridden".
type overrides struct {
	start, stop *float64

	division                 *int
	minDivision, maxDivision *int

	density                *float64
	minDensity, maxDensity *float64

	resolution                   *float64
	minResolution, maxResolution *float64
}

// gatherOptions folds opts into a fresh overrides set.
func gatherOptions(opts []Option) overrides {
	var ov overrides
	for _, opt := range opts {
		opt(&ov)
	}

	return ov
}

// Start overrides the start endpoint.
func Start(x float64) Option { return func(ov *overrides) { ov.start = &x } }

// Stop overrides the stop endpoint.
func Stop(x float64) Option { return func(ov *overrides) { ov.stop = &x } }

// Division overrides the point count; the rebuilt line is division-driven.
func Division(n int) Option { return func(ov *overrides) { ov.division = &n } }

// MinDivision sets a lower clamp bound for the resolved division.
func MinDivision(n int) Option { return func(ov *overrides) { ov.minDivision = &n } }

// MaxDivision sets an upper clamp bound for the resolved division.
func MaxDivision(n int) Option { return func(ov *overrides) { ov.maxDivision = &n } }

// Density overrides the minimum density; the rebuilt line is density-driven.
func Density(v float64) Option { return func(ov *overrides) { ov.density = &v } }

// MinDensity sets a lower clamp bound for the resolved density.
func MinDensity(v float64) Option { return func(ov *overrides) { ov.minDensity = &v } }

// MaxDensity sets an upper clamp bound for the resolved density.
func MaxDensity(v float64) Option { return func(ov *overrides) { ov.maxDensity = &v } }

// Resolution overrides the maximum spacing; the rebuilt line is
// resolution-driven.
func Resolution(v float64) Option { return func(ov *overrides) { ov.resolution = &v } }

// MinResolution sets a lower clamp bound for the resolved resolution.
func MinResolution(v float64) Option { return func(ov *overrides) { ov.minResolution = &v } }

// MaxResolution sets an upper clamp bound for the resolved resolution.
func MaxResolution(v float64) Option { return func(ov *overrides) { ov.maxResolution = &v } }
