// Package uniform: the wither operations — functional updates that
// return a new, validated line with selected views overridden.
//
// Shape of every wither (shared by the three families):
//  1. Resolve the named view: the override when given, otherwise the
//     receiver's current value of that view, even when derived.
//  2. Clamp it by any Min/Max bounds, minimum first, then maximum.
//  3. Rebuild a fresh line of the family owning that view, carrying the
//     receiver's endpoints unless Start/Stop overrides say otherwise.
//
// Family switching in With: an overridden division wins, then density,
// then resolution; with none of the three present the receiver's family
// and owned value are preserved (so WithStart/WithStop never change the
// family). Construction validation applies to every rebuild.
package uniform

import "github.com/katalvlaran/meshline/mesh"

// rebuildFunc recreates the receiver's family over new endpoints,
// carrying the owned value. Used by the no-view-override branch.
type rebuildFunc func(start, stop float64) (Line, error)

// withParams applies one resolved override set. The precedence order of
// the dispatch (division, density, resolution, same family) is part of
// the contract.
func withParams(m Line, ov overrides, same rebuildFunc) (Line, error) {
	start, stop := m.Start(), m.Stop()
	if ov.start != nil {
		start = *ov.start
	}
	if ov.stop != nil {
		stop = *ov.stop
	}

	switch {
	case ov.division != nil:
		next, err := NewDivision(start, stop, mesh.ClipInt(*ov.division, ov.minDivision, ov.maxDivision))
		if err != nil {
			return nil, err
		}

		return next, nil

	case ov.density != nil:
		next, err := NewDensity(start, stop, mesh.ClipFloat(*ov.density, ov.minDensity, ov.maxDensity))
		if err != nil {
			return nil, err
		}

		return next, nil

	case ov.resolution != nil:
		next, err := NewResolution(start, stop, mesh.ClipFloat(*ov.resolution, ov.minResolution, ov.maxResolution))
		if err != nil {
			return nil, err
		}

		return next, nil

	default:
		return same(start, stop)
	}
}

// withDivision resolves the division view from the receiver when no
// override names it, so a bare WithDivision() is an idempotent rebuild
// and WithDivision(MaxDivision(n)) clamps the current value.
func withDivision(m Line, opts []Option, same rebuildFunc) (Line, error) {
	ov := gatherOptions(opts)
	if ov.division == nil {
		cur := m.Division()
		ov.division = &cur
	}

	return withParams(m, ov, same)
}

// withDensity resolves the density view from the receiver when no
// override names it. A degenerate division-driven receiver has no density
// to resolve; the error propagates.
func withDensity(m Line, opts []Option, same rebuildFunc) (Line, error) {
	ov := gatherOptions(opts)
	if ov.density == nil {
		cur, err := m.Density()
		if err != nil {
			return nil, err
		}
		ov.density = &cur
	}

	return withParams(m, ov, same)
}

// withResolution resolves the resolution view from the receiver when no
// override names it.
func withResolution(m Line, opts []Option, same rebuildFunc) (Line, error) {
	ov := gatherOptions(opts)
	if ov.resolution == nil {
		cur := m.Resolution()
		ov.resolution = &cur
	}

	return withParams(m, ov, same)
}

// ---------- DivisionLine ----------

// rebuild recreates the family over new endpoints, owned value intact.
func (m DivisionLine) rebuild(start, stop float64) (Line, error) {
	next, err := NewDivision(start, stop, m.division)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// With applies the given overrides; see Line.With.
func (m DivisionLine) With(opts ...Option) (Line, error) {
	return withParams(m, gatherOptions(opts), m.rebuild)
}

// WithDivision rebuilds as a DivisionLine with the resolved, clamped division.
func (m DivisionLine) WithDivision(opts ...Option) (Line, error) {
	return withDivision(m, opts, m.rebuild)
}

// WithDensity rebuilds as a DensityLine with the resolved, clamped density.
func (m DivisionLine) WithDensity(opts ...Option) (Line, error) {
	return withDensity(m, opts, m.rebuild)
}

// WithResolution rebuilds as a ResolutionLine with the resolved, clamped resolution.
func (m DivisionLine) WithResolution(opts ...Option) (Line, error) {
	return withResolution(m, opts, m.rebuild)
}

// WithStart replaces the start endpoint, preserving family and division.
func (m DivisionLine) WithStart(start float64) (Line, error) {
	return m.With(Start(start))
}

// WithStop replaces the stop endpoint, preserving family and division.
func (m DivisionLine) WithStop(stop float64) (Line, error) {
	return m.With(Stop(stop))
}

// ---------- DensityLine ----------

// rebuild recreates the family over new endpoints, owned value intact.
func (m DensityLine) rebuild(start, stop float64) (Line, error) {
	next, err := NewDensity(start, stop, m.density)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// With applies the given overrides; see Line.With.
func (m DensityLine) With(opts ...Option) (Line, error) {
	return withParams(m, gatherOptions(opts), m.rebuild)
}

// WithDivision rebuilds as a DivisionLine with the resolved, clamped division.
func (m DensityLine) WithDivision(opts ...Option) (Line, error) {
	return withDivision(m, opts, m.rebuild)
}

// WithDensity rebuilds as a DensityLine with the resolved, clamped density.
func (m DensityLine) WithDensity(opts ...Option) (Line, error) {
	return withDensity(m, opts, m.rebuild)
}

// WithResolution rebuilds as a ResolutionLine with the resolved, clamped resolution.
func (m DensityLine) WithResolution(opts ...Option) (Line, error) {
	return withResolution(m, opts, m.rebuild)
}

// WithStart replaces the start endpoint, preserving family and density.
func (m DensityLine) WithStart(start float64) (Line, error) {
	return m.With(Start(start))
}

// WithStop replaces the stop endpoint, preserving family and density.
func (m DensityLine) WithStop(stop float64) (Line, error) {
	return m.With(Stop(stop))
}

// ---------- ResolutionLine ----------

// rebuild recreates the family over new endpoints, owned value intact.
func (m ResolutionLine) rebuild(start, stop float64) (Line, error) {
	next, err := NewResolution(start, stop, m.resolution)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// With applies the given overrides; see Line.With.
func (m ResolutionLine) With(opts ...Option) (Line, error) {
	return withParams(m, gatherOptions(opts), m.rebuild)
}

// WithDivision rebuilds as a DivisionLine with the resolved, clamped division.
func (m ResolutionLine) WithDivision(opts ...Option) (Line, error) {
	return withDivision(m, opts, m.rebuild)
}

// WithDensity rebuilds as a DensityLine with the resolved, clamped density.
func (m ResolutionLine) WithDensity(opts ...Option) (Line, error) {
	return withDensity(m, opts, m.rebuild)
}

// WithResolution rebuilds as a ResolutionLine with the resolved, clamped resolution.
func (m ResolutionLine) WithResolution(opts ...Option) (Line, error) {
	return withResolution(m, opts, m.rebuild)
}

// WithStart replaces the start endpoint, preserving family and resolution.
func (m ResolutionLine) WithStart(start float64) (Line, error) {
	return m.With(Start(start))
}

// WithStop replaces the stop endpoint, preserving family and resolution.
func (m ResolutionLine) WithStop(stop float64) (Line, error) {
	return m.With(Stop(stop))
}
