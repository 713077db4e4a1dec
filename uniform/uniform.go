package uniform

import (
	"math"

	"github.com/katalvlaran/meshline/mesh"
)

// DivisionLine is an evenly spaced line owning its point count. The grid
// has exactly Division points inclusive of both endpoints, hence
// Division-1 equal intervals of size Resolution.
type DivisionLine struct {
	mesh.Interval
	division int
}

// NewDivision builds a division-driven line over [start, stop] with the
// given number of points.
//
// Preconditions and validation (in order):
//  1. division must be at least 1 (ErrBadDivision).
//  2. start and stop must be finite (mesh.ErrNonFinite).
//
// A degenerate interval (start == stop) is legal here: every point
// collapses onto start.
func NewDivision(start, stop float64, division int) (DivisionLine, error) {
	if division < 1 {
		return DivisionLine{}, ErrBadDivision
	}
	iv, err := mesh.NewInterval(start, stop)
	if err != nil {
		return DivisionLine{}, err
	}

	return DivisionLine{Interval: iv, division: division}, nil
}

// New builds the default uniform line over [start, stop]: division-driven
// with DefaultDivision points.
func New(start, stop float64) (DivisionLine, error) {
	return NewDivision(start, stop, DefaultDivision)
}

// Division returns the owned point count.
func (m DivisionLine) Division() int { return m.division }

// Density returns Division/Length, or ErrDegenerateInterval when the
// interval has zero length.
func (m DivisionLine) Density() (float64, error) {
	if m.Degenerate() {
		return 0, ErrDegenerateInterval
	}

	return float64(m.division) / m.Length(), nil
}

// Resolution returns Length/Division.
func (m DivisionLine) Resolution() float64 { return m.Length() / float64(m.division) }

// Points returns the Division evenly spaced abscissas covering the interval.
func (m DivisionLine) Points() []float64 {
	return mesh.Linspace(m.Start(), m.Stop(), m.division)
}

// Evaluate maps fn across the precomputed grid.
func (m DivisionLine) Evaluate(fn mesh.Func) ([]float64, []float64, error) {
	return evaluate(m, fn)
}

// EvaluateBatch hands the whole grid to fn in a single call.
func (m DivisionLine) EvaluateBatch(fn mesh.BatchFunc) ([]float64, []float64, error) {
	return evaluateBatch(m, fn)
}

// DensityLine is an evenly spaced line owning a minimum density: enough
// points are generated for points-per-unit-length to never fall below it.
type DensityLine struct {
	mesh.Interval
	density float64
}

// NewDensity builds a density-driven line over [start, stop].
//
// Preconditions and validation (in order):
//  1. density must be positive and finite (ErrBadDensity).
//  2. start and stop must be finite (mesh.ErrNonFinite).
//  3. start and stop must differ (ErrDegenerateInterval).
func NewDensity(start, stop, density float64) (DensityLine, error) {
	if !(density > 0) || math.IsInf(density, 0) {
		return DensityLine{}, ErrBadDensity
	}
	iv, err := mesh.NewInterval(start, stop)
	if err != nil {
		return DensityLine{}, err
	}
	if iv.Degenerate() {
		return DensityLine{}, ErrDegenerateInterval
	}

	return DensityLine{Interval: iv, density: density}, nil
}

// Division derives the point count as ⌈density·length + 1⌉. Rounding up
// guarantees the achieved density never falls below the owned minimum;
// the +1 accounts for the extra endpoint and is contractual.
func (m DensityLine) Division() int {
	return int(math.Ceil(m.density*m.Length() + 1))
}

// Density returns the owned minimum density.
func (m DensityLine) Density() (float64, error) { return m.density, nil }

// Resolution returns Length/Division.
func (m DensityLine) Resolution() float64 { return m.Length() / float64(m.Division()) }

// Points returns the Division evenly spaced abscissas covering the interval.
func (m DensityLine) Points() []float64 {
	return mesh.Linspace(m.Start(), m.Stop(), m.Division())
}

// Evaluate maps fn across the precomputed grid.
func (m DensityLine) Evaluate(fn mesh.Func) ([]float64, []float64, error) {
	return evaluate(m, fn)
}

// EvaluateBatch hands the whole grid to fn in a single call.
func (m DensityLine) EvaluateBatch(fn mesh.BatchFunc) ([]float64, []float64, error) {
	return evaluateBatch(m, fn)
}

// ResolutionLine is an evenly spaced line owning a maximum spacing:
// enough points are generated for adjacent points to never sit further
// apart than it.
type ResolutionLine struct {
	mesh.Interval
	resolution float64
}

// NewResolution builds a resolution-driven line over [start, stop].
//
// Preconditions and validation (in order):
//  1. resolution must be positive and finite (ErrBadResolution).
//  2. start and stop must be finite (mesh.ErrNonFinite).
//  3. start and stop must differ (ErrDegenerateInterval).
func NewResolution(start, stop, resolution float64) (ResolutionLine, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return ResolutionLine{}, ErrBadResolution
	}
	iv, err := mesh.NewInterval(start, stop)
	if err != nil {
		return ResolutionLine{}, err
	}
	if iv.Degenerate() {
		return ResolutionLine{}, ErrDegenerateInterval
	}

	return ResolutionLine{Interval: iv, resolution: resolution}, nil
}

// Division derives the point count as ⌈length/resolution + 1⌉. Rounding
// up keeps the achieved spacing at or below the owned maximum; the +1 is
// contractual, exactly as in DensityLine.
func (m ResolutionLine) Division() int {
	return int(math.Ceil(m.Length()/m.resolution + 1))
}

// Density returns Division/Length.
func (m ResolutionLine) Density() (float64, error) {
	return float64(m.Division()) / m.Length(), nil
}

// Resolution returns the owned maximum spacing.
func (m ResolutionLine) Resolution() float64 { return m.resolution }

// Points returns the Division evenly spaced abscissas covering the interval.
func (m ResolutionLine) Points() []float64 {
	return mesh.Linspace(m.Start(), m.Stop(), m.Division())
}

// Evaluate maps fn across the precomputed grid.
func (m ResolutionLine) Evaluate(fn mesh.Func) ([]float64, []float64, error) {
	return evaluate(m, fn)
}

// EvaluateBatch hands the whole grid to fn in a single call.
func (m ResolutionLine) EvaluateBatch(fn mesh.BatchFunc) ([]float64, []float64, error) {
	return evaluateBatch(m, fn)
}

// evaluate is the shared constant-mesh evaluation: compute the points,
// then map fn across them in one pass. The points never depend on fn.
func evaluate(m Line, fn mesh.Func) ([]float64, []float64, error) {
	if fn == nil {
		return nil, nil, mesh.ErrNilFunction
	}

	xs := m.Points()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}

	return xs, ys, nil
}

// evaluateBatch is the vectorized counterpart: fn is called exactly once
// over the whole point set and must answer with one value per abscissa.
func evaluateBatch(m Line, fn mesh.BatchFunc) ([]float64, []float64, error) {
	if fn == nil {
		return nil, nil, mesh.ErrNilFunction
	}

	xs := m.Points()
	ys := fn(xs)
	if len(ys) != len(xs) {
		return nil, nil, mesh.ErrBatchLength
	}

	return xs, ys, nil
}
