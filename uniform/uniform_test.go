package uniform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/meshline/mesh"
	"github.com/katalvlaran/meshline/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x float64) float64 { return x * x }

// TestDivisionLine_Evaluate checks the grid equals Linspace and the
// values track the function point for point.
func TestDivisionLine_Evaluate(t *testing.T) {
	m, err := uniform.NewDivision(5, 10, 11)
	require.NoError(t, err)

	xs, ys, err := m.Evaluate(square)
	require.NoError(t, err)
	assert.Equal(t, mesh.Linspace(5, 10, 11), xs, "grid is the 11-point linspace")
	require.Len(t, ys, 11)
	for i, x := range xs {
		assert.Equal(t, x*x, ys[i], "ys[%d] matches the function", i)
	}
}

// TestDivisionLine_Views verifies length and the two derived views.
func TestDivisionLine_Views(t *testing.T) {
	m, err := uniform.NewDivision(5, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, 5.0, m.Length(), "length")
	assert.Equal(t, mesh.Linspace(5, 10, 10), m.Points(), "points")
	assert.Equal(t, 10, m.Division(), "owned division")

	density, err := m.Density()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, density, 1e-12, "density = division/length")
	assert.InDelta(t, 0.5, m.Resolution(), 1e-12, "resolution = length/division")
}

// TestDivisionLine_WithStartStop: endpoint withers preserve the family
// and the owned division.
func TestDivisionLine_WithStartStop(t *testing.T) {
	m, err := uniform.NewDivision(5, 10, 10)
	require.NoError(t, err)

	moved, err := m.WithStart(4)
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, moved)
	assert.Equal(t, 4.0, moved.Start())
	assert.Equal(t, 10, moved.Division(), "owned value carries over")

	moved, err = m.WithStop(11)
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, moved)
	assert.Equal(t, 11.0, moved.Stop())
	assert.Equal(t, 5.0, m.Start(), "receiver is never mutated")
}

// TestDivisionLine_WithDivision covers override, idempotent no-op and the
// four clamp cases from the wither contract.
func TestDivisionLine_WithDivision(t *testing.T) {
	m, err := uniform.NewDivision(5, 10, 10)
	require.NoError(t, err)

	set, err := m.WithDivision(uniform.Division(1000))
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, set)
	assert.Equal(t, 1000, set.Division())

	noop, err := m.WithDivision()
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, noop)
	assert.Equal(t, 10, noop.Division(), "no-op override is idempotent")

	for _, tc := range []struct {
		name string
		opt  uniform.Option
		want int
	}{
		{"min below current", uniform.MinDivision(5), 10},
		{"min above current", uniform.MinDivision(100), 100},
		{"max above current", uniform.MaxDivision(100), 10},
		{"max below current", uniform.MaxDivision(5), 5},
	} {
		got, err := m.WithDivision(tc.opt)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got.Division(), tc.name)
	}

	// min > max: the fixed clamp order makes the maximum win.
	got, err := m.WithDivision(uniform.MinDivision(50), uniform.MaxDivision(20))
	require.NoError(t, err)
	assert.Equal(t, 20, got.Division(), "min>max yields max")
}

// TestDivisionLine_FamilySwitch: overriding another family's view
// switches the concrete family and installs the override as owned.
func TestDivisionLine_FamilySwitch(t *testing.T) {
	m, err := uniform.NewDivision(5, 10, 10)
	require.NoError(t, err)

	dens, err := m.WithDensity(uniform.Density(100))
	require.NoError(t, err)
	require.IsType(t, uniform.DensityLine{}, dens)
	got, err := dens.Density()
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	res, err := m.WithResolution(uniform.Resolution(1))
	require.NoError(t, err)
	require.IsType(t, uniform.ResolutionLine{}, res)
	assert.Equal(t, 1.0, res.Resolution())
}

// TestDensityLine_Bounds: the achieved division and spacing always honor
// the owned minimum density.
func TestDensityLine_Bounds(t *testing.T) {
	m, err := uniform.NewDensity(5, 10, 8.0)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, m.Division(), 40, "division = ceil(8*5+1)")
	assert.LessOrEqual(t, m.Resolution(), 0.125, "spacing honors the minimum density")

	achieved := float64(m.Division()) / m.Length()
	assert.GreaterOrEqual(t, achieved, 8.0, "achieved density never under-samples")
}

// TestDensityLine_Evaluate checks the vectorized-shape contract and the
// spacing bound over the evaluated grid.
func TestDensityLine_Evaluate(t *testing.T) {
	m, err := uniform.NewDensity(5, 10, 8.0)
	require.NoError(t, err)

	xs, ys, err := m.Evaluate(square)
	require.NoError(t, err)
	require.Len(t, ys, len(xs))
	for i := 1; i < len(xs); i++ {
		assert.LessOrEqual(t, xs[i]-xs[i-1], 1.0/8.0+1e-12, "spacing stays at or below 1/density")
	}
}

// TestDensityLine_Withers covers endpoint preservation, clamping and
// family switching for the density family.
func TestDensityLine_Withers(t *testing.T) {
	m, err := uniform.NewDensity(5, 10, 8.0)
	require.NoError(t, err)

	moved, err := m.WithStart(4)
	require.NoError(t, err)
	require.IsType(t, uniform.DensityLine{}, moved)
	assert.Equal(t, 4.0, moved.Start())

	set, err := m.WithDensity(uniform.Density(100))
	require.NoError(t, err)
	require.IsType(t, uniform.DensityLine{}, set)
	d, err := set.Density()
	require.NoError(t, err)
	assert.Equal(t, 100.0, d)

	for _, tc := range []struct {
		name string
		opt  uniform.Option
		want float64
	}{
		{"min below current", uniform.MinDensity(5), 8},
		{"min above current", uniform.MinDensity(100), 100},
		{"max above current", uniform.MaxDensity(100), 8},
		{"max below current", uniform.MaxDensity(5), 5},
	} {
		got, err := m.WithDensity(tc.opt)
		require.NoError(t, err, tc.name)
		d, err := got.Density()
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, d, tc.name)
	}

	div, err := m.WithDivision(uniform.Division(1000))
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, div)
	assert.Equal(t, 1000, div.Division())

	res, err := m.WithResolution(uniform.Resolution(1))
	require.NoError(t, err)
	require.IsType(t, uniform.ResolutionLine{}, res)
	assert.Equal(t, 1.0, res.Resolution())
}

// TestResolutionLine_Bounds: the achieved division and density always
// honor the owned maximum spacing.
func TestResolutionLine_Bounds(t *testing.T) {
	m, err := uniform.NewResolution(5, 10, 0.5)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, m.Division(), 10, "division = ceil(5/0.5+1)")
	d, err := m.Density()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 2.0, "achieved density")

	xs := m.Points()
	for i := 1; i < len(xs); i++ {
		assert.LessOrEqual(t, xs[i]-xs[i-1], 0.5+1e-12, "spacing honors the maximum")
	}
}

// TestResolutionLine_Withers covers clamping and family switching for the
// resolution family.
func TestResolutionLine_Withers(t *testing.T) {
	m, err := uniform.NewResolution(5, 10, 0.5)
	require.NoError(t, err)

	set, err := m.WithResolution(uniform.Resolution(0.1))
	require.NoError(t, err)
	require.IsType(t, uniform.ResolutionLine{}, set)
	assert.Equal(t, 0.1, set.Resolution())

	for _, tc := range []struct {
		name string
		opt  uniform.Option
		want float64
	}{
		{"min below current", uniform.MinResolution(0.1), 0.5},
		{"min above current", uniform.MinResolution(2), 2},
		{"max above current", uniform.MaxResolution(2), 0.5},
		{"max below current", uniform.MaxResolution(0.1), 0.1},
	} {
		got, err := m.WithResolution(tc.opt)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got.Resolution(), tc.name)
	}

	div, err := m.WithDivision(uniform.Division(1000))
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, div)
	assert.Equal(t, 1000, div.Division())

	dens, err := m.WithDensity(uniform.Density(12))
	require.NoError(t, err)
	require.IsType(t, uniform.DensityLine{}, dens)
	d, err := dens.Density()
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)
}

// TestWith_GenericDispatch: With follows the division > density >
// resolution precedence and carries endpoints through.
func TestWith_GenericDispatch(t *testing.T) {
	m, err := uniform.NewResolution(5, 10, 0.5)
	require.NoError(t, err)

	next, err := m.With(uniform.Division(7), uniform.Density(3))
	require.NoError(t, err)
	require.IsType(t, uniform.DivisionLine{}, next, "division wins the dispatch")
	assert.Equal(t, 7, next.Division())
	assert.Equal(t, 5.0, next.Start(), "endpoints default to the receiver's")
	assert.Equal(t, 10.0, next.Stop())

	same, err := m.With(uniform.Start(0))
	require.NoError(t, err)
	require.IsType(t, uniform.ResolutionLine{}, same, "no view override keeps the family")
	assert.Equal(t, 0.5, same.Resolution())
	assert.Equal(t, 0.0, same.Start())
}

// TestConstruction_Validation walks the documented precondition order of
// each constructor.
func TestConstruction_Validation(t *testing.T) {
	_, err := uniform.NewDivision(5, 10, 0)
	assert.ErrorIs(t, err, uniform.ErrBadDivision)

	_, err = uniform.NewDivision(math.NaN(), 10, 5)
	assert.ErrorIs(t, err, mesh.ErrNonFinite)

	_, err = uniform.NewDensity(5, 10, 0)
	assert.ErrorIs(t, err, uniform.ErrBadDensity)
	_, err = uniform.NewDensity(5, 10, math.Inf(1))
	assert.ErrorIs(t, err, uniform.ErrBadDensity)
	_, err = uniform.NewDensity(5, 5, 8)
	assert.ErrorIs(t, err, uniform.ErrDegenerateInterval, "degenerate density line")

	_, err = uniform.NewResolution(5, 10, -0.5)
	assert.ErrorIs(t, err, uniform.ErrBadResolution)
	_, err = uniform.NewResolution(5, 5, 0.5)
	assert.ErrorIs(t, err, uniform.ErrDegenerateInterval, "degenerate resolution line")
}

// TestDegenerateDivisionLine: a zero-length division line is legal, but
// its density is undefined and density-routed withers refuse to run.
func TestDegenerateDivisionLine(t *testing.T) {
	m, err := uniform.NewDivision(5, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Length())
	assert.Equal(t, 0.0, m.Resolution(), "zero length, zero spacing")

	_, err = m.Density()
	assert.ErrorIs(t, err, uniform.ErrDegenerateInterval, "density divides by length")

	_, err = m.WithDensity()
	assert.ErrorIs(t, err, uniform.ErrDegenerateInterval, "resolving the current density fails")

	// Shrinking a healthy density line onto a point must fail loudly, not
	// produce an infinite point count.
	d, err := uniform.NewDensity(5, 10, 8)
	require.NoError(t, err)
	_, err = d.WithStop(5)
	assert.ErrorIs(t, err, uniform.ErrDegenerateInterval)
}

// TestEvaluate_NilAndBatch covers the function-shape errors and the
// single-call batch contract.
func TestEvaluate_NilAndBatch(t *testing.T) {
	m, err := uniform.NewDivision(0, 1, 5)
	require.NoError(t, err)

	_, _, err = m.Evaluate(nil)
	assert.ErrorIs(t, err, mesh.ErrNilFunction)
	_, _, err = m.EvaluateBatch(nil)
	assert.ErrorIs(t, err, mesh.ErrNilFunction)

	calls := 0
	xs, ys, err := m.EvaluateBatch(func(xs []float64) []float64 {
		calls++
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x * x
		}

		return out
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "batch function runs exactly once")
	require.Len(t, ys, len(xs))

	_, _, err = m.EvaluateBatch(func([]float64) []float64 { return []float64{1} })
	assert.ErrorIs(t, err, mesh.ErrBatchLength, "shape mismatch fails loudly")
}

// TestEvaluate_Deterministic: constant meshes are pure — two evaluations
// of the same function agree exactly.
func TestEvaluate_Deterministic(t *testing.T) {
	m, err := uniform.NewDensity(0, 1, 50)
	require.NoError(t, err)

	x1, y1, err := m.Evaluate(square)
	require.NoError(t, err)
	x2, y2, err := m.Evaluate(square)
	require.NoError(t, err)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

// TestNew_Default wires the documented default division.
func TestNew_Default(t *testing.T) {
	m, err := uniform.New(0, 1)
	require.NoError(t, err)
	assert.Equal(t, uniform.DefaultDivision, m.Division())
}
