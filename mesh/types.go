// Package mesh: shared contracts for all mesh-line families. This file
// defines:
//   - Func / BatchFunc (the two function-under-evaluation shapes),
//   - Line (the universal mesh-line contract),
//   - Constant (the pre-determined-points refinement of Line).
package mesh

// Func is a scalar function under evaluation: one abscissa in, one value
// out. Adaptive meshes call a Func once per sampled point, interleaved
// with refinement decisions; constant meshes map it across their
// precomputed point set in a single pass.
//
// A Func must be pure: same x, same result, no side effects.
type Func func(x float64) float64

// BatchFunc is the vectorized function contract used by constant meshes:
// it receives the whole ordered point set in one call and must return a
// slice of exactly the same length, with out[i] being the value at xs[i].
type BatchFunc func(xs []float64) []float64

// Line is the universal mesh-line contract.
//
// A Line covers the closed interval between Start and Stop; the order of
// the two endpoints is not constrained, and Length is always the
// non-negative |Stop-Start|, derived on demand and never stored.
//
// Evaluate samples fn over the line's grid and returns the sampled
// abscissas xs (ascending for adaptive lines, in grid order for constant
// ones) together with ys, where ys[i] is fn at xs[i]. Evaluate has no
// side effects beyond invoking fn.
type Line interface {
	// Start returns the first endpoint of the line.
	Start() float64
	// Stop returns the second endpoint of the line.
	Stop() float64
	// Length returns |Stop-Start|; it is never negative.
	Length() float64
	// Evaluate samples fn over the line's grid.
	// Returns ErrNilFunction when fn is nil.
	Evaluate(fn Func) (xs, ys []float64, err error)
}

// Constant is a Line whose points are fully determined by the line's
// parameters alone, before the function is ever called.
//
// Points is deterministic and pure given the line's parameter state:
// evaluating twice with the same function yields identical results.
type Constant interface {
	Line

	// Points returns the ordered sample abscissas of the line.
	Points() []float64

	// EvaluateBatch samples fn in a single vectorized call over the whole
	// point set. Returns ErrNilFunction when fn is nil, ErrBatchLength
	// when fn returns a slice of mismatched length.
	EvaluateBatch(fn BatchFunc) (xs, ys []float64, err error)
}
