// Package meshline describes 1-D sampling grids ("mesh lines") used to
// evaluate a scalar function over an interval and return the sampled
// abscissas together with the function values at them.
//
// 🚀 What is a mesh line?
//
//	A mesh line is a reusable, immutable description of where a function
//	should be sampled between two endpoints. Two families exist:
//	  • Constant meshes — sample points fixed before the function is called
//	    (uniform grids driven by point count, density, or spacing)
//	  • Adaptive meshes — sample points chosen progressively from observed
//	    function values, concentrating samples where the function varies fast
//
// ✨ Why choose meshline?
//
//   - Interchangeable views – a uniform grid is equivalently described by
//     division (point count), density (points per unit length), or
//     resolution (spacing); all three stay numerically consistent
//   - Functional updates – every WithX call returns a new, validated mesh,
//     switching concrete family automatically when the overridden view
//     belongs to another family
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	mesh/     — shared abstractions: Line, Constant, Interval, Linspace, clip
//	uniform/  — evenly spaced constant meshes (division/density/resolution)
//	adaptive/ — progressively refined meshes (point-budget or loss-goal)
//	learner/  — the 1-D interval-refinement engine driving adaptive meshes
//
// Quick ASCII example:
//
//	uniform:   |····|····|····|····|····|····|      (equal spacing)
//	adaptive:  |······|···|·|·||·|·|···|······|     (dense near the peak)
//
// Dive into each subpackage's doc.go for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/meshline
package meshline
