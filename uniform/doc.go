// Package uniform implements evenly spaced constant mesh lines.
//
// 🚀 Three views, one grid
//
//	An evenly spaced grid over [start, stop] is equivalently described by
//	any one of three views:
//	  • division   — the number of sample points
//	  • density    — sample points per unit length (division / length)
//	  • resolution — spacing between adjacent points (length / division)
//
//	Exactly one view is owned by each concrete family; the other two are
//	derived on demand and always stay numerically consistent:
//
//	  DivisionLine   owns division;   density = division / length
//	                                  resolution = length / division
//	  DensityLine    owns density     (a minimum): division = ⌈density·length + 1⌉
//	  ResolutionLine owns resolution  (a maximum): division = ⌈length/resolution + 1⌉
//
//	The ceilings round the derived division UP, so a density-driven line
//	never under-samples its requested minimum density and a resolution-
//	driven line never exceeds its requested maximum spacing. The +1 inside
//	the ceiling is part of the wire-in contract: it accounts for the extra
//	endpoint and slightly over-satisfies the bound. Do not "simplify" it.
//
// ✨ Functional updates
//
//	Every WithX call returns a new, validated line; the receiver is never
//	touched. Overriding a view that belongs to another family switches the
//	concrete family automatically:
//
//	  d, _ := uniform.NewDivision(5, 10, 10)
//	  r, _ := d.WithResolution(uniform.Resolution(0.25)) // ResolutionLine
//
//	Optional Min/Max bounds clamp the resolved value before the rebuild,
//	minimum first, then maximum. WithStart and WithStop preserve both the
//	concrete family and the owned value; the derived views recompute
//	against the new length.
//
// Evaluation:
//
//	Points are fixed before the function is ever called. Evaluate maps a
//	scalar function across the precomputed grid; EvaluateBatch hands the
//	whole grid to a vectorized function in a single call.
//
// Degenerate intervals:
//
//	start == stop is legal for a DivisionLine (every point collapses onto
//	start) but its density is undefined there, and density- or
//	resolution-driven lines cannot be built over a zero-length interval at
//	all — constructors fail loudly with ErrDegenerateInterval instead of
//	producing an infinite point count.
package uniform
