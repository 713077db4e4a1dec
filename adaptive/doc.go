// Package adaptive implements mesh lines whose sample points are chosen
// progressively from observed function values.
//
// 🚀 How it samples
//
//	Evaluate builds a fresh refinement engine (see the learner package)
//	bound to the function and the line's interval, then drives it until
//	the family's stopping policy is met:
//
//	  DivisionLine — stop once the point budget is reached
//	  LossLine     — stop once every pending interval's estimated loss
//	                 is at or below the target
//
//	The engine repeatedly bisects whichever interval carries the largest
//	estimated local error, so the returned abscissas are NOT evenly
//	spaced: density is observably higher near peaks, steps and other
//	rapid variation. The function is called one abscissa at a time and
//	should be cheap enough to call on the order of the point budget.
//
// Two stopping views:
//
//	division (point budget, default 1000) and loss (error goal, default
//	0.01) are NOT interchangeable the way the uniform views are: a loss
//	is not recoverable from a budget-bounded run and vice versa. Each
//	family stores only its own governing parameter and exposes the other
//	at its declared default.
//
// Functional updates:
//
//	WithDivision and WithLoss follow the same resolve-clamp-rebuild shape
//	as the uniform package, with binary family switching: overriding
//	division yields a DivisionLine, overriding loss yields a LossLine,
//	and overriding neither (WithStart/WithStop) preserves the family and
//	its governing value.
//
// Determinism:
//
//	For a fixed (function, start, stop, governing parameter) the engine
//	refines deterministically, so repeated evaluations return identical
//	samples. The engine instance is local to each Evaluate call and is
//	discarded on return.
package adaptive
