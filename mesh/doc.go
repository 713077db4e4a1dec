// Package mesh defines the shared abstractions every mesh-line family is
// built on: the Line and Constant contracts, the immutable Interval value
// type, and the small numeric helpers (Linspace, clip) the concrete
// families share.
//
// 🚀 What is a Line?
//
//	A Line is an immutable description of a 1-D sampling grid over the
//	closed interval between Start and Stop. Its single operation,
//	Evaluate, samples a function over that grid and returns the abscissas
//	together with the corresponding function values.
//
// Two evaluation contracts exist:
//
//   - Constant lines (see Constant) know their points before the function
//     is ever called; EvaluateBatch hands the whole point set to the
//     function in a single call.
//   - Adaptive lines call the function one abscissa at a time, interleaved
//     with refinement decisions (see the adaptive and learner packages).
//
// Immutability:
//
//	Mesh lines are value objects. Nothing is mutated after construction;
//	every WithX update on a concrete family returns a fresh, validated
//	instance. Lines are therefore freely shareable across goroutines
//	without synchronization.
//
// Embedding:
//
//	When a line is stored as a field of a containing object, a functional
//	update must produce a new container, not a detached line. Bound makes
//	that two-level update explicit: it couples the embedded line with a
//	rebuild function and routes the replacement through it.
//
// See the uniform and adaptive packages for the concrete families.
package mesh
