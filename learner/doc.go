// Package learner implements the 1-D interval-refinement engine that
// drives adaptive mesh lines.
//
// 🚀 What does it do?
//
//	Given a scalar function and a closed interval, the engine samples both
//	endpoints and then repeatedly subdivides whichever pending interval
//	carries the largest estimated local approximation error ("loss"),
//	sampling its midpoint and re-inserting the two halves. Samples pile up
//	near sharp features — peaks, steps, discontinuities — while smooth
//	stretches stay sparse.
//
// Loss model:
//
//	The loss of an interval is the Euclidean length of its segment in
//	scaled coordinates: dx is normalized by the domain width, dy by the
//	value range observed so far. When no value variation has been seen
//	yet, the x term alone orders the intervals, which degrades gracefully
//	into bisection.
//
// Priority maintenance:
//
//	Pending intervals live in a max-heap keyed by a cached loss. The
//	observed value range only grows, so a cached loss is always an upper
//	bound on the current one — stale entries are re-scored lazily when
//	they surface at the top of the heap, the same lazy strategy a
//	decrease-key-free Dijkstra uses. Ties break on the leftmost interval,
//	keeping refinement deterministic for fixed inputs.
//
// Stopping policies:
//
//	Run drives the engine until a Goal reports completion. Two goals are
//	provided: NPointsGoal (stop at a point budget) and LossGoal (stop once
//	every pending interval's loss is at or below a target). The Goal
//	surface is deliberately minimal — NPoints, MaxLoss, Step — so further
//	policies (wall-clock caps, iteration caps) can be layered on top
//	without touching the engine.
//
// Complexity:
//
//   - Time:  O(n log n) for n sampled points (amortized; lazy re-scoring
//     can momentarily touch every pending entry after a range jump).
//   - Space: O(n).
//
// A Learner is single-use and confined to one goroutine: build one per
// evaluation, drive it, extract Samples, discard it.
package learner
