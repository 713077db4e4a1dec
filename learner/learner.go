package learner

import (
	"container/heap"
	"errors"
	"math"
	"sort"
)

// Sentinel errors for engine construction.
var (
	// ErrNilFunction indicates New was given a nil function.
	ErrNilFunction = errors.New("learner: function must be non-nil")

	// ErrBadBounds indicates the bounds are NaN, infinite, or span an
	// empty interval.
	ErrBadBounds = errors.New("learner: bounds must be finite and span a non-empty interval")
)

// segment is one pending, un-subdivided interval between two samples.
// loss caches the priority the segment was (re-)scored with; because the
// observed value range only grows, the cache is always an upper bound on
// the segment's current loss.
type segment struct {
	x1, y1 float64
	x2, y2 float64
	loss   float64
}

// segQueue is a max-heap of pending segments ordered by cached loss,
// ties broken by the leftmost segment for determinism.
type segQueue []*segment

func (q segQueue) Len() int { return len(q) }

func (q segQueue) Less(i, j int) bool {
	if q[i].loss != q[j].loss {
		return q[i].loss > q[j].loss
	}

	return q[i].x1 < q[j].x1
}

func (q segQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *segQueue) Push(x any) { *q = append(*q, x.(*segment)) }

func (q *segQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return s
}

// Learner is the 1-D interval-refinement engine. Build one per evaluation
// with New, drive it with Step or Run, extract the result with Samples.
// It is not safe for concurrent use and is meant to be discarded after a
// single run.
type Learner struct {
	fn         func(float64) float64
	lo, hi     float64 // ascending bounds
	width      float64 // hi - lo, fixed at construction
	xs, ys     []float64
	ymin, ymax float64
	pending    segQueue
}

// New builds a Learner for fn over the closed interval spanned by a and b
// (order irrelevant) and seeds it with both endpoints, so NPoints starts
// at 2.
//
// Preconditions and validation (in order):
//  1. fn must be non-nil (ErrNilFunction).
//  2. a and b must be finite and distinct (ErrBadBounds).
func New(fn func(float64) float64, a, b float64) (*Learner, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a == b {
		return nil, ErrBadBounds
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	l := &Learner{
		fn:    fn,
		lo:    lo,
		hi:    hi,
		width: hi - lo,
		ymin:  math.Inf(1),
		ymax:  math.Inf(-1),
	}

	ylo := l.record(lo)
	yhi := l.record(hi)
	l.push(lo, ylo, hi, yhi)

	return l, nil
}

// NPoints returns the number of abscissas sampled so far.
func (l *Learner) NPoints() int { return len(l.xs) }

// MaxLoss returns the largest current loss among pending intervals, or 0
// when nothing remains subdividable.
func (l *Learner) MaxLoss() float64 {
	if !l.settleTop() {
		return 0
	}

	return l.pending[0].loss
}

// Step samples the midpoint of the worst pending interval, splits it, and
// re-inserts both halves. It reports false when no pending interval can
// be subdivided further (midpoints exhausted at float64 precision), true
// after placing exactly one new sample.
func (l *Learner) Step() bool {
	for l.settleTop() {
		s := heap.Pop(&l.pending).(*segment)

		mid := s.x1 + (s.x2-s.x1)/2
		if mid <= s.x1 || mid >= s.x2 {
			// Interval exhausted at float64 resolution; nothing between
			// its endpoints can be represented, so it is dropped for good.
			continue
		}

		y := l.record(mid)
		l.push(s.x1, s.y1, mid, y)
		l.push(mid, y, s.x2, s.y2)

		return true
	}

	return false
}

// Samples returns all sampled (x, y) pairs, sorted ascending by abscissa.
// The returned slices are fresh copies; mutating them does not disturb
// the engine.
func (l *Learner) Samples() (xs, ys []float64) {
	xs = append([]float64(nil), l.xs...)
	ys = append([]float64(nil), l.ys...)
	sort.Sort(&byAbscissa{xs: xs, ys: ys})

	return xs, ys
}

// record evaluates fn at x, stores the sample and widens the observed
// value range.
func (l *Learner) record(x float64) float64 {
	y := l.fn(x)
	l.xs = append(l.xs, x)
	l.ys = append(l.ys, y)
	if y < l.ymin {
		l.ymin = y
	}
	if y > l.ymax {
		l.ymax = y
	}

	return y
}

// push scores a new segment at the current scale and inserts it.
func (l *Learner) push(x1, y1, x2, y2 float64) {
	s := &segment{x1: x1, y1: y1, x2: x2, y2: y2}
	s.loss = l.lossOf(s)
	heap.Push(&l.pending, s)
}

// lossOf estimates the local approximation error of a segment: its
// Euclidean length in scaled coordinates. NaN values poison the y term
// and are treated as zero variation rather than propagated.
func (l *Learner) lossOf(s *segment) float64 {
	dx := (s.x2 - s.x1) / l.width

	yrange := l.ymax - l.ymin
	if yrange <= 0 || math.IsNaN(yrange) {
		return dx
	}
	dy := math.Abs(s.y2-s.y1) / yrange
	if math.IsNaN(dy) {
		return dx
	}

	return math.Hypot(dx, dy)
}

// settleTop lazily re-scores stale heap tops until the entry at the top
// carries its current-scale loss, mirroring the lazy strategy of a
// decrease-key-free priority queue. Reports false when the heap is empty.
func (l *Learner) settleTop() bool {
	for len(l.pending) > 0 {
		cur := l.lossOf(l.pending[0])
		if cur == l.pending[0].loss {
			return true
		}
		l.pending[0].loss = cur
		heap.Fix(&l.pending, 0)
	}

	return false
}

// byAbscissa sorts paired sample slices by x.
type byAbscissa struct {
	xs, ys []float64
}

func (b *byAbscissa) Len() int           { return len(b.xs) }
func (b *byAbscissa) Less(i, j int) bool { return b.xs[i] < b.xs[j] }

func (b *byAbscissa) Swap(i, j int) {
	b.xs[i], b.xs[j] = b.xs[j], b.xs[i]
	b.ys[i], b.ys[j] = b.ys[j], b.ys[i]
}
