package adaptive

import (
	"math"

	"github.com/katalvlaran/meshline/learner"
	"github.com/katalvlaran/meshline/mesh"
)

// DivisionLine is an adaptive line governed by a point budget: Evaluate
// refines until the engine has sampled Division points, never more.
type DivisionLine struct {
	mesh.Interval
	division int
}

// NewDivision builds a budget-driven adaptive line over [start, stop].
//
// Preconditions and validation (in order):
//  1. division must be at least 2 (ErrBadDivision).
//  2. start and stop must be finite (mesh.ErrNonFinite).
//  3. start and stop must differ (ErrDegenerateInterval).
func NewDivision(start, stop float64, division int) (DivisionLine, error) {
	if division < 2 {
		return DivisionLine{}, ErrBadDivision
	}
	iv, err := mesh.NewInterval(start, stop)
	if err != nil {
		return DivisionLine{}, err
	}
	if iv.Degenerate() {
		return DivisionLine{}, ErrDegenerateInterval
	}

	return DivisionLine{Interval: iv, division: division}, nil
}

// New builds the default adaptive line over [start, stop]: budget-driven
// with DefaultDivision points.
func New(start, stop float64) (DivisionLine, error) {
	return NewDivision(start, stop, DefaultDivision)
}

// Division returns the owned point budget.
func (m DivisionLine) Division() int { return m.division }

// Loss returns DefaultLoss: a budget-driven run never learns what loss it
// would have reached, so the non-governing view stays at its default.
func (m DivisionLine) Loss() float64 { return DefaultLoss }

// Evaluate refines until the point budget is spent and returns the
// sampled abscissas (ascending) with their function values.
func (m DivisionLine) Evaluate(fn mesh.Func) ([]float64, []float64, error) {
	return evaluate(m, fn, learner.NPointsGoal(m.division))
}

// LossLine is an adaptive line governed by an error goal: Evaluate
// refines until every pending interval's estimated loss is at or below
// Loss.
type LossLine struct {
	mesh.Interval
	loss float64
}

// NewLoss builds a loss-driven adaptive line over [start, stop].
//
// Preconditions and validation (in order):
//  1. loss must be positive and finite (ErrBadLoss).
//  2. start and stop must be finite (mesh.ErrNonFinite).
//  3. start and stop must differ (ErrDegenerateInterval).
func NewLoss(start, stop, loss float64) (LossLine, error) {
	if !(loss > 0) || math.IsInf(loss, 0) {
		return LossLine{}, ErrBadLoss
	}
	iv, err := mesh.NewInterval(start, stop)
	if err != nil {
		return LossLine{}, err
	}
	if iv.Degenerate() {
		return LossLine{}, ErrDegenerateInterval
	}

	return LossLine{Interval: iv, loss: loss}, nil
}

// Division returns DefaultDivision: a loss-driven run is not bounded by a
// budget, so the non-governing view stays at its default.
func (m LossLine) Division() int { return DefaultDivision }

// Loss returns the owned error goal.
func (m LossLine) Loss() float64 { return m.loss }

// Evaluate refines until the loss goal is met and returns the sampled
// abscissas (ascending) with their function values.
func (m LossLine) Evaluate(fn mesh.Func) ([]float64, []float64, error) {
	return evaluate(m, fn, learner.LossGoal(m.loss))
}

// evaluate is the shared adaptive evaluation: build a fresh engine bound
// to fn and the line's interval, drive it to the family's goal, extract
// the samples. The engine is local to this call and never reused.
func evaluate(m Line, fn mesh.Func, done learner.Goal) ([]float64, []float64, error) {
	if fn == nil {
		return nil, nil, mesh.ErrNilFunction
	}

	eng, err := learner.New(fn, m.Start(), m.Stop())
	if err != nil {
		return nil, nil, err
	}
	learner.Run(eng, done)

	xs, ys := eng.Samples()

	return xs, ys, nil
}
