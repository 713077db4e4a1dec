// Package adaptive: wither operations for the two stopping views. Same
// resolve-clamp-rebuild shape as the uniform package, binary family
// dispatch: division → DivisionLine, loss → LossLine, neither → the
// receiver's family with its governing value intact.
package adaptive

import "github.com/katalvlaran/meshline/mesh"

// rebuildFunc recreates the receiver's family over new endpoints,
// carrying the governing value.
type rebuildFunc func(start, stop float64) (Line, error)

// withParams applies one resolved override set; division wins over loss.
func withParams(m Line, ov overrides, same rebuildFunc) (Line, error) {
	start, stop := m.Start(), m.Stop()
	if ov.start != nil {
		start = *ov.start
	}
	if ov.stop != nil {
		stop = *ov.stop
	}

	switch {
	case ov.division != nil:
		next, err := NewDivision(start, stop, mesh.ClipInt(*ov.division, ov.minDivision, ov.maxDivision))
		if err != nil {
			return nil, err
		}

		return next, nil

	case ov.loss != nil:
		next, err := NewLoss(start, stop, mesh.ClipFloat(*ov.loss, ov.minLoss, ov.maxLoss))
		if err != nil {
			return nil, err
		}

		return next, nil

	default:
		return same(start, stop)
	}
}

// withDivision resolves the budget from the receiver when no override
// names it, so a bare WithDivision() is an idempotent rebuild and
// WithDivision(MaxDivision(n)) clamps the current value.
func withDivision(m Line, opts []Option, same rebuildFunc) (Line, error) {
	ov := gatherOptions(opts)
	if ov.division == nil {
		cur := m.Division()
		ov.division = &cur
	}

	return withParams(m, ov, same)
}

// withLoss resolves the error goal from the receiver when no override
// names it.
func withLoss(m Line, opts []Option, same rebuildFunc) (Line, error) {
	ov := gatherOptions(opts)
	if ov.loss == nil {
		cur := m.Loss()
		ov.loss = &cur
	}

	return withParams(m, ov, same)
}

// ---------- DivisionLine ----------

// rebuild recreates the family over new endpoints, budget intact.
func (m DivisionLine) rebuild(start, stop float64) (Line, error) {
	next, err := NewDivision(start, stop, m.division)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// With applies the given overrides; see Line.With.
func (m DivisionLine) With(opts ...Option) (Line, error) {
	return withParams(m, gatherOptions(opts), m.rebuild)
}

// WithDivision rebuilds as a DivisionLine with the resolved, clamped budget.
func (m DivisionLine) WithDivision(opts ...Option) (Line, error) {
	return withDivision(m, opts, m.rebuild)
}

// WithLoss rebuilds as a LossLine with the resolved, clamped error goal.
func (m DivisionLine) WithLoss(opts ...Option) (Line, error) {
	return withLoss(m, opts, m.rebuild)
}

// WithStart replaces the start endpoint, preserving family and budget.
func (m DivisionLine) WithStart(start float64) (Line, error) {
	return m.With(Start(start))
}

// WithStop replaces the stop endpoint, preserving family and budget.
func (m DivisionLine) WithStop(stop float64) (Line, error) {
	return m.With(Stop(stop))
}

// ---------- LossLine ----------

// rebuild recreates the family over new endpoints, error goal intact.
func (m LossLine) rebuild(start, stop float64) (Line, error) {
	next, err := NewLoss(start, stop, m.loss)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// With applies the given overrides; see Line.With.
func (m LossLine) With(opts ...Option) (Line, error) {
	return withParams(m, gatherOptions(opts), m.rebuild)
}

// WithDivision rebuilds as a DivisionLine with the resolved, clamped budget.
func (m LossLine) WithDivision(opts ...Option) (Line, error) {
	return withDivision(m, opts, m.rebuild)
}

// WithLoss rebuilds as a LossLine with the resolved, clamped error goal.
func (m LossLine) WithLoss(opts ...Option) (Line, error) {
	return withLoss(m, opts, m.rebuild)
}

// WithStart replaces the start endpoint, preserving family and error goal.
func (m LossLine) WithStart(start float64) (Line, error) {
	return m.With(Start(start))
}

// WithStop replaces the stop endpoint, preserving family and error goal.
func (m LossLine) WithStop(stop float64) (Line, error) {
	return m.With(Stop(stop))
}
