package adaptive

import "errors"

// Sentinel errors for adaptive mesh-line construction.
var (
	// ErrBadDivision indicates a point budget below 2: the engine seeds
	// both endpoints, so smaller budgets cannot be honored.
	ErrBadDivision = errors.New("adaptive: division must be at least 2")

	// ErrBadLoss indicates a loss goal that is zero, negative, NaN or infinite.
	ErrBadLoss = errors.New("adaptive: loss must be positive and finite")

	// ErrDegenerateInterval indicates start == stop: a zero-width
	// interval leaves the engine nothing to refine.
	ErrDegenerateInterval = errors.New("adaptive: start and stop must differ")
)
