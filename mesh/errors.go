package mesh

import "errors"

// Sentinel errors shared by the mesh-line families.
var (
	// ErrNilFunction indicates Evaluate or EvaluateBatch was given a nil function.
	ErrNilFunction = errors.New("mesh: function must be non-nil")

	// ErrBatchLength indicates a BatchFunc returned a slice whose length
	// differs from the point set it was given.
	ErrBatchLength = errors.New("mesh: batch function must return one value per abscissa")

	// ErrNonFinite indicates an interval endpoint is NaN or infinite.
	ErrNonFinite = errors.New("mesh: start and stop must be finite")
)
