package mesh

// ClipFloat clamps v by the optional bounds lo and hi; a nil bound is
// ignored, and with both bounds absent the value passes through untouched.
//
// The bounds are applied in a fixed order: minimum first, then maximum.
// A caller passing lo > hi therefore deterministically receives hi — the
// minimum is silently discarded. This ordering is part of the wither
// contract and relied on by callers; do not reorder it.
func ClipFloat(v float64, lo, hi *float64) float64 {
	if lo != nil && v < *lo {
		v = *lo
	}
	if hi != nil && v > *hi {
		v = *hi
	}

	return v
}

// ClipInt is ClipFloat for integer views (division, point budgets).
// Same bound semantics, same min-then-max ordering.
func ClipInt(v int, lo, hi *int) int {
	if lo != nil && v < *lo {
		v = *lo
	}
	if hi != nil && v > *hi {
		v = *hi
	}

	return v
}
