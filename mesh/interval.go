package mesh

import "math"

// Interval is the immutable sampling domain shared by every mesh-line
// family. Concrete families embed it to satisfy the Start/Stop/Length part
// of the Line contract.
//
// The order of the endpoints is not constrained: Interval{5, 3} is as
// valid as Interval{3, 5}, and both have Length 2. Length is a pure
// function of the endpoints and is never stored.
type Interval struct {
	start, stop float64
}

// NewInterval builds an Interval from the given endpoints.
// Returns ErrNonFinite when either endpoint is NaN or infinite.
func NewInterval(start, stop float64) (Interval, error) {
	if isNonFinite(start) || isNonFinite(stop) {
		return Interval{}, ErrNonFinite
	}

	return Interval{start: start, stop: stop}, nil
}

// Start returns the first endpoint.
func (i Interval) Start() float64 { return i.start }

// Stop returns the second endpoint.
func (i Interval) Stop() float64 { return i.stop }

// Length returns |Stop-Start|.
func (i Interval) Length() float64 { return math.Abs(i.stop - i.start) }

// Degenerate reports whether the interval has zero length.
func (i Interval) Degenerate() bool { return i.start == i.stop }

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
