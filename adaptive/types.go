// Package adaptive: the Line contract and documented defaults for
// progressively refined mesh lines.
package adaptive

import "github.com/katalvlaran/meshline/mesh"

// DEFAULTS - single source of truth for the stopping parameters. Each
// family owns one of the two; the other is exposed at its default.
const (
	// DefaultDivision is the point budget a division-driven line assumes,
	// and the budget a LossLine reports for its non-governing view.
	DefaultDivision = 1000

	// DefaultLoss is the error goal a loss-driven line assumes, and the
	// goal a DivisionLine reports for its non-governing view.
	DefaultLoss = 0.01
)

// Line is the contract shared by the two adaptive families. Exactly one
// of the two stopping views governs a concrete line; the other is
// reported at its declared default, never derived from a run.
type Line interface {
	mesh.Line

	// Division returns the point budget (owned, or DefaultDivision on a
	// loss-driven line).
	Division() int

	// Loss returns the error goal (owned, or DefaultLoss on a
	// division-driven line).
	Loss() float64

	// With returns a new line with the given overrides applied. Family
	// switching is binary: an overridden division yields a DivisionLine,
	// an overridden loss a LossLine; with neither present the family and
	// its governing value are preserved. Start/Stop default to the
	// receiver's endpoints.
	With(opts ...Option) (Line, error)

	// WithDivision resolves the point budget (override or current),
	// clamps it by any Min/MaxDivision bounds, and rebuilds as a
	// DivisionLine.
	WithDivision(opts ...Option) (Line, error)

	// WithLoss is WithDivision for the loss view; the result is a LossLine.
	WithLoss(opts ...Option) (Line, error)

	// WithStart returns the same family with the start endpoint replaced,
	// governing value intact.
	WithStart(start float64) (Line, error)

	// WithStop is WithStart for the stop endpoint.
	WithStop(stop float64) (Line, error)
}
