// Package adaptive: functional overrides for the wither operations,
// mirroring the uniform package's option surface for the two stopping
// views. An absent override means "keep the receiver's value"; bounds
// clamp minimum first, then maximum, and only act together with their
// own view.
package adaptive

// Option records one override for a wither call.
type Option func(*overrides)

// overrides accumulates the resolved override set; nil means "not
// overridden".
type overrides struct {
	start, stop *float64

	division                 *int
	minDivision, maxDivision *int

	loss             *float64
	minLoss, maxLoss *float64
}

// gatherOptions folds opts into a fresh overrides set.
func gatherOptions(opts []Option) overrides {
	var ov overrides
	for _, opt := range opts {
		opt(&ov)
	}

	return ov
}

// Start overrides the start endpoint.
func Start(x float64) Option { return func(ov *overrides) { ov.start = &x } }

// Stop overrides the stop endpoint.
func Stop(x float64) Option { return func(ov *overrides) { ov.stop = &x } }

// Division overrides the point budget; the rebuilt line is division-driven.
func Division(n int) Option { return func(ov *overrides) { ov.division = &n } }

// MinDivision sets a lower clamp bound for the resolved point budget.
func MinDivision(n int) Option { return func(ov *overrides) { ov.minDivision = &n } }

// MaxDivision sets an upper clamp bound for the resolved point budget.
func MaxDivision(n int) Option { return func(ov *overrides) { ov.maxDivision = &n } }

// Loss overrides the error goal; the rebuilt line is loss-driven.
func Loss(v float64) Option { return func(ov *overrides) { ov.loss = &v } }

// MinLoss sets a lower clamp bound for the resolved error goal.
func MinLoss(v float64) Option { return func(ov *overrides) { ov.minLoss = &v } }

// MaxLoss sets an upper clamp bound for the resolved error goal.
func MaxLoss(v float64) Option { return func(ov *overrides) { ov.maxLoss = &v } }
