package learner

// Goal decides when a refinement run is complete. It is consulted before
// every step, so a Goal that is already satisfied on a fresh engine stops
// the run before any extra sample is placed.
type Goal func(*Learner) bool

// NPointsGoal stops a run once the engine has sampled at least n points.
// The engine seeds two endpoint samples, so n below 2 is met immediately.
func NPointsGoal(n int) Goal {
	return func(l *Learner) bool { return l.NPoints() >= n }
}

// LossGoal stops a run once every pending interval's estimated loss is at
// or below target.
func LossGoal(target float64) Goal {
	return func(l *Learner) bool { return l.MaxLoss() <= target }
}

// Run drives l one Step at a time until done reports completion or the
// engine cannot refine any further. Sequential and blocking; the caller
// owns pacing and any additional caps layered on top of done.
func Run(l *Learner, done Goal) {
	for !done(l) {
		if !l.Step() {
			return
		}
	}
}
