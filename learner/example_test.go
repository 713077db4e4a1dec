package learner_test

import (
	"fmt"

	"github.com/katalvlaran/meshline/learner"
)

// ExampleRun drives a flat function to a loss goal. With no value
// variation the loss is the scaled interval width, so refinement is plain
// bisection and the result is fully predictable.
func ExampleRun() {
	l, err := learner.New(func(float64) float64 { return 1 }, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	learner.Run(l, learner.LossGoal(0.3))

	xs, _ := l.Samples()
	fmt.Println(xs)
	// Output:
	// [0 0.25 0.5 0.75 1]
}

// ExampleNPointsGoal stops a run at an exact point budget.
func ExampleNPointsGoal() {
	l, err := learner.New(func(x float64) float64 { return x * x }, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	learner.Run(l, learner.NPointsGoal(9))
	fmt.Println(l.NPoints())
	// Output:
	// 9
}
