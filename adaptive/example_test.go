package adaptive_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshline/adaptive"
)

// ExampleDivisionLine_Evaluate samples a sharply peaked function under a
// fixed point budget. The budget is honored exactly and the abscissas
// come back sorted; most of them cluster around the peak at x=0.
func ExampleDivisionLine_Evaluate() {
	m, err := adaptive.NewDivision(-1, 1, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	const a = 0.01
	xs, _, err := m.Evaluate(func(x float64) float64 {
		return x + a*a/(a*a+x*x)
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(xs), sort.Float64sAreSorted(xs))
	// Output:
	// 100 true
}

// ExampleLossLine_WithDivision swaps the stopping policy: overriding the
// point budget on a loss-driven line switches the concrete family.
func ExampleLossLine_WithDivision() {
	m, err := adaptive.NewLoss(-1, 1, 0.01)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	next, err := m.WithDivision(adaptive.Division(1000))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%T division=%d\n", next, next.Division())
	// Output:
	// adaptive.DivisionLine division=1000
}
