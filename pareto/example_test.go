package pareto_test

import (
	"fmt"

	"github.com/katalvlaran/movc/pareto"
	"github.com/katalvlaran/movc/vector"
)

// Example shows dominance filtering collapsing a dominated point out of a
// Union while keeping two genuinely non-dominated trade-offs.
func Example() {
	a := vector.FromVertexCost("A", []float64{3, 1})
	b := vector.FromVertexCost("B", []float64{1, 3})
	dominated := vector.FromVertexCost("C", []float64{4, 4})

	front := pareto.New(a, b, dominated).RemoveDominated()
	fmt.Println(front.Len())

	// Output:
	// 2
}
