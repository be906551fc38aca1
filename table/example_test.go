package table_test

import (
	"fmt"

	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vcgraph"
	"github.com/katalvlaran/movc/vector"
)

func ExampleElementaryEdge() {
	u, _ := vcgraph.NewVertex("u", vector.FromVertexCost("u", []float64{1}))
	v, _ := vcgraph.NewVertex("v", vector.FromVertexCost("v", []float64{1}))

	e := table.ElementaryEdge(u, v)
	fmt.Println(e.At(0).Points()[0].IsInfinite(), e.At(3).Points()[0].Components())
	// Output: true [2]
}
