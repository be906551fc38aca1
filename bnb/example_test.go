package bnb_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/movc/bnb"
	"github.com/katalvlaran/movc/mbe"
	"github.com/katalvlaran/movc/ordering"
	"github.com/katalvlaran/movc/vcgraph"
	"github.com/katalvlaran/movc/vector"
)

func ExampleSearch_Solve() {
	g := vcgraph.New(1)
	for _, id := range []string{"a", "b", "c"} {
		v, _ := vcgraph.NewVertex(id, vector.FromVertexCost(id, []float64{1}))
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")

	order := ordering.MinNeighbors(g)
	eng, err := mbe.Build(g, order, 3)
	if err != nil {
		panic(err)
	}

	front, err := bnb.New().Solve(context.Background(), eng)
	if err != nil {
		panic(err)
	}
	fmt.Println(front.Points()[0].Components())
	// Output: [2]
}
