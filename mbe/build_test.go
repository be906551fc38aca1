package mbe_test

import (
	"testing"

	"github.com/katalvlaran/movc/mbe"
	"github.com/katalvlaran/movc/ordering"
	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vcgraph"
	"github.com/katalvlaran/movc/vector"
)

func triangle(t *testing.T) *vcgraph.Graph {
	t.Helper()
	g := vcgraph.New(1)
	for _, id := range []string{"a", "b", "c"} {
		v, err := vcgraph.NewVertex(id, vector.FromVertexCost(id, []float64{1}))
		if err != nil {
			t.Fatalf("NewVertex: %v", err)
		}
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// squareMinusEdge builds K4 minus one edge (vertices 1,2,3,4; edges
// (1,3),(1,4),(2,3),(2,4),(3,4)): under MinNeighbors, vertices 2 and 1 are
// eliminated first and each holds two edge tables that cannot share a
// width-2 mini-bucket, so a width bound of 2 splits each of them into two
// mini-buckets (spec.md §8's "square with diagonal" scenario).
func squareMinusEdge(t *testing.T) *vcgraph.Graph {
	t.Helper()
	g := vcgraph.New(1)
	for _, id := range []string{"1", "2", "3", "4"} {
		v, err := vcgraph.NewVertex(id, vector.FromVertexCost(id, []float64{1}))
		if err != nil {
			t.Fatalf("NewVertex: %v", err)
		}
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	for _, e := range [][2]string{{"1", "3"}, {"1", "4"}, {"2", "3"}, {"2", "4"}, {"3", "4"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// TestBuild_WidthBoundRespected confirms that a width-2 build never
// materializes a table wider than 2, across both Costs and Heuristics, on
// an instance whose first-eliminated vertices are actually forced to split
// into multiple mini-buckets — unlike this package's other fixtures, whose
// width bound was always generous enough that Split(k) with k>1 never
// happened (see DESIGN.md item 3).
func TestBuild_WidthBoundRespected(t *testing.T) {
	g := squareMinusEdge(t)
	order := ordering.MinNeighbors(g)
	eng, err := mbe.Build(g, order, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, id := range []string{"1", "2", "3", "4"} {
		b := eng.Bucket(id)
		if b == nil {
			continue
		}
		for _, tbl := range append(append([]*table.Table{}, b.Costs...), b.Heuristics...) {
			if tbl.Width() > 2 {
				t.Fatalf("bucket %s holds a table of width %d, exceeding maxVars=2", id, tbl.Width())
			}
		}
	}
}

// TestBuild_W2LeafMatchesExactRegardlessOfSplit confirms exactCost (used
// whenever a prefix covers every vertex) stays correct under a width-2
// build, where vertices 2 and 1 are actually Split across more than one
// mini-bucket: the full-assignment leaf value always comes from
// e.original (never rescaled by Split), so it must agree between W=2 and
// W=4 builds for every assignment, and the true minimum vertex cover
// {3,4} must evaluate to cost 2 under both (spec.md §8's W=2-vs-W=4
// "square with diagonal" scenario; the bnb package's
// TestSolve_SquareMinusEdge_W2StillFindsOptimum exercises the same
// instance end to end through search).
func TestBuild_W2LeafMatchesExactRegardlessOfSplit(t *testing.T) {
	g := squareMinusEdge(t)
	order := ordering.MinNeighbors(g)
	forward := order.Forward()

	eng4, err := mbe.Build(g, order, 4)
	if err != nil {
		t.Fatalf("Build(4): %v", err)
	}
	eng2, err := mbe.Build(g, order, 2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}

	cover := map[string]bool{"3": true, "4": true}
	prefix := make([]bool, len(forward))
	for i, id := range forward {
		prefix[i] = cover[id]
	}

	exact4, _ := eng4.CostAt(prefix)
	exact2, _ := eng2.CostAt(prefix)
	if len(exact4.Points()) != 1 || exact4.Points()[0].Components()[0] != 2 {
		t.Fatalf("W=4 leaf cost for {3,4} should be 2, got %v", exact4.Points())
	}
	if len(exact2.Points()) != 1 || exact2.Points()[0].Components()[0] != 2 {
		t.Fatalf("W=2 leaf cost for {3,4} should be 2 regardless of mini-bucket splitting, got %v", exact2.Points())
	}
}

func TestBuild_RejectsSmallWidth(t *testing.T) {
	g := triangle(t)
	order := ordering.MinNeighbors(g)
	if _, err := mbe.Build(g, order, 1); err != mbe.ErrMaxVarsTooSmall {
		t.Fatalf("expected ErrMaxVarsTooSmall, got %v", err)
	}
}

func TestBuild_DoesNotMutateCaller(t *testing.T) {
	g := triangle(t)
	order := ordering.MinNeighbors(g)
	if _, err := mbe.Build(g, order, 3); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// The caller's graph must be untouched: every vertex cost is still 1.
	for _, id := range []string{"a", "b", "c"} {
		v, _ := g.Vertex(id)
		if v.Cost.Components()[0] != 1 {
			t.Fatalf("Build must not mutate the caller's graph, vertex %s cost = %v", id, v.Cost.Components())
		}
	}
}

func TestCostAt_Triangle(t *testing.T) {
	g := triangle(t)
	order := ordering.MinNeighbors(g)
	eng, err := mbe.Build(g, order, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	forward := order.Forward()

	// A triangle needs at least two of its three vertices covered: any
	// assignment leaving two vertices both at 0 is infeasible.
	all := map[string]bool{}
	for _, id := range forward {
		all[id] = true
	}
	prefix := make([]bool, 0, len(forward))
	for _, id := range forward {
		prefix = append(prefix, all[id])
	}
	set, _ := eng.CostAt(prefix)
	pts := set.Points()
	if len(pts) != 1 || pts[0].IsInfinite() {
		t.Fatalf("expected a single finite point covering all three vertices, got %v", pts)
	}
	if pts[0].Components()[0] != 3 {
		t.Fatalf("expected cost 3 for the all-included assignment, got %v", pts[0].Components())
	}

	// Leaving every vertex out is infeasible (no edge covered).
	none := make([]bool, len(forward))
	set, _ = eng.CostAt(none)
	for _, p := range set.Points() {
		if !p.IsInfinite() {
			t.Fatalf("expected every point to be infinite when nothing is covered, got %v", p.Components())
		}
	}
}

func TestCostAt_PartialPrefixRecommendsAndCaches(t *testing.T) {
	g := triangle(t)
	order := ordering.MinNeighbors(g)
	eng, err := mbe.Build(g, order, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	set1, rec1 := eng.CostAt([]bool{})
	set2, rec2 := eng.CostAt([]bool{})
	if rec1 != rec2 {
		t.Fatalf("CostAt must be deterministic across repeated calls (cache consistency)")
	}
	if set1.Len() == 0 || set2.Len() == 0 {
		t.Fatalf("expected a non-empty lower-bound Pareto Set for the empty prefix")
	}
}

func TestBestNext_Deterministic(t *testing.T) {
	g := triangle(t)
	order := ordering.MinNeighbors(g)
	eng, err := mbe.Build(g, order, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	a := eng.BestNext([]bool{})
	b := eng.BestNext([]bool{})
	if a != b {
		t.Fatalf("BestNext must be deterministic for the same prefix")
	}
}
