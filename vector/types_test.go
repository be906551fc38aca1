package vector_test

import (
	"testing"

	"github.com/katalvlaran/movc/vector"
)

func TestZero(t *testing.T) {
	z := vector.Zero(2)
	if !z.Equal(vector.Zero(2)) {
		t.Fatalf("Zero(2) should equal itself")
	}
	if len(z.Includes()) != 0 {
		t.Fatalf("Zero vector must have empty provenance")
	}
}

func TestAdd_IdempotentOnSharedProvenance(t *testing.T) {
	a := vector.FromVertexCost("v1", []float64{3, 1})
	b := vector.FromVertexCost("v2", []float64{1, 3})

	ab, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abab, err := ab.Add(ab)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ab.Equal(abab) {
		t.Fatalf("a+a should be idempotent when provenance coincides: got %v vs %v",
			ab.Components(), abab.Components())
	}
}

func TestAdd_DimMismatch(t *testing.T) {
	a := vector.Zero(2)
	b := vector.Zero(3)
	if _, err := a.Add(b); err != vector.ErrDimMismatch {
		t.Fatalf("expected ErrDimMismatch, got %v", err)
	}
}

func TestAdd_InfinitePropagates(t *testing.T) {
	a := vector.Inf(2)
	b := vector.FromVertexCost("v1", []float64{1, 1})
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.IsInfinite() {
		t.Fatalf("sum with an infinite operand must be infinite")
	}
	if len(sum.Includes()) != 0 {
		t.Fatalf("infinite sum must have empty provenance")
	}
}

func TestDiv_PreservesProvenance(t *testing.T) {
	a := vector.FromVertexCost("v1", []float64{4, 2})
	half := a.Div(2)
	if _, ok := half.Includes()["v1"]; !ok {
		t.Fatalf("Div must preserve provenance")
	}
	want := []float64{2, 1}
	for i, x := range half.Components() {
		if x != want[i] {
			t.Fatalf("Div: component %d = %v, want %v", i, x, want[i])
		}
	}
}

func TestLessAndDominance(t *testing.T) {
	a := vector.FromVertexCost("v1", []float64{1, 1})
	b := vector.FromVertexCost("v2", []float64{2, 2})
	if !a.Less(b) {
		t.Fatalf("expected a < b (strict dominance)")
	}
	if b.Less(a) {
		t.Fatalf("did not expect b < a")
	}
	if !a.LessEq(a) {
		t.Fatalf("a <= a must hold")
	}
	if a.Less(a) {
		t.Fatalf("a < a must not hold (equal vectors do not strictly dominate)")
	}
}

// mutableCost is a vector.CostSource whose reported value can change
// between Add calls, standing in for a vcgraph.Vertex across a Split.
type mutableCost struct{ dims []float64 }

func (m *mutableCost) CostComponents() []float64 { return m.dims }

// TestAdd_ResolvesProvenanceLive guards the bug a maintainer review found
// in mbe.computeHeuristics: a Vector built from a vertex's cost before
// that vertex is later rescaled (vcgraph.Vertex.Split) must still reflect
// the rescaled value on any subsequent Add, not the value frozen at the
// Vector's own construction time. See DESIGN.md's "Open Question
// decisions" item 3.
func TestAdd_ResolvesProvenanceLive(t *testing.T) {
	src := &mutableCost{dims: []float64{6}}
	early := vector.FromVertex("x", src) // built before the rescale

	src.dims = []float64{2} // stands in for Vertex.Split(3)

	sum, err := vector.Zero(1).Add(early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sum.Components()[0]; got != 2 {
		t.Fatalf("Add must re-read the CostSource's current value: got %v, want 2", got)
	}
}

func TestHash_Deterministic(t *testing.T) {
	a := vector.FromVertexCost("v1", []float64{1, 2})
	b := vector.FromVertexCost("v1", []float64{1, 2})
	if a.Hash() != b.Hash() {
		t.Fatalf("equal vectors with identical provenance must hash identically")
	}
}
