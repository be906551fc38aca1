package pareto_test

import (
	"testing"

	"github.com/katalvlaran/movc/pareto"
	"github.com/katalvlaran/movc/vector"
)

func TestRemoveDominated(t *testing.T) {
	a := vector.FromVertexCost("a", []float64{1, 1})
	b := vector.FromVertexCost("b", []float64{2, 2}) // dominated by a
	c := vector.FromVertexCost("c", []float64{0.5, 2})

	s := pareto.New(a, b, c).RemoveDominated()
	if s.Len() != 2 {
		t.Fatalf("expected 2 non-dominated points, got %d", s.Len())
	}
	for _, p := range s.Points() {
		if p.Equal(b) {
			t.Fatalf("dominated point b should have been removed")
		}
	}
}

func TestRemoveDominated_EqualPointsCollapse(t *testing.T) {
	a := vector.FromVertexCost("a", []float64{1, 1})
	a2 := vector.FromVertexCost("a", []float64{1, 1})

	s := pareto.New(a, a2).RemoveDominated()
	if s.Len() != 1 {
		t.Fatalf("expected equal points to collapse to 1 representative, got %d", s.Len())
	}
}

func TestUnion(t *testing.T) {
	p := pareto.Singleton(vector.FromVertexCost("a", []float64{1, 5}))
	q := pareto.Singleton(vector.FromVertexCost("b", []float64{5, 1}))

	u := p.Union(q)
	if u.Len() != 2 {
		t.Fatalf("expected both non-dominated points to survive union, got %d", u.Len())
	}
}

func TestAdd_DoesNotFilter(t *testing.T) {
	p := pareto.New(
		vector.FromVertexCost("a", []float64{1, 0}),
		vector.FromVertexCost("b", []float64{0, 1}),
	)
	q := pareto.Singleton(vector.Zero(2))

	sum, err := p.Add(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Len() != p.Len() {
		t.Fatalf("Add must not filter: expected %d points, got %d", p.Len(), sum.Len())
	}
}

func TestLessEq_AllVersusAll(t *testing.T) {
	low := pareto.Singleton(vector.FromVertexCost("a", []float64{1, 1}))
	high := pareto.Singleton(vector.FromVertexCost("b", []float64{5, 5}))

	if !low.LessEq(high) {
		t.Fatalf("expected low <= high")
	}
	if high.LessEq(low) {
		t.Fatalf("did not expect high <= low")
	}
	if !low.Less(high) {
		t.Fatalf("expected strict low < high")
	}
}

func TestLessEq_MixedSetsAreIncomparable(t *testing.T) {
	// One point in Q is not >= one point in P, so the all-versus-all order
	// must report false even though some pairs individually compare.
	p := pareto.New(
		vector.FromVertexCost("a", []float64{1, 5}),
		vector.FromVertexCost("b", []float64{5, 1}),
	)
	q := pareto.Singleton(vector.FromVertexCost("c", []float64{3, 3}))

	if p.LessEq(q) {
		t.Fatalf("mixed incomparable sets must not satisfy LessEq")
	}
}
