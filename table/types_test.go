package table_test

import (
	"testing"

	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vcgraph"
	"github.com/katalvlaran/movc/vector"
)

func vtx(t *testing.T, id string, cost float64) *vcgraph.Vertex {
	t.Helper()
	v, err := vcgraph.NewVertex(id, vector.FromVertexCost(id, []float64{cost}))
	if err != nil {
		t.Fatalf("NewVertex: %v", err)
	}

	return v
}

func TestElementaryEdge(t *testing.T) {
	u := vtx(t, "u", 1)
	v := vtx(t, "v", 1)
	e := table.ElementaryEdge(u, v)

	if !e.At(0).Points()[0].IsInfinite() {
		t.Fatalf("key 00 (neither endpoint covered) must be infinite")
	}
	if e.At(1).Points()[0].Components()[0] != 1 {
		t.Fatalf("key 01 (u only) should cost 1, got %v", e.At(1).Points()[0].Components())
	}
	if e.At(2).Points()[0].Components()[0] != 1 {
		t.Fatalf("key 10 (v only) should cost 1, got %v", e.At(2).Points()[0].Components())
	}
	if e.At(3).Points()[0].Components()[0] != 2 {
		t.Fatalf("key 11 (both) should cost 2, got %v", e.At(3).Points()[0].Components())
	}
}

func TestEliminate_SingletonPanics(t *testing.T) {
	u := vtx(t, "u", 1)
	single := table.New([]*vcgraph.Vertex{u})

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic eliminating from a width-1 scope")
		}
	}()
	table.Eliminate(single, u)
}

func TestEliminate_Path3(t *testing.T) {
	// Path a-b-c, uniform cost 1. Eliminate b from the pooled {a,b} and
	// {b,c} elementary tables: the reduced table over {a,c} should reflect
	// the cheapest way to cover both edges for each (a,c) assignment.
	a := vtx(t, "a", 1)
	b := vtx(t, "b", 1)
	c := vtx(t, "c", 1)

	ab := table.ElementaryEdge(a, b)
	bc := table.ElementaryEdge(b, c)

	full := table.New([]*vcgraph.Vertex{a, b, c})
	if err := table.Add(full, ab); err != nil {
		t.Fatalf("Add(ab): %v", err)
	}
	if err := table.Add(full, bc); err != nil {
		t.Fatalf("Add(bc): %v", err)
	}

	reduced := table.Eliminate(full, b)
	if reduced.Width() != 2 {
		t.Fatalf("expected reduced width 2, got %d", reduced.Width())
	}
	if reduced.From.ID != "b" {
		t.Fatalf("expected From=b, got %v", reduced.From)
	}

	// a=0, c=0: b must be 1 to cover both edges -> cost includes b once (1).
	key, ok := reduced.KeyFor(map[string]bool{"a": false, "c": false})
	if !ok {
		t.Fatalf("KeyFor should resolve for a full assignment of the reduced scope")
	}
	pts := reduced.At(key).RemoveDominated().Points()
	found := false
	for _, p := range pts {
		if !p.IsInfinite() && p.Components()[0] == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a finite cost-1 point when a=c=0, got %v", pts)
	}
}

func TestAdd_ScopeMismatch(t *testing.T) {
	a := vtx(t, "a", 1)
	b := vtx(t, "b", 1)
	other := vtx(t, "z", 1)

	big := table.New([]*vcgraph.Vertex{a, b})
	small := table.New([]*vcgraph.Vertex{other})

	if err := table.Add(big, small); err != table.ErrScopeMismatch {
		t.Fatalf("expected ErrScopeMismatch, got %v", err)
	}
}
