package table

import (
	"errors"

	"github.com/katalvlaran/movc/pareto"
	"github.com/katalvlaran/movc/vcgraph"
	"github.com/katalvlaran/movc/vector"
)

// ErrEliminateSingleton is panicked by Eliminate when asked to eliminate
// from a scope of size 1: nothing would remain to carry the resulting
// heuristic. The engine (package mbe) must never construct this request;
// hitting it indicates a construction bug (spec.md §7 EliminateSingleton).
var ErrEliminateSingleton = errors.New("table: cannot eliminate from a scope of size 1")

// ErrScopeMismatch indicates Add was called with a small table whose scope
// is not a subset of big's scope.
var ErrScopeMismatch = errors.New("table: small.Scope is not a subset of big.Scope")

// Table is a Cost Table (spec.md §3/§4.E): an ordered Scope of vertices, an
// optional From tag naming the vertex this table was produced by
// eliminating, and Body indexed by subset-mask key: bit i of the key
// encodes whether Scope[i] is included in the cover.
type Table struct {
	Scope []*vcgraph.Vertex
	From  *vcgraph.Vertex
	Body  []pareto.Set
}

// Width returns the scope size.
func (t *Table) Width() int { return len(t.Scope) }

// IndexOf returns the position of vertex id within the scope, or -1 if
// absent.
func (t *Table) IndexOf(id string) int {
	for i, v := range t.Scope {
		if v.ID == id {
			return i
		}
	}

	return -1
}

// At returns the Pareto Set stored at key.
func (t *Table) At(key int) pareto.Set { return t.Body[key] }

// SetAt overwrites the Pareto Set stored at key.
func (t *Table) SetAt(key int, s pareto.Set) { t.Body[key] = s }

// New creates the base table over scope: each key's Pareto Set is
// the singleton vector summing the cost of every scope vertex whose bit is
// set, so the entry's provenance is exactly that subset (spec.md §4.E
// "create").
func New(scope []*vcgraph.Vertex) *Table {
	n := len(scope)
	dims := 1
	if n > 0 {
		dims = scope[0].Cost.Dims()
	}
	body := make([]pareto.Set, 1<<uint(n))
	for key := range body {
		sum := vector.Zero(dims)
		for i, v := range scope {
			if key&(1<<uint(i)) != 0 {
				var err error
				sum, err = sum.Add(v.Cost)
				if err != nil {
					panic(err) // dimension mismatch across scope vertices is a construction bug
				}
			}
		}
		body[key] = pareto.Singleton(sum)
	}

	return &Table{Scope: scope, Body: body}
}

// ElementaryEdge builds the hard 0/1 coverage constraint for edge {u,v}
// (spec.md §3): both endpoints uncovered (key 00) is infeasible and maps to
// the all-infinite singleton; otherwise the entry is the sum of whichever
// endpoints are included.
func ElementaryEdge(u, v *vcgraph.Vertex) *Table {
	t := New([]*vcgraph.Vertex{u, v})
	t.Body[0] = pareto.Singleton(vector.Inf(u.Cost.Dims()))

	return t
}

// KeyFor computes the subset-mask key implied by assignment (vertex ID ->
// included) for this table's scope. ok is false if assignment does not
// cover every scope vertex.
func (t *Table) KeyFor(assignment map[string]bool) (key int, ok bool) {
	for i, v := range t.Scope {
		included, has := assignment[v.ID]
		if !has {
			return 0, false
		}
		if included {
			key |= 1 << uint(i)
		}
	}

	return key, true
}

// Add performs the in-place Minkowski merge "big[b] += small[k]" for every
// small key k and every big key b whose bits agree with k at small's
// projected positions (spec.md §4.E "add"). small.Scope must be a subset of
// big.Scope (order-independent); positions absent from small are free in
// big and are summed over both branches.
func Add(big, small *Table) error {
	proj := make([]int, small.Width()) // proj[i] = position of small.Scope[i] in big.Scope
	for i, v := range small.Scope {
		p := big.IndexOf(v.ID)
		if p < 0 {
			return ErrScopeMismatch
		}
		proj[i] = p
	}

	for bigKey := range big.Body {
		smallKey := 0
		for i, p := range proj {
			if bigKey&(1<<uint(p)) != 0 {
				smallKey |= 1 << uint(i)
			}
		}
		sum, err := big.Body[bigKey].Add(small.Body[smallKey])
		if err != nil {
			return err
		}
		big.Body[bigKey] = sum
	}

	return nil
}

// Eliminate performs min-marginalization over x: the reduced table's scope
// is full.Scope without x, tagged From=x. For every reduced key, the result
// is the dominance-filtered union of full's two entries that agree with
// the reduced key on every surviving position — x's own bit ranges freely
// over both assignments (spec.md §4.E "eliminate").
//
// Panics with ErrEliminateSingleton if full has a scope of size < 2: the
// engine must never request this (spec.md §4.E edge case).
func Eliminate(full *Table, x *vcgraph.Vertex) *Table {
	if full.Width() < 2 {
		panic(ErrEliminateSingleton)
	}
	xi := full.IndexOf(x.ID)
	if xi < 0 {
		panic("table: Eliminate: x is not in full.Scope")
	}

	reduced := make([]*vcgraph.Vertex, 0, full.Width()-1)
	// position in full -> position in reduced, or -1 for xi itself
	fullToReduced := make([]int, full.Width())
	for i, v := range full.Scope {
		if i == xi {
			fullToReduced[i] = -1

			continue
		}
		fullToReduced[i] = len(reduced)
		reduced = append(reduced, v)
	}

	out := &Table{Scope: reduced, From: x, Body: make([]pareto.Set, 1<<uint(len(reduced)))}
	for h := range out.Body {
		// Scatter h's bits into full-key positions (skipping xi), producing
		// the base key with xi cleared; then OR in xi=0 and xi=1 variants.
		base := 0
		for i := range full.Scope {
			ri := fullToReduced[i]
			if ri == -1 {
				continue
			}
			if h&(1<<uint(ri)) != 0 {
				base |= 1 << uint(i)
			}
		}
		withXi0 := base
		withXi1 := base | (1 << uint(xi))
		out.Body[h] = full.Body[withXi0].Union(full.Body[withXi1])
	}

	return out
}
