package pareto

import (
	"sort"

	"github.com/katalvlaran/movc/vector"
)

// Set is an unordered collection of vector.Vector values. The zero value is
// not meaningful; use New or Singleton.
//
// Backed by a plain slice: Pareto Sets inside Cost Tables are typically
// small (a handful of non-dominated points per key), so linear scans beat
// the bookkeeping of a tree or map, the same trade-off the teacher makes
// for adjacency lists in core.Graph.
type Set struct {
	points []vector.Vector
}

// New builds a Set from the given points without filtering. Callers that
// need a dominance-free set should call RemoveDominated or use Union.
func New(points ...vector.Vector) Set {
	cp := append([]vector.Vector(nil), points...)

	return Set{points: cp}
}

// Singleton builds a one-element Set.
func Singleton(v vector.Vector) Set {
	return Set{points: []vector.Vector{v}}
}

// Len reports the number of points currently held (may include dominated
// points if the Set was built via Add or New without a subsequent filter).
func (s Set) Len() int { return len(s.points) }

// Points returns a defensive copy of the underlying points.
func (s Set) Points() []vector.Vector {
	return append([]vector.Vector(nil), s.points...)
}

// IsEmpty reports whether the set holds no points.
func (s Set) IsEmpty() bool { return len(s.points) == 0 }

// RemoveDominated returns a new Set with every strictly dominated point
// removed and duplicate (equal) points collapsed to one representative.
//
// Implemented as a two-pass mark-then-delete algorithm per spec.md's
// correction of the source's "skip KeyError during iteration" bug (DESIGN
// NOTES): pass 1 marks which indices are dominated or a discarded
// duplicate, pass 2 builds the surviving slice. No mutation happens while
// the marking loop is iterating, so there is no concurrent-modification
// hazard to mask.
//
// Complexity: O(n^2) comparisons.
func (s Set) RemoveDominated() Set {
	n := len(s.points)
	dominated := make([]bool, n)

	// Deterministic tie-break order: process points sorted by hash so that,
	// among equal points, the lowest-hash index is always the one kept.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		hi, hj := s.points[order[i]].Hash(), s.points[order[j]].Hash()
		if hi != hj {
			return hi < hj
		}

		return order[i] < order[j]
	})

	keptOfEqual := make(map[uint64]int, n) // hash -> index already chosen as representative
	for _, i := range order {
		if dominated[i] {
			continue
		}
		p := s.points[i]
		if rep, ok := keptOfEqual[p.Hash()]; ok && rep != i && p.Equal(s.points[rep]) {
			dominated[i] = true
			continue
		}
		keptOfEqual[p.Hash()] = i

		for _, j := range order {
			if j == i || dominated[j] {
				continue
			}
			q := s.points[j]
			if p.Equal(q) {
				dominated[j] = true // equal point: i, earlier in hash order, is the representative
				continue
			}
			if p.Less(q) {
				dominated[j] = true
			}
		}
	}

	out := make([]vector.Vector, 0, n)
	for i, d := range dominated {
		if !d {
			out = append(out, s.points[i])
		}
	}

	return Set{points: out}
}

// Union computes the dominance-filtered union P ∪ Q.
func (p Set) Union(q Set) Set {
	combined := make([]vector.Vector, 0, len(p.points)+len(q.points))
	combined = append(combined, p.points...)
	combined = append(combined, q.points...)

	return Set{points: combined}.RemoveDominated()
}

// Add computes the Minkowski sum P + Q = { a+b : a∈P, b∈Q } without
// filtering. Returns vector.ErrDimMismatch if any pair has mismatched
// dimensions (only possible if P and Q were built from vectors of
// different arity, a programming error).
func (p Set) Add(q Set) (Set, error) {
	out := make([]vector.Vector, 0, len(p.points)*len(q.points))
	for _, a := range p.points {
		for _, b := range q.points {
			sum, err := a.Add(b)
			if err != nil {
				return Set{}, err
			}
			out = append(out, sum)
		}
	}

	return Set{points: out}, nil
}

// LessEq implements the conservative all-versus-all order: P <= Q iff every
// point of P is componentwise <= every point of Q. Used only for
// Branch-and-Bound pruning (spec.md DESIGN NOTES).
func (p Set) LessEq(q Set) bool {
	if p.IsEmpty() || q.IsEmpty() {
		return false
	}
	for _, a := range p.points {
		for _, b := range q.points {
			if !a.LessEq(b) {
				return false
			}
		}
	}

	return true
}

// Less implements the strict version: P < Q iff P <= Q and the sets differ.
func (p Set) Less(q Set) bool {
	if !p.LessEq(q) {
		return false
	}

	return !p.sameAs(q)
}

// sameAs reports whether p and q contain the same multiset of points,
// compared via Hash+Equal so ordering of internal storage never matters.
func (p Set) sameAs(q Set) bool {
	if len(p.points) != len(q.points) {
		return false
	}
	used := make([]bool, len(q.points))
	for _, a := range p.points {
		found := false
		for j, b := range q.points {
			if used[j] {
				continue
			}
			if a.Equal(b) {
				used[j] = true
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
