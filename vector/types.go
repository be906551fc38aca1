package vector

import (
	"errors"
	"hash/fnv"
	"math"
	"sort"
)

// Sentinel errors for vector operations. Kept minimal and package-scoped,
// the way core's sentinel-error block is organized.
var (
	// ErrDimMismatch indicates two operands have different arity.
	ErrDimMismatch = errors.New("vector: dimension mismatch")

	// ErrBadDims indicates a non-positive dimension was requested.
	ErrBadDims = errors.New("vector: dimension must be >= 1")
)

// CostSource supplies a vertex's current cost components. A Vector's
// provenance holds one of these per contributing vertex ID instead of a
// frozen snapshot, so that Add always re-reads the vertex's present-day
// cost rather than whatever it was at the moment this Vector's singleton
// was first built.
//
// This mirrors the original implementation's Vector, whose provenance
// ("includes") holds live node references and re-reads node.cost inside
// __add__ rather than storing a copy — see
// _examples/original_source/utils/vector.py and utils/graph.py, where
// Node.split reassigns node.cost in place and every later __add__ over a
// Vector that includes that node observes the new value. Without this,
// Vertex.Split's rescale would be silently invisible to any Cost Table
// built before the split (spec.md §9 DESIGN NOTES).
type CostSource interface {
	CostComponents() []float64
}

// staticCost is a CostSource over a fixed snapshot, for provenance entries
// with no backing vertex to re-resolve against (plain arithmetic in tests).
type staticCost struct{ dims []float64 }

func (s staticCost) CostComponents() []float64 { return s.dims }

// Vector is an immutable, fixed-arity tuple of non-negative reals plus a
// provenance map recording, for every contributing vertex ID, a CostSource
// that reports that vertex's cost as of "now" rather than as of whenever
// this Vector was constructed.
//
// Keeping the per-vertex source (not just an ID set) lets Add recompute
// components from the provenance union directly, which is what makes
// "a + a == a" hold even though the two operands may have been built
// through entirely different arithmetic paths (see package doc).
type Vector struct {
	dims     []float64
	contrib  map[string]CostSource
	infinite bool
}

// Zero returns the d-dimensional all-zero Vector with empty provenance.
// Used for the empty cover (no vertices included) and as an additive
// identity.
func Zero(d int) Vector {
	if d < 1 {
		panic(ErrBadDims)
	}

	return Vector{dims: make([]float64, d), contrib: map[string]CostSource{}}
}

// Inf returns the d-dimensional all-infinite Vector with empty provenance,
// the sentinel for an infeasible assignment (an edge left fully uncovered).
func Inf(d int) Vector {
	if d < 1 {
		panic(ErrBadDims)
	}
	dims := make([]float64, d)
	for i := range dims {
		dims[i] = math.Inf(1)
	}

	return Vector{dims: dims, contrib: map[string]CostSource{}, infinite: true}
}

// FromVertexCost builds a singleton Vector contributed by exactly one
// vertex, snapshotting cost as-is at call time. This is for callers with no
// backing vertex to re-resolve against (building plain test fixtures, or
// seeding the raw magnitude later handed to FromVertex); it never observes
// a later Split. Any vertex that MBE might split must be wired through
// FromVertex instead, so its provenance stays live.
func FromVertexCost(id string, cost []float64) Vector {
	dims := append([]float64(nil), cost...)

	return Vector{
		dims:    dims,
		contrib: map[string]CostSource{id: staticCost{dims: append([]float64(nil), cost...)}},
	}
}

// FromVertex builds a singleton Vector contributed by exactly one vertex,
// whose provenance re-reads src's current cost at every later Add instead
// of freezing it at construction time — the live-resolution half of
// spec.md §9 DESIGN NOTES' Split/snapshot question (see CostSource).
func FromVertex(id string, src CostSource) Vector {
	return Vector{
		dims:    append([]float64(nil), src.CostComponents()...),
		contrib: map[string]CostSource{id: src},
	}
}

// Dims reports the arity of v.
func (v Vector) Dims() int { return len(v.dims) }

// IsInfinite reports whether v carries at least one +Inf component.
func (v Vector) IsInfinite() bool { return v.infinite }

// Components returns a defensive copy of v's tuple.
func (v Vector) Components() []float64 {
	return append([]float64(nil), v.dims...)
}

// Includes returns a defensive copy of v's provenance vertex-ID set.
func (v Vector) Includes() map[string]struct{} {
	out := make(map[string]struct{}, len(v.contrib))
	for id := range v.contrib {
		out[id] = struct{}{}
	}

	return out
}

// Add implements Cost Vector addition (spec.md §3/§4.A).
//
// If either operand carries an infinite component, the result is the
// all-infinite Vector with empty provenance. Otherwise the provenance sets
// are unioned and every component is recomputed as the sum over each
// contributing vertex's CURRENT cost (CostSource.CostComponents, read now,
// not the naive sum of a's and b's own components) — so that overlapping
// provenance never double-counts a shared vertex, and a vertex split after
// one of the operands was built is still reflected correctly.
func (a Vector) Add(b Vector) (Vector, error) {
	if a.Dims() != b.Dims() {
		return Vector{}, ErrDimMismatch
	}
	if a.infinite || b.infinite {
		return Inf(a.Dims()), nil
	}

	merged := make(map[string]CostSource, len(a.contrib)+len(b.contrib))
	for id, c := range a.contrib {
		merged[id] = c
	}
	for id, c := range b.contrib {
		merged[id] = c
	}

	sum := make([]float64, a.Dims())
	for _, c := range merged {
		for i, x := range c.CostComponents() {
			sum[i] += x
		}
	}

	return Vector{dims: sum, contrib: merged}, nil
}

// Div divides every component of v by k. Provenance entries are carried
// through unchanged: each is a CostSource (often a live vertex reference),
// and dividing v does not rescale whatever that source will report on a
// later Add — only Vertex.Split itself, by reassigning the vertex's own
// Cost field to this quotient, makes the division visible to later reads.
// Used exclusively by vcgraph.Vertex.Split.
func (v Vector) Div(k float64) Vector {
	dims := make([]float64, len(v.dims))
	for i, x := range v.dims {
		dims[i] = x / k
	}

	return Vector{dims: dims, contrib: v.contrib, infinite: v.infinite}
}

// Equal reports componentwise equality.
func (a Vector) Equal(b Vector) bool {
	if a.Dims() != b.Dims() {
		return false
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] {
			return false
		}
	}

	return true
}

// LessEq reports a <= b componentwise.
func (a Vector) LessEq(b Vector) bool {
	if a.Dims() != b.Dims() {
		return false
	}
	for i := range a.dims {
		if a.dims[i] > b.dims[i] {
			return false
		}
	}

	return true
}

// Less reports strict dominance: a <= b componentwise and a != b.
func (a Vector) Less(b Vector) bool {
	return a.LessEq(b) && !a.Equal(b)
}

// sortedProvenance returns a's provenance IDs in ascending order, used to
// make Hash and tie-breaking deterministic regardless of map iteration
// order.
func (v Vector) sortedProvenance() []string {
	ids := make([]string, 0, len(v.contrib))
	for id := range v.contrib {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Hash combines the rounded tuple with a sorted-provenance hash so that
// Pareto Sets can dedupe via a map[uint64][]Vector without relying on
// iteration order. Components are rounded to 1e-9 to avoid floating-point
// drift producing spurious distinct hashes for equal values.
func (v Vector) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, x := range v.dims {
		r := math.Round(x*1e9) / 1e9
		bits := math.Float64bits(r)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	for _, id := range v.sortedProvenance() {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(id))
	}

	return h.Sum64()
}
