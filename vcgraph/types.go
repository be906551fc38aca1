package vcgraph

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/movc/vector"
)

// Sentinel errors for vcgraph operations, grounded on core's naming
// convention (core.ErrVertexNotFound, core.ErrEdgeNotFound, ...).
var (
	// ErrNilVertex indicates a nil *Vertex was passed where one was required.
	ErrNilVertex = errors.New("vcgraph: vertex is nil")

	// ErrEmptyVertexID indicates a Vertex was constructed with an empty ID.
	ErrEmptyVertexID = errors.New("vcgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("vcgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("vcgraph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; MO-VC graphs are simple.
	ErrLoopNotAllowed = errors.New("vcgraph: self-loops are not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("vcgraph: multi-edges are not allowed")

	// ErrDimMismatch indicates a vertex's cost dimension disagrees with the graph's configured D.
	ErrDimMismatch = errors.New("vcgraph: vertex cost dimension mismatch")
)

// Vertex is a node in a Graph: an identifier, a Cost Vector, and its
// neighbor set. Cost is mutated in place (exactly once per MBE build) by
// Split; everything else is immutable after construction.
type Vertex struct {
	ID        string
	Cost      vector.Vector
	Neighbors map[string]struct{}

	split bool // guards the "at most once per vertex" invariant (spec.md invariant 4)
}

// NewVertex constructs a Vertex with the given ID and cost, and an empty
// neighbor set. The stored Cost's provenance is re-pointed at the new
// Vertex itself (see CostComponents) so that any Cost Table built from it
// later observes the vertex's current cost live, including after Split —
// rather than whatever FromVertexCost snapshotted at the call site.
func NewVertex(id string, cost vector.Vector) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	v := &Vertex{ID: id, Cost: cost, Neighbors: map[string]struct{}{}}
	v.Cost = vector.FromVertex(id, v)

	return v, nil
}

// CostComponents implements vector.CostSource: it reports v's current cost,
// read live at call time rather than snapshotted, so that a Cost Vector
// whose provenance includes v observes Split's effect even if that Vector
// was built before the split happened.
func (v *Vertex) CostComponents() []float64 { return v.Cost.Components() }

// Split rescales v.Cost to Cost/k, as required once per MBE round when a
// vertex's bucket is partitioned into k mini-buckets (spec.md §3 invariant
// 4, §4.F.2.c). Calling it a second time panics: a double-split would
// silently halve a vertex's true cost contribution, a construction bug the
// engine must never trigger.
func (v *Vertex) Split(k int) {
	if v.split {
		panic("vcgraph: Vertex.Split called twice for vertex " + v.ID)
	}
	if k < 1 {
		panic("vcgraph: Vertex.Split requires k >= 1")
	}
	v.Cost = v.Cost.Div(float64(k))
	v.split = true
}

// degree returns the neighbor count, used by the default min-neighbors
// elimination ordering.
func (v *Vertex) degree() int { return len(v.Neighbors) }

// Graph is an id-keyed, undirected collection of Vertex values. It is
// always simple (no self-loops, no parallel edges).
type Graph struct {
	mu       sync.RWMutex
	vertices map[string]*Vertex
	dims     int
}

// New constructs an empty Graph fixed to dims dimensions per vertex cost.
func New(dims int) *Graph {
	if dims < 1 {
		panic(vector.ErrBadDims)
	}

	return &Graph{vertices: map[string]*Vertex{}, dims: dims}
}

// Dims reports the fixed Cost Vector arity for this graph.
func (g *Graph) Dims() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.dims
}

// AddVertex inserts v, or is a no-op if a vertex with the same ID already
// exists (idempotent, per spec.md §4.C "Duplicate node lines are
// idempotent").
func (g *Graph) AddVertex(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	if v.Cost.Dims() != g.dims {
		return ErrDimMismatch
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return nil
	}
	g.vertices[v.ID] = v

	return nil
}

// AddEdge connects u and v symmetrically. Returns ErrVertexNotFound if
// either endpoint is undeclared, ErrLoopNotAllowed if u==v, and is a
// no-op if the edge already exists (edges are simple and symmetric).
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	uv, ok := g.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}

	uv.Neighbors[v] = struct{}{}
	vv.Neighbors[u] = struct{}{}

	return nil
}

// Vertex returns the vertex with the given ID, or nil and false.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]

	return v, ok
}

// Len reports the number of vertices.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VertexIDs returns all vertex IDs in ascending order, for deterministic
// iteration.
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, v := range g.vertices {
		total += len(v.Neighbors)
	}

	return total / 2
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	uv, ok := g.vertices[u]
	if !ok {
		return false
	}
	_, ok = uv.Neighbors[v]

	return ok
}

// Clone returns a deep copy: every Vertex is duplicated (including its
// neighbor set and Cost), grounded on core's Clone semantics
// (core/methods_clone.go). Each clone's Cost provenance is re-pointed at
// the clone, not the source vertex — otherwise a Split applied to the
// clone would mutate a Cost value nobody still reachable from the clone
// ever re-reads, reproducing the same staleness Split/FromVertex guards
// against (see NewVertex).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{vertices: make(map[string]*Vertex, len(g.vertices)), dims: g.dims}
	for id, v := range g.vertices {
		nbrs := make(map[string]struct{}, len(v.Neighbors))
		for n := range v.Neighbors {
			nbrs[n] = struct{}{}
		}
		nv := &Vertex{ID: v.ID, Cost: v.Cost, Neighbors: nbrs, split: v.split}
		nv.Cost = vector.FromVertex(id, nv)
		out.vertices[id] = nv
	}

	return out
}
