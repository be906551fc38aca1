package ordering

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/movc/vcgraph"
)

// ErrUnknownVertex indicates a Custom permutation names a vertex absent
// from the graph, or omits one of the graph's vertices.
var ErrUnknownVertex = errors.New("ordering: permutation does not match the graph's vertex set")

// Order is a forward elimination order: a permutation of a graph's vertex
// IDs. MBE eliminates Reversed()[0] first.
type Order struct {
	forward []string
}

// Forward returns a defensive copy of the forward order.
func (o Order) Forward() []string { return append([]string(nil), o.forward...) }

// Reversed returns the order MBE actually eliminates in (spec.md §4.D):
// the last-in-order vertex first.
func (o Order) Reversed() []string {
	n := len(o.forward)
	out := make([]string, n)
	for i, id := range o.forward {
		out[n-1-i] = id
	}

	return out
}

// Len reports the number of vertices in the order.
func (o Order) Len() int { return len(o.forward) }

// degreeItem is one entry in the max-heap used by MinNeighbors.
type degreeItem struct {
	id     string
	degree int
}

// degreeHeap is a max-heap on degree, ties broken by ascending ID so that
// equal-degree vertices always pop in the same order (determinism).
type degreeHeap []degreeItem

func (h degreeHeap) Len() int { return len(h) }
func (h degreeHeap) Less(i, j int) bool {
	if h[i].degree != h[j].degree {
		return h[i].degree > h[j].degree
	}

	return h[i].id < h[j].id
}
func (h degreeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *degreeHeap) Push(x interface{}) { *h = append(*h, x.(degreeItem)) }
func (h *degreeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// MinNeighbors builds the default ordering: vertices sorted by decreasing
// neighbor count (spec.md §4.D), selected via a max-heap the same way
// prim_kruskal.Prim selects candidate edges from a min-heap.
func MinNeighbors(g *vcgraph.Graph) Order {
	ids := g.VertexIDs()
	h := make(degreeHeap, 0, len(ids))
	for _, id := range ids {
		v, _ := g.Vertex(id)
		h = append(h, degreeItem{id: id, degree: len(v.Neighbors)})
	}
	heap.Init(&h)

	forward := make([]string, 0, len(ids))
	for h.Len() > 0 {
		item := heap.Pop(&h).(degreeItem)
		forward = append(forward, item.id)
	}

	return Order{forward: forward}
}

// Custom validates perm against g's vertex set and returns it as an Order.
func Custom(g *vcgraph.Graph, perm []string) (Order, error) {
	ids := g.VertexIDs()
	if len(perm) != len(ids) {
		return Order{}, ErrUnknownVertex
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(perm))
	for _, id := range perm {
		if _, ok := want[id]; !ok {
			return Order{}, ErrUnknownVertex
		}
		if _, dup := seen[id]; dup {
			return Order{}, ErrUnknownVertex
		}
		seen[id] = struct{}{}
	}

	return Order{forward: append([]string(nil), perm...)}, nil
}
