package mbe

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/movc/ordering"
	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vcgraph"
)

// Build compiles g into an Engine: computeBuckets deposits every edge's
// elementary constraint, then computeHeuristics partitions each vertex's
// pooled dependencies into mini-buckets of width at most maxVars, splits
// the vertex's cost across them, and deposits the reduced, eliminated
// tables downstream (spec.md §4.F.2). g is never mutated: Build works
// against independent clones.
func Build(g *vcgraph.Graph, order ordering.Order, maxVars int, opts ...Option) (*Engine, error) {
	if maxVars < 2 {
		return nil, ErrMaxVarsTooSmall
	}

	cfg := engineConfig{cacheCapacity: defaultCacheCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	forward := order.Forward()
	elim := order.Reversed()

	e := &Engine{
		original:  g.Clone(),
		working:   g.Clone(),
		order:     order,
		forward:   forward,
		elim:      elim,
		buckets:   make(map[string]*Bucket, len(elim)),
		costCache: newLRUCache(cfg.cacheCapacity),
		nextCache: newLRUCache(cfg.cacheCapacity),
	}
	for _, id := range elim {
		e.buckets[id] = &Bucket{}
	}

	e.computeBuckets()
	if err := e.computeHeuristics(maxVars); err != nil {
		return nil, err
	}

	return e, nil
}

// computeBuckets iterates the elimination order and, for each vertex x,
// deposits the elementary constraint for every neighbor not yet visited
// into bucket(x) (spec.md §4.F.1): each edge is thereby assigned exactly
// once, to whichever endpoint is eliminated first.
func (e *Engine) computeBuckets() {
	processed := make(map[string]bool, len(e.elim))
	for _, x := range e.elim {
		xv, _ := e.working.Vertex(x)

		pending := make([]string, 0, len(xv.Neighbors))
		for y := range xv.Neighbors {
			if !processed[y] {
				pending = append(pending, y)
			}
		}
		sort.Strings(pending) // deterministic deposit order within a bucket

		for _, y := range pending {
			yv, _ := e.working.Vertex(y)
			e.buckets[x].Costs = append(e.buckets[x].Costs, table.ElementaryEdge(xv, yv))
		}
		processed[x] = true
	}
}

// computeHeuristics walks the elimination order a second time. For each
// vertex x with a non-empty pool (Costs ∪ Heuristics), it partitions the
// pool into width-bounded mini-buckets, splits x's cost across however
// many mini-buckets resulted, joins and eliminates x out of each (a
// mini-bucket whose scope is x alone is skipped, since no vertex would
// survive the elimination), and deposits the reduced table into the
// bucket of the earliest-surviving
// vertex found by scanning the remaining elimination order from the
// current position onward (spec.md §4.F.2, DESIGN.md's resolution of the
// heuristic-deposit Open Question).
func (e *Engine) computeHeuristics(maxVars int) error {
	for i, x := range e.elim {
		xv, _ := e.working.Vertex(x)
		b := e.buckets[x]

		pool := make([]*table.Table, 0, len(b.Costs)+len(b.Heuristics))
		pool = append(pool, b.Costs...)
		pool = append(pool, b.Heuristics...)
		if len(pool) == 0 {
			continue // isolated vertex at this point in elimination: nothing to pool
		}

		groups := partitionMiniBuckets(pool, maxVars)
		xv.Split(len(groups))

		for _, grp := range groups {
			vs := unionScope(e.working, grp)
			if len(vs) < 2 {
				continue // scope is x alone: eliminating x would leave nothing to deposit
			}

			joined := table.New(vs)
			for _, t := range grp {
				if err := table.Add(joined, t); err != nil {
					return err
				}
			}
			reduced := table.Eliminate(joined, xv)

			target := depositTarget(e.elim[i+1:], reduced)
			if target == "" {
				continue // nothing downstream carries this reduced table further
			}
			e.buckets[target].Heuristics = append(e.buckets[target].Heuristics, reduced)
		}
	}

	return nil
}

// unionScope collects the sorted, deduplicated vertex set spanned by grp's
// tables and resolves it against g.
func unionScope(g *vcgraph.Graph, grp []*table.Table) []*vcgraph.Vertex {
	seen := map[string]struct{}{}
	for _, t := range grp {
		for _, v := range t.Scope {
			seen[v.ID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	vs := make([]*vcgraph.Vertex, len(ids))
	for i, id := range ids {
		v, _ := g.Vertex(id)
		vs[i] = v
	}

	return vs
}

// depositTarget scans remaining (the tail of the elimination order after
// the vertex just eliminated) for the first ID present in reduced's scope:
// that is the vertex whose bucket should receive this heuristic.
func depositTarget(remaining []string, reduced *table.Table) string {
	in := make(map[string]struct{}, reduced.Width())
	for _, v := range reduced.Scope {
		in[v.ID] = struct{}{}
	}
	for _, z := range remaining {
		if _, ok := in[z]; ok {
			return z
		}
	}

	return ""
}

// scopeKey is a deterministic tie-break signature for a table's scope.
func scopeKey(t *table.Table) string {
	ids := make([]string, len(t.Scope))
	for i, v := range t.Scope {
		ids[i] = v.ID
	}
	sort.Strings(ids)

	return strings.Join(ids, ",")
}

// partitionMiniBuckets packs pool into width-bounded groups (spec.md
// §4.F.2.b): each group is seeded with the smallest-scope unassigned
// table, then greedily grown by the remaining table that shares the most
// variables with the current scope per new variable it would introduce —
// the common/new ratio, matching choose_next_function in
// _examples/original_source/minibucket/heuristics.py exactly — subject to
// the union never exceeding maxVars; a table contributing zero new
// variables is always accepted outright. Ties are broken by scopeKey so
// the partition is deterministic for a fixed pool and width.
func partitionMiniBuckets(pool []*table.Table, maxVars int) [][]*table.Table {
	remaining := append([]*table.Table(nil), pool...)
	sort.SliceStable(remaining, func(i, j int) bool {
		if len(remaining[i].Scope) != len(remaining[j].Scope) {
			return len(remaining[i].Scope) < len(remaining[j].Scope)
		}

		return scopeKey(remaining[i]) < scopeKey(remaining[j])
	})

	var groups [][]*table.Table
	for len(remaining) > 0 {
		seed := remaining[0]
		remaining = remaining[1:]

		scope := map[string]struct{}{}
		for _, v := range seed.Scope {
			scope[v.ID] = struct{}{}
		}
		group := []*table.Table{seed}

		for {
			idx := chooseNext(scope, remaining, maxVars)
			if idx == -1 {
				break
			}
			t := remaining[idx]
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			for _, v := range t.Scope {
				scope[v.ID] = struct{}{}
			}
			group = append(group, t)
		}
		groups = append(groups, group)
	}

	return groups
}

// chooseNext picks the index within remaining that best extends scope, per
// spec.md §4.F.2.b / choose_next_function: a candidate introducing zero new
// variables is returned immediately (it is always a free addition); among
// candidates that fit within maxVars, the one maximizing
// common-variables/new-variables wins; -1 means nothing in remaining fits.
func chooseNext(scope map[string]struct{}, remaining []*table.Table, maxVars int) int {
	budget := maxVars - len(scope)
	best, bestValue := -1, math.Inf(-1)
	for i, t := range remaining {
		common, newVars := 0, 0
		for _, v := range t.Scope {
			if _, ok := scope[v.ID]; ok {
				common++
			} else {
				newVars++
			}
		}
		if newVars == 0 {
			return i
		}
		if newVars > budget {
			continue
		}
		value := float64(common) / float64(newVars)
		if value > bestValue {
			best, bestValue = i, value
		}
	}

	return best
}
