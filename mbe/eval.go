package mbe

import (
	"github.com/katalvlaran/movc/pareto"
	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vector"
)

// costResult is what costCache stores: the cumulative lower-bound (or
// exact) Pareto Set together with the recommended next value.
type costResult struct {
	set       pareto.Set
	recommend bool
}

// CostAt evaluates a forward-order assignment prefix (spec.md §4.F
// Evaluation API). If prefix covers every vertex, it returns the exact
// cost against the original, unsplit graph: an infinite singleton if any
// edge is left uncovered, otherwise the sum of included vertices' original
// costs. Otherwise it speculatively extends the prefix by the next
// forward-order vertex in both directions, sums each extension's bucket
// contributions (skipping any heuristic already accounted for directly),
// and returns the dominance-filtered union of the two plus a recommended
// next value: true if some surviving point's provenance includes the
// speculative vertex.
func (e *Engine) CostAt(prefix []bool) (pareto.Set, bool) {
	if len(prefix) == len(e.forward) {
		return e.exactCost(prefix), false
	}

	key := encodePrefix(prefix)
	if cached, ok := e.costCache.get(key); ok {
		r := cached.(costResult)

		return r.set, r.recommend
	}

	zero := e.lowerBoundSum(prefix, false)
	one := e.lowerBoundSum(prefix, true)
	union := zero.Union(one)

	x := e.forward[len(prefix)]
	recommend := false
	for _, p := range union.Points() {
		if _, ok := p.Includes()[x]; ok {
			recommend = true

			break
		}
	}

	e.costCache.put(key, costResult{set: union, recommend: recommend})

	return union, recommend
}

// BestNext is the cheaper, independent next-value oracle (spec.md §4.F):
// it sums only the speculative vertex's own bucket for each extension
// (ignoring every other already-decided vertex's bucket) and majority-
// votes on which extension contributes more than half of the dominance-
// filtered union's points. Ties favor 0 (exclude), the least committal
// choice.
func (e *Engine) BestNext(prefix []bool) bool {
	x := e.forward[len(prefix)]

	key := encodePrefix(prefix)
	if cached, ok := e.nextCache.get(key); ok {
		return cached.(bool)
	}

	zero := e.bucketOnlySum(prefix, x, false)
	one := e.bucketOnlySum(prefix, x, true)
	union := zero.Union(one)

	countZero, countOne := 0, 0
	for _, p := range union.Points() {
		if containsPoint(zero, p) {
			countZero++
		}
		if containsPoint(one, p) {
			countOne++
		}
	}

	result := countOne > countZero
	e.nextCache.put(key, result)

	return result
}

// exactCost checks full coverage against e.original and, if covered, sums
// the included vertices' original (unsplit) costs.
func (e *Engine) exactCost(prefix []bool) pareto.Set {
	dims := e.original.Dims()
	assignment := make(map[string]bool, len(prefix))
	for i, id := range e.forward {
		assignment[id] = prefix[i]
	}

	for _, id := range e.forward {
		v, _ := e.original.Vertex(id)
		if assignment[id] {
			continue
		}
		for nb := range v.Neighbors {
			if !assignment[nb] {
				return pareto.Singleton(vector.Inf(dims))
			}
		}
	}

	sum := vector.Zero(dims)
	for _, id := range e.forward {
		if !assignment[id] {
			continue
		}
		v, _ := e.original.Vertex(id)
		var err error
		sum, err = sum.Add(v.Cost)
		if err != nil {
			return pareto.Singleton(vector.Inf(dims))
		}
	}

	return pareto.Singleton(sum)
}

// lowerBoundSum sums, over every vertex in forward[0:len(prefix)+1]
// (prefix plus the speculative extension), that vertex's bucket
// contributions: every elementary cost, and every heuristic whose From
// vertex is not itself already decided within that same span.
func (e *Engine) lowerBoundSum(prefix []bool, ext bool) pareto.Set {
	l := len(prefix)
	x := e.forward[l]

	assignment := make(map[string]bool, l+1)
	for i, id := range e.forward[:l] {
		assignment[id] = prefix[i]
	}
	assignment[x] = ext

	total := pareto.Singleton(vector.Zero(e.original.Dims()))
	for i := 0; i <= l; i++ {
		total = e.sumBucket(total, e.buckets[e.forward[i]], assignment)
	}

	return total
}

// bucketOnlySum sums only x's own bucket contributions for a single
// speculative extension, against the assignment extended with prefix.
func (e *Engine) bucketOnlySum(prefix []bool, x string, ext bool) pareto.Set {
	assignment := make(map[string]bool, len(prefix)+1)
	for i, id := range e.forward[:len(prefix)] {
		assignment[id] = prefix[i]
	}
	assignment[x] = ext

	total := pareto.Singleton(vector.Zero(e.original.Dims()))

	return e.sumBucket(total, e.buckets[x], assignment)
}

func (e *Engine) sumBucket(total pareto.Set, b *Bucket, assignment map[string]bool) pareto.Set {
	for _, t := range b.Costs {
		total = addTable(total, t, assignment)
	}
	for _, t := range b.Heuristics {
		if t.From != nil {
			if _, already := assignment[t.From.ID]; already {
				continue
			}
		}
		total = addTable(total, t, assignment)
	}

	return total
}

func addTable(total pareto.Set, t *table.Table, assignment map[string]bool) pareto.Set {
	key, ok := t.KeyFor(assignment)
	if !ok {
		return total
	}
	sum, err := total.Add(t.At(key))
	if err != nil {
		return total
	}

	return sum
}

func containsPoint(s pareto.Set, p vector.Vector) bool {
	for _, q := range s.Points() {
		if p.Equal(q) {
			return true
		}
	}

	return false
}

func encodePrefix(prefix []bool) string {
	b := make([]byte, len(prefix))
	for i, v := range prefix {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}
