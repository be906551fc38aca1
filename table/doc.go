// Package table implements Cost Table: a mapping from a subset-mask over
// an ordered vertex scope to a Pareto Set, the data structure Mini-Bucket
// Elimination builds, merges, and reduces.
//
// What & Why
//
//   - A Table's Body is indexed by an integer key in [0, 2^|Scope|): bit i
//     of the key encodes whether Scope[i] is included in the cover. This is
//     the spec's explicit redesign of the source's "sentinel-polluted
//     mapping" (spec.md DESIGN NOTES, "Dynamic table keying") — scope,
//     from-tag, and body are three separate fields, and Body is a plain
//     []pareto.Set indexed by key rather than a map, the same flat-array-
//     over-map preference the teacher's matrix.Dense uses for its row-major
//     buffer.
//   - ElementaryEdge builds the hard 0/1 coverage constraint for one edge.
//   - Add performs an in-place Minkowski merge of a smaller table into a
//     larger one, used when pooling a bucket's dependencies.
//   - Eliminate performs the min-marginalization that removes a vertex from
//     a table's scope, producing the heuristic tables that Branch-and-Bound
//     consumes as lower bounds.
//
// Invariants enforced here (spec.md §3):
//   - Every Body entry is a non-empty Pareto Set. Entries built by New,
//     ElementaryEdge and Eliminate are dominance-free; Add stores unfiltered
//     Minkowski sums, so its entries may hold dominated points.
//   - Eliminate never leaves the eliminated vertex in the reduced scope.
//   - Eliminating a scope of size 1 panics (ErrEliminateSingleton): nothing
//     would remain to carry the heuristic, and the engine must never
//     request it (spec.md §4.E edge case).
//
// See: SPEC_FULL.md §4.E.
package table
