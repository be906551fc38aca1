// Package mbe implements the Mini-Bucket Engine: it compiles a vcgraph.Graph
// into a directed chain of per-vertex buckets of table.Table values, splits
// oversized pooled scopes under a bounded-width constraint, and produces
// monotone lower-bound heuristics over Pareto Sets that package bnb
// consumes for dominance-based pruning.
//
// What & Why
//
//   - Build runs the two-pass construction from spec.md §4.F:
//     computeBuckets lays every edge's elementary constraint into the
//     bucket of whichever endpoint is eliminated first; computeHeuristics
//     then walks the elimination order again, partitioning each vertex's
//     pooled dependencies into width-bounded mini-buckets, splitting the
//     vertex's cost across them, and depositing the eliminated, reduced
//     tables downstream.
//   - CostAt and BestNext are the two evaluation APIs Branch-and-Bound (and,
//     in principle, a genetic search) query at every node: CostAt produces
//     a cumulative lower-bound Pareto Set (or the exact cost at a full
//     assignment), BestNext is an independent, cheaper next-value oracle
//     that only looks at the current vertex's own bucket.
//
// Determinism
//
//	Mini-bucket partitioning ties are broken by scope width then by sorted
//	vertex IDs, so Build is deterministic for a fixed ordering and width
//	(spec.md §5 "Idempotence", §8 property 5).
//
// Bounded caches
//
//	CostAt/BestNext memoize on the assignment prefix using a small
//	capacity-bounded LRU (spec.md §5, ~3e5 entries, evicting
//	least-recently-used), grounded on the teacher/pack's hand-rolled
//	bounded-collection style rather than an external cache dependency (see
//	DESIGN.md).
//
// See: SPEC_FULL.md §4.F.
package mbe
