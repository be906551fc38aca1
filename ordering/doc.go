// Package ordering produces a Variable Ordering: the vertex sequence Mini-
// Bucket Elimination eliminates in, reversed from the order the graph is
// presented in.
//
// What & Why
//
//   - MBE eliminates the LAST vertex of the forward order first (spec.md
//     §4.D: "the order is used reversed during elimination"). Ordering
//     quality controls both the induced width MBE sees and how tight its
//     heuristic ends up, so it is its own component rather than a detail
//     buried in mbe.Build.
//   - MinNeighbors (the default) sorts vertices by decreasing neighbor
//     count, the classic min-fill-adjacent heuristic, grounded on
//     tsp/bb.go's precomputed neighborOrder and prim_kruskal's heap-backed
//     candidate selection.
//   - Custom lets a caller supply an explicit permutation (e.g. read from a
//     config file), validated to be exactly the graph's vertex set.
//
// Determinism
//
//	Ties in MinNeighbors are broken by ascending vertex ID so a given graph
//	always yields the same ordering (spec.md §5 "Idempotence").
//
// See: SPEC_FULL.md §4.D.
package ordering
