// Package vcgraph implements Graph Model: vertices carrying a vector.Vector
// cost and an undirected neighbor set, plus the line-oriented instance
// parser described in spec.md §6.
//
// What & Why
//
//   - Multi-objective vertex cover operates on an undirected graph whose
//     vertices (not edges) carry cost. vcgraph.Graph is deliberately
//     simpler than the teacher's core.Graph (no directed/mixed-edge modes,
//     no edge weights, no multigraph option) because none of that richness
//     is needed here — every edge is a hard 0/1 coverage constraint.
//   - Two generations of the graph are kept alive through a solve: the
//     Original snapshot (immutable, used for full-assignment feasibility
//     checks) and the live working graph, whose vertex costs are rescaled
//     in place by Split as Mini-Bucket Elimination proceeds.
//
// Concurrency
//
//	Graph guards vertices with a sync.RWMutex, the same per-collection
//	locking discipline core.Graph uses, even though a single solve only
//	ever touches the graph from one goroutine — this keeps the type safe
//	to inspect from an external progress reporter while Branch-and-Bound
//	runs (see package bnb).
//
// Instance format (spec.md §6)
//
//	n <id> <v1> ... <vD>   declare a vertex with a D-dimensional cost
//	e <id1> <id2>          declare an undirected edge (both endpoints must
//	                       already be declared)
//	g <numV> <numE>        optional summary record, ignored by Parse
//	(blank lines are ignored)
//
// Errors
//
//   - ErrNilVertex, ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed: structural sentinels,
//     named after and grounded on core's equivalents.
//   - ParseError: malformed instance line, reported with its 1-based line
//     number, per spec.md §7 InstanceParse.
//
// See: SPEC_FULL.md §4.C.
package vcgraph
