// Package bnb implements Pareto Branch-and-Bound: a depth-first search over
// the 0/1 inclusion of each vertex, in forward elimination order, pruned by
// the Mini-Bucket Engine's lower-bound Pareto Set.
//
// What & Why
//
//   - Solve seeds the incumbent with a single heuristic-greedy descent
//     before DFS begins: it follows mbe.Engine.CostAt's recommended next
//     value at every step down to a leaf and evaluates that leaf exactly
//     (spec.md §4.G "State"). A real bound from the first prune onward
//     beats starting from an empty Set that cannot prune anything.
//   - Search is a dedicated engine struct holding all search state
//     (assignment, incumbent, step counter, deadline), the same shape as
//     the teacher's bbEngine: explicit fields instead of closures keep the
//     hot DFS loop's dependencies visible and the struct easy to test in
//     isolation.
//   - Children are tried 0 (excluded) then 1 (included) at every node —
//     deterministic branching, no tour-style neighbor ordering needed
//     since there is nothing analogous to edge weight here; the Pareto
//     lower bound from mbe.Engine.CostAt does the pruning work instead.
//   - Pruning compares the incumbent against the lower bound using
//     pareto.Set's strong conservative all-vs-all order: a branch is
//     pruned only when the incumbent is provably no worse anywhere in the
//     lower bound's range, so a wrong prune (false positive) can never
//     happen — at worst the search does unnecessary work (spec.md §4.G).
//   - There is no hard failure mode: an infeasible instance simply returns
//     an empty Pareto Set, never an error (the only error path is context
//     cancellation).
//
// Progress & cancellation
//
//	OnProgress fires at ≥1% granularity of the current prefix's position in
//	the search tree (interpreted as a binary fraction, matching the
//	left-to-right 0-then-1 branch order). context.Context is polled on node
//	entry every 4096 node visits, the same cadence as the teacher's
//	deadlineCheck; in addition, ctx.Err() is read after each child branch
//	returns, so a cancellation unwinds the whole DFS.
//
// See: SPEC_FULL.md §4.G.
package bnb
