// Package pareto implements Pareto Set: an unordered, dominance-free
// collection of vector.Vector values, plus the set-level operations that
// Mini-Bucket Elimination and Branch-and-Bound are built from.
//
// What & Why
//
//   - A Pareto Set represents "all the non-dominated ways to pay" for a
//     partial or full cover. Cost Tables (package table) store one Pareto
//     Set per subset-mask key; Mini-Bucket Elimination sums and eliminates
//     them; Branch-and-Bound compares them.
//
// Operations
//
//   - Union (∪): dominance-filtered. Eagerly removes anything strictly
//     dominated by another element of the combined set; equal points keep
//     exactly one representative, chosen deterministically by sorted
//     provenance (see vector.Vector.Hash) rather than map iteration order.
//   - Add (Minkowski sum, +): { p+q : p ∈ P, q ∈ Q }. Deliberately does NOT
//     filter — intermediate sums inside Cost Table addition can be large
//     and are filtered only when it matters (at eliminations and at the
//     final incumbent update), matching spec.md §4.B.
//   - LessEq / Less: the strong "∀p∈P,∀q∈Q: p≤q" order used only for
//     Branch-and-Bound pruning. False negatives (failing to prune a
//     dominated branch) are safe; false positives are not, so this order is
//     intentionally conservative and must not be used anywhere costs are
//     compared for correctness rather than pruning.
//
// See: SPEC_FULL.md §4.B, spec.md DESIGN NOTES ("Dominance order on
// sets-of-vectors").
package pareto
