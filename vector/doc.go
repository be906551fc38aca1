// Package vector implements Cost Vector: a fixed-arity tuple of non-negative
// reals carrying a provenance set of the vertex IDs that were summed to
// produce it.
//
// What & Why
//
//   - A Cost Vector is the unit of currency for multi-objective vertex
//     cover: every vertex contributes one, and every partial or full cover
//     is scored by summing the vectors of its included vertices.
//   - Provenance turns addition into an idempotent, set-union operation
//     instead of plain tuple addition: adding two vectors that both already
//     include vertex v must not double-count v's cost. This is essential
//     once Mini-Bucket Elimination starts summing overlapping mini-bucket
//     contributions (see package mbe).
//
// Determinism
//
//	Hash combines the rounded tuple with a sorted-provenance hash so that
//	two Vectors with the same components and the same provenance set hash
//	identically regardless of construction order.
//
// Errors
//
//   - ErrDimMismatch   operands have different arity.
//   - ErrBadDims       non-positive dimension requested at construction.
//
// See: SPEC_FULL.md §4.A.
package vector
