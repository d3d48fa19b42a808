// Package core provides the two data structures every solver in maxmatch
// is built on: an immutable Graph and a mutable Matching.
//
// # Graph
//
// A Graph is a fixed, undirected, unweighted adjacency structure over
// integer vertices 0..n-1. Construction canonicalizes the edge list:
// self-loops are silently dropped, parallel edges are deduplicated, and
// every neighbor list is sorted ascending. After NewGraph returns, the
// structure never changes, which gives all consumers two guarantees:
//
//   - symmetry: u ∈ Neighbors(v) ⇔ v ∈ Neighbors(u)
//   - determinism: iterating Neighbors(v) always yields the same order,
//     so algorithms that process neighbors in slice order are reproducible
//     bit-for-bit across runs
//
// # Matching
//
// A Matching is a partial involution mate: vertex → partner (or NIL).
// Match(u, v) keeps the involution intact by unlinking any previous
// partners of u and v before pairing them. The structure performs no
// validation against a Graph — checking that every matched pair is a real
// edge is the job of matching.Validate, run once after a solve.
//
// # Errors
//
//	ErrBadOrder    - negative vertex count passed to NewGraph
//	ErrVertexRange - an edge endpoint outside [0, n)
//
// Both are sentinel errors suitable for errors.Is.
package core
