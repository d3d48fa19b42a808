// Package maxmatch computes maximum-cardinality matchings in general
// (possibly non-bipartite) undirected graphs.
//
// 🚀 What is maxmatch?
//
//	A small, deterministic matching engine built from three layers:
//		• core/     — immutable integer-indexed graphs + mutable matching state
//		• matching/ — the solvers: a phased, blossom-aware alternating-forest
//		              engine and a single-path cross-check variant, plus greedy
//		              bootstrapping and a post-hoc validator
//		• graphio/  — plain-text edge-list loading and matching output
//
// ✨ Why choose maxmatch?
//
//   - Correct on odd cycles – blossoms are contracted virtually through a
//     union-find base registry, never by rewriting the graph
//   - Deterministic – identical input yields a bitwise-identical matching
//   - Pure computation – no locks, no I/O and no suspension points inside
//     a solve; callers own timeouts
//
// Supporting packages:
//
//	gen/         — deterministic topology generators for fixtures and benchmarks
//	cmd/maxmatch — command-line driver: load, solve, validate, report
//
// Quick ASCII example (a triangle — the smallest blossom):
//
//	    0───1
//	     ╲ ╱
//	      2
//
//	has maximum matching size 1, which the engine reports only after the
//	odd cycle is contracted and expanded correctly.
//
// Dive into each package's doc for the algorithmic details and pitfalls.
//
//	go get github.com/katalvlaran/maxmatch
package maxmatch
