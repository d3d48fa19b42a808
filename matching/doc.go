// Package matching computes maximum-cardinality matchings in general
// (possibly non-bipartite) undirected graphs represented by *core.Graph.
// Odd alternating cycles ("blossoms") are what separate the general
// problem from the bipartite one: both solvers here detect and contract
// them, so neither under-counts on graphs with odd cycles.
//
// The two entry points share one signature and must always agree on the
// matching size (though not necessarily on the edge set):
//
//   - Phased
//
//   - Method: alternating forest grown from every free vertex at once;
//     edges processed in non-decreasing distance order through an explicit
//     level queue; blossoms contracted virtually via a union-find base
//     registry with bridge metadata; every vertex-disjoint augmenting
//     path found at the terminal distance is applied in the same phase.
//
//   - Time:   O(√V) phases of O(V + E·α(V)) each on typical inputs.
//
//   - Memory: O(V + E) for the forest, registry and level queue.
//
//   - The production engine; use it unless you are cross-checking.
//
//   - SinglePath
//
//   - Method: one alternating tree per search, rooted at a single free
//     vertex; the first augmenting path found is applied immediately;
//     blossom contraction re-threads parent pointers around the cycle.
//
//   - Time:   O(V³·α(V)) worst case (one search per augmentation).
//
//   - Memory: O(V) per search.
//
//   - The strict specialization of the same state machine: a phase that
//     processes exactly one free vertex. Kept as the agreement oracle.
//
// # Contract
//
// Both solvers are pure, single-shot batch computations: the graph is
// read-only, all working state is owned by the solver, and there is no
// I/O, locking or suspension point inside a solve. There is deliberately
// no context.Context parameter — a solve runs to completion and callers
// impose timeouts externally. Results are deterministic: the same graph
// yields a bitwise-identical matching on every run.
//
// # Bootstrapping
//
// Before the exact search runs, an optional greedy pass seeds the
// matching to cut the phase count: BootstrapIndex pairs each free vertex
// with its lowest-indexed free neighbor, BootstrapDegree works in
// ascending-degree order, BootstrapNone skips the pass. The choice never
// affects the final size, only how much work the exact phases do.
//
// # Validation
//
// Solvers do not assert their own invariants mid-run; that cost is paid
// once, after the fact, by Validate, which checks that every matched pair
// is a real edge and that the mate relation is an involution. A failed
// report indicates an engine defect, never an input problem.
//
// # Errors
//
//	ErrGraphNil        - nil graph passed to a solver.
//	ErrOptionViolation - an invalid Option value was supplied.
//
// See each function's doc for the step-by-step algorithm breakdown.
package matching
