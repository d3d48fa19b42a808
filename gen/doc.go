// Package gen produces deterministic edge lists for fixtures and
// benchmarks. Every generator returns raw [][2]int edges ready for
// core.NewGraph; none touches global randomness — stochastic topologies
// take an explicit seed, and equal arguments always yield byte-identical
// output, so tests built on gen inherit the engine's end-to-end
// determinism guarantee.
//
// Topologies:
//
//	Cycle(n)                      - n-cycle; odd n is the minimal blossom family
//	Complete(n)                   - K_n
//	Petersen()                    - the 10-vertex, 15-edge, 3-regular classic
//	RandomSparse(n, m, seed)      - m distinct random edges on n vertices
//	RandomBipartite(nl, nr, m, s) - m distinct random left-right edges
//
// RandomBipartite exists because a bipartite input is the cheapest way
// to pin the general solvers against a known optimum structure: any
// correct general matcher must do at least as well there.
package gen
