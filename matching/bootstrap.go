package matching

import (
	"sort"

	"github.com/katalvlaran/maxmatch/core"
)

// bootstrap seeds m with a heuristic matching before the exact search
// runs. Every mode produces a valid (possibly empty) matching and always
// terminates; correctness of the phases that follow never depends on the
// seed, only their count does.
func bootstrap(g *core.Graph, m *core.Matching, mode BootstrapMode) {
	switch mode {
	case BootstrapIndex:
		bootstrapIndex(g, m)
	case BootstrapDegree:
		bootstrapDegree(g, m)
	}
}

// bootstrapIndex pairs each free vertex, in natural index order, with its
// lowest-indexed still-free neighbor. Neighbor lists are sorted, so the
// first free hit is the lowest. O(V + E).
func bootstrapIndex(g *core.Graph, m *core.Matching) {
	for v := 0; v < g.VertexCount(); v++ {
		if !m.IsFree(v) {
			continue
		}
		for _, u := range g.Neighbors(v) {
			if m.IsFree(u) {
				m.Match(v, u)
				break
			}
		}
	}
}

// bootstrapDegree pairs free vertices in ascending-degree order (index
// breaks ties) with their lowest-degree still-free neighbor. Matching
// scarce vertices first tends to leave fewer stranded free vertices on
// skewed degree distributions. O(V·log V + Σ deg).
func bootstrapDegree(g *core.Graph, m *core.Matching) {
	n := g.VertexCount()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) < g.Degree(order[j])
	})

	for _, v := range order {
		if !m.IsFree(v) {
			continue
		}
		best := core.NIL
		for _, u := range g.Neighbors(v) {
			if !m.IsFree(u) {
				continue
			}
			if best == core.NIL || g.Degree(u) < g.Degree(best) {
				best = u
			}
		}
		if best != core.NIL {
			m.Match(v, best)
		}
	}
}
