package matching

import "github.com/katalvlaran/maxmatch/core"

// registry is the blossom/base bookkeeping for one phase: a union-find
// over vertex identity mapping each vertex to the representative ("base")
// of the outermost blossom currently containing it, plus the bridge edge
// recorded on every ODD vertex absorbed by a contraction.
//
// Contraction is purely virtual — the graph is never rewritten. Within a
// phase the relation only ever coarsens (merges); reset() restores the
// identity mapping at the next phase boundary.
type registry struct {
	base      []int // union-find parent; a root represents its blossom
	bridgeSrc []int // non-matching edge (src, tgt) that closed the blossom,
	bridgeTgt []int // recorded on each absorbed ODD vertex, NIL elsewhere
}

// newRegistry allocates a registry for n vertices in the reset state.
func newRegistry(n int) *registry {
	r := &registry{
		base:      make([]int, n),
		bridgeSrc: make([]int, n),
		bridgeTgt: make([]int, n),
	}
	r.reset()

	return r
}

// reset restores every vertex to its own base and clears all bridges.
// Called at each phase boundary; phase-scoped state never leaks across.
func (r *registry) reset() {
	for i := range r.base {
		r.base[i] = i
		r.bridgeSrc[i] = core.NIL
		r.bridgeTgt[i] = core.NIL
	}
}

// find returns the base of v, compressing the path by halving as it
// walks. Idempotent on fixed points: find(find(v)) == find(v).
func (r *registry) find(v int) int {
	for r.base[v] != v {
		r.base[v] = r.base[r.base[v]]
		v = r.base[v]
	}

	return v
}

// mergeInto folds v's current blossom into the blossom rooted at b.
// b must already be (or become) its own root; merging never splits.
func (r *registry) mergeInto(v, b int) {
	r.base[r.find(v)] = b
	r.base[b] = b
}

// setBridge records the non-matching edge (s, t) whose discovery closed
// the blossom that absorbed ODD vertex v. Consumed later by the
// augmentor to unfold the real detour through the cycle.
func (r *registry) setBridge(v, s, t int) {
	r.bridgeSrc[v] = s
	r.bridgeTgt[v] = t
}

// bridge returns the recorded bridge of v; (NIL, NIL) when v was never
// absorbed as an ODD blossom vertex.
func (r *registry) bridge(v int) (s, t int) {
	return r.bridgeSrc[v], r.bridgeTgt[v]
}
