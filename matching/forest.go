package matching

import "github.com/katalvlaran/maxmatch/core"

// Per-vertex labels, valid only within one phase. EVEN vertices sit at
// even alternating-path distance from some free root, ODD at odd
// distance. A vertex absorbed into a blossom keeps its own label but is
// effectively even through its base, which is always EVEN-labeled.
const (
	unlabeled uint8 = iota
	even
	odd
)

// halfEdge is one scan item: the edge (from, to) reached from the EVEN
// side `from`. The same undirected edge may be queued from both sides;
// the pop path re-validates labels, so stale items are harmless.
type halfEdge struct {
	from, to int
}

// phase owns every piece of state scoped to a single forest-growth pass:
// labels, parent pointers, the distance-indexed level queue, and the
// opportunities harvested at the terminal distance. A fresh phase value
// is built per pass; only the registry persists (reset) between passes.
type phase struct {
	g   *core.Graph
	m   *core.Matching
	reg *registry

	label  []uint8
	parent []int

	// queue[d] holds scan items whose processing distance is d. Items for
	// endpoints not yet labeled are deferred one slot and re-validated on
	// pop, which implements the "hanging edge" retry.
	queue   [][]halfEdge
	pending int

	// LCA walk epoch tags: a vertex tagged with the current epoch on one
	// chain has been visited by that chain during this LCA query.
	lcaTagA  []int
	lcaTagB  []int
	lcaEpoch int

	// opps are the augmenting opportunities recorded at the distance the
	// phase terminated on: edges joining EVEN vertices of distinct trees.
	opps []halfEdge
}

// newPhase builds a fresh phase over g and m, resetting the shared
// registry. All per-vertex state starts cleared.
func newPhase(g *core.Graph, m *core.Matching, reg *registry) *phase {
	n := g.VertexCount()
	reg.reset()

	p := &phase{
		g:       g,
		m:       m,
		reg:     reg,
		label:   make([]uint8, n),
		parent:  make([]int, n),
		queue:   make([][]halfEdge, n+2),
		lcaTagA: make([]int, n),
		lcaTagB: make([]int, n),
	}
	for i := range p.parent {
		p.parent[i] = core.NIL
	}

	return p
}

// grow runs one full forest-growth pass.
//
// Steps:
//  1. Root every free vertex as EVEN and scan its neighborhood into the
//     level queue (distance 0 for EVEN-EVEN contacts, 1 for deferred).
//  2. Drain queue[d] for d = 0, 1, 2, ...; each item either extends the
//     forest (ODD/EVEN grow step), contracts a blossom (EVEN-EVEN with a
//     common ancestor), or records an augmenting opportunity (EVEN-EVEN
//     across two trees).
//  3. Stop at the first distance that produced opportunities — they all
//     correspond to shortest augmenting paths — or when no queued work
//     remains anywhere (the matching is maximum).
//
// Returns true when at least one opportunity was recorded. Monotonically
// non-decreasing distance processing is a correctness requirement, not a
// performance choice: it guarantees the harvested opportunities are
// shortest, which is what bounds the phase count.
func (p *phase) grow() bool {
	// 1) Seed the forest with every free vertex as its own EVEN root.
	n := p.g.VertexCount()
	for v := 0; v < n; v++ {
		if p.m.IsFree(v) {
			p.label[v] = even
			p.scanFrom(v, 0)
		}
	}

	// 2+3) Drain levels in non-decreasing distance order.
	for d := 0; d <= n; d++ {
		if p.pending == 0 {
			break
		}
		for len(p.queue[d]) > 0 {
			last := len(p.queue[d]) - 1
			he := p.queue[d][last]
			p.queue[d] = p.queue[d][:last]
			p.pending--
			p.process(he, d)
		}
		if len(p.opps) > 0 {
			return true
		}
	}

	return false
}

// scanFrom queues every non-matching edge of the EVEN (or newly-even)
// vertex v for processing: contacts with an already-EVEN base belong to
// the current distance d, contacts with an unlabeled base are deferred
// to d+1, and ODD bases are never entered.
func (p *phase) scanFrom(v, d int) {
	mv := p.m.Mate(v)
	for _, w := range p.g.Neighbors(v) {
		if w == mv {
			continue
		}
		switch p.label[p.reg.find(w)] {
		case unlabeled:
			p.push(d+1, v, w)
		case even:
			p.push(d, v, w)
		}
	}
}

// push appends a scan item to the level queue slot d.
func (p *phase) push(d, from, to int) {
	p.queue[d] = append(p.queue[d], halfEdge{from: from, to: to})
	p.pending++
}

// process handles one scan item at distance d. Labels are re-validated
// here because they may have changed since the item was queued.
func (p *phase) process(he halfEdge, d int) {
	z, u := he.from, he.to
	bz, bu := p.reg.find(z), p.reg.find(u)

	// Orient the item so z is on an EVEN base; drop it if neither side is.
	if p.label[bz] != even {
		z, u = u, z
		bz, bu = bu, bz
	}
	if bz == bu || p.label[bz] != even {
		return // same blossom, or the item went stale
	}
	if u == p.m.Mate(z) || p.label[bu] == odd {
		return
	}

	if p.label[bu] == unlabeled {
		// Grow step: u becomes ODD, its partner becomes EVEN and scans on.
		mu := p.m.Mate(u)
		if mu == core.NIL {
			return // free vertices were rooted EVEN; nothing to grow
		}
		p.parent[u] = z
		p.parent[mu] = u
		p.label[u] = odd
		p.label[mu] = even
		p.scanFrom(mu, d)

		return
	}

	// EVEN meets EVEN: either both trees share an ancestor (blossom) or
	// the chains end at two distinct free roots (augmenting opportunity).
	if lca := p.lowestCommonAncestor(z, u); lca != core.NIL {
		p.shrink(lca, z, u, d)
		p.shrink(lca, u, z, d)
	} else {
		p.opps = append(p.opps, halfEdge{from: z, to: u})
	}
}

// lowestCommonAncestor walks the two base-level parent chains of u and v
// alternately, tagging each visited base with the current epoch, until
// one chain touches a base the other already tagged (the LCA) or both
// chains terminate at distinct roots (NIL: different trees).
//
// Alternating the walks keeps the cost proportional to the distance to
// the true LCA rather than to the full tree height.
func (p *phase) lowestCommonAncestor(u, v int) int {
	p.lcaEpoch++
	ep := p.lcaEpoch

	hx, hy := p.reg.find(u), p.reg.find(v)
	p.lcaTagA[hx] = ep
	p.lcaTagB[hy] = ep

	for {
		if p.lcaTagA[hy] == ep {
			return hy
		}
		if p.lcaTagB[hx] == ep {
			return hx
		}

		// A base is a root of its chain when it is free, or when the ODD
		// vertex above it was never given a parent.
		hxRoot := p.m.Mate(hx) == core.NIL || p.parent[p.m.Mate(hx)] == core.NIL
		hyRoot := p.m.Mate(hy) == core.NIL || p.parent[p.m.Mate(hy)] == core.NIL
		if hxRoot && hyRoot {
			return core.NIL
		}
		if !hxRoot {
			hx = p.reg.find(p.parent[p.m.Mate(hx)])
			p.lcaTagA[hx] = ep
		}
		if !hyRoot {
			hy = p.reg.find(p.parent[p.m.Mate(hy)])
			p.lcaTagB[hy] = ep
		}
	}
}

// shrink contracts one side of a freshly discovered blossom: every base
// on the chain from x up to the LCA b is merged into b, each absorbed
// ODD vertex records (x, y) as its bridge, and each vertex that just
// turned effectively even rescans its neighborhood at the current
// distance so the phase keeps growing through the contraction.
func (p *phase) shrink(b, x, y, d int) {
	v := p.reg.find(x)
	for v != b {
		p.reg.mergeInto(v, b)
		mv := p.m.Mate(v)
		p.reg.mergeInto(mv, b)
		p.reg.setBridge(mv, x, y)
		p.scanFrom(mv, d)
		v = p.reg.find(p.parent[mv])
	}
}
