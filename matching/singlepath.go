package matching

import "github.com/katalvlaran/maxmatch/core"

// SinglePath computes a maximum-cardinality matching of g with the
// single-path specialization of the alternating-forest solver: each
// search roots one tree at one free vertex and stops at the first
// augmenting path, so every productive search is its own phase.
//
// Steps:
//  1. Resolve options; reject a nil graph or an invalid option (O(1)).
//  2. Greedy-bootstrap the matching per opts (O(V + E)).
//  3. For every vertex in index order, if still free, run one tree
//     search (see searcher.findPath). A found path is flipped at once.
//     One pass suffices: a free vertex with no augmenting path now can
//     never gain one from later augmentations.
//
// Blossoms are contracted by rebasing the whole cycle onto its lowest
// common ancestor and re-threading parent pointers along both cycle
// arcs, so the final parent-chain walk already encodes the unfolded
// path — no bridge metadata is needed in this variant.
//
// Complexity:
//
//	Time:   O(V·E·α(V)) per augmentation, O(V²·E) worst case overall.
//	Memory: O(V) per search.
//
// SinglePath and Phased must agree on the matching size for every input;
// they are kept side by side exactly so tests can cross-check them.
func SinglePath(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate input and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	m := core.NewMatching(n)

	// 2) Optional greedy seed.
	bootstrap(g, m, o.Bootstrap)

	res := &Result{Matching: m}
	s := newSearcher(g, m)

	// 3) One search per still-free vertex.
	for v := 0; v < n; v++ {
		if !m.IsFree(v) {
			continue
		}
		res.Phases++
		if end := s.findPath(v); end != core.NIL {
			s.flip(end)
			res.Augmentations++
			o.OnPhase(res.Phases, m.Size())
		}
	}

	return res, nil
}

// searcher carries the per-search state of the single-path variant. The
// slices are allocated once and rewound before each search.
type searcher struct {
	g *core.Graph
	m *core.Matching

	parent []int  // forest edge to the discovering vertex
	base   []int  // direct blossom representative (rebased wholesale)
	inTree []bool // EVEN vertices enqueued this search
	cycle  []bool // scratch: bases on the current blossom's two arcs
	queue  []int
}

func newSearcher(g *core.Graph, m *core.Matching) *searcher {
	n := g.VertexCount()

	return &searcher{
		g:      g,
		m:      m,
		parent: make([]int, n),
		base:   make([]int, n),
		inTree: make([]bool, n),
		cycle:  make([]bool, n),
		queue:  make([]int, 0, n),
	}
}

// findPath grows one alternating tree rooted at the free vertex root and
// returns the free vertex terminating the first augmenting path found,
// or NIL when the tree is exhausted (root stays unmatched for good).
func (s *searcher) findPath(root int) int {
	n := s.g.VertexCount()
	for i := 0; i < n; i++ {
		s.parent[i] = core.NIL
		s.base[i] = i
		s.inTree[i] = false
	}

	s.queue = s.queue[:0]
	s.queue = append(s.queue, root)
	s.inTree[root] = true

	for qi := 0; qi < len(s.queue); qi++ {
		v := s.queue[qi]
		for _, to := range s.g.Neighbors(v) {
			// Same blossom or the matched edge itself: nothing to learn.
			if s.base[v] == s.base[to] || s.m.Mate(v) == to {
				continue
			}

			if to == root || (s.m.Mate(to) != core.NIL && s.parent[s.m.Mate(to)] != core.NIL) {
				// to is EVEN in this very tree: the edge closes an odd
				// cycle. Contract it onto the lowest common ancestor.
				s.contract(v, to)
			} else if s.parent[to] == core.NIL {
				s.parent[to] = v
				if s.m.Mate(to) == core.NIL {
					return to // free vertex reached: augmenting path
				}
				w := s.m.Mate(to)
				s.inTree[w] = true
				s.queue = append(s.queue, w)
			}
		}
	}

	return core.NIL
}

// contract folds the blossom closed by edge (v, to) onto its LCA:
// both arcs are walked to mark their bases and re-thread parent pointers
// across the cycle, then every vertex based on a marked base is rebased
// onto the LCA and enqueued if it was not yet an EVEN tree vertex.
func (s *searcher) contract(v, to int) {
	cur := s.lca(v, to)
	for i := range s.cycle {
		s.cycle[i] = false
	}
	s.markPath(v, cur, to)
	s.markPath(to, cur, v)

	for i := 0; i < s.g.VertexCount(); i++ {
		if s.cycle[s.base[i]] {
			s.base[i] = cur
			if !s.inTree[i] {
				s.inTree[i] = true
				s.queue = append(s.queue, i)
			}
		}
	}
}

// markPath walks one arc of a blossom from v up to base b, marking the
// bases it crosses and re-threading each EVEN vertex's parent to point
// across the cycle (through child), so a later parent-chain walk follows
// the real alternating detour.
func (s *searcher) markPath(v, b, child int) {
	for s.base[v] != b {
		s.cycle[s.base[v]] = true
		s.cycle[s.base[s.m.Mate(v)]] = true
		s.parent[v] = child
		child = s.m.Mate(v)
		v = s.parent[child]
	}
}

// lca finds the lowest common ancestor (at base level) of a and b in the
// current tree by walking a's chain to the root and then ascending from
// b until a marked base appears.
func (s *searcher) lca(a, b int) int {
	seen := make([]bool, s.g.VertexCount())

	for {
		a = s.base[a]
		seen[a] = true
		if s.m.Mate(a) == core.NIL {
			break // reached the root
		}
		a = s.parent[s.m.Mate(a)]
	}
	for {
		b = s.base[b]
		if seen[b] {
			return b
		}
		b = s.parent[s.m.Mate(b)]
	}
}

// flip applies the found augmenting path by walking parent pointers from
// its free endpoint back to the root, re-pairing as it goes. Match keeps
// the involution intact at every step.
func (s *searcher) flip(end int) {
	for end != core.NIL {
		pv := s.parent[end]
		next := s.m.Mate(pv)
		s.m.Match(end, pv)
		end = next
	}
}
