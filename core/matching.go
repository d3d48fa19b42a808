package core

// Pair is one matched edge, reported with U < V.
type Pair struct {
	U, V int
}

// Matching is a mutable partial involution over the vertices 0..n-1:
// Mate(Mate(v)) == v whenever Mate(v) != NIL. It carries no reference to
// the graph it was computed for; edge validity is checked post-hoc by the
// validator, never here.
type Matching struct {
	mate []int
	size int
}

// NewMatching returns an empty matching over n vertices.
func NewMatching(n int) *Matching {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = NIL
	}

	return &Matching{mate: mate}
}

// Len returns the number of vertices the matching was sized for.
func (m *Matching) Len() int { return len(m.mate) }

// Mate returns v's partner, or NIL if v is free.
func (m *Matching) Mate(v int) int { return m.mate[v] }

// IsFree reports whether v has no partner.
func (m *Matching) IsFree(v int) bool { return m.mate[v] == NIL }

// Size returns the matching cardinality (number of matched pairs).
func (m *Matching) Size() int { return m.size }

// Match pairs u with v, unlinking any previous partner of either so the
// involution invariant survives every call. u and v must be distinct.
func (m *Matching) Match(u, v int) {
	if pu := m.mate[u]; pu != NIL {
		m.mate[pu] = NIL
		m.size--
	}
	if pv := m.mate[v]; pv != NIL {
		m.mate[pv] = NIL
		m.size--
	}
	m.mate[u] = v
	m.mate[v] = u
	m.size++
}

// SetMate writes a single direction of the involution without any
// unlinking or size bookkeeping. Solvers use it when flipping a whole
// augmenting path at once, where every vertex on the path receives a new
// partner and pairwise Match calls would double-handle the old ones.
// Callers must restore the involution before the matching is observed.
func (m *Matching) SetMate(v, partner int) { m.mate[v] = partner }

// Recount recomputes the cached cardinality after a sequence of SetMate
// calls. O(V).
func (m *Matching) Recount() {
	c := 0
	for v, p := range m.mate {
		if p != NIL && p > v {
			c++
		}
	}
	m.size = c
}

// Pairs returns every matched edge as a Pair with U < V, ascending by U.
// The mate slice is scanned in index order, so the output is
// deterministic for a given matching.
func (m *Matching) Pairs() []Pair {
	pairs := make([]Pair, 0, m.size)
	for v, p := range m.mate {
		if p != NIL && p > v {
			pairs = append(pairs, Pair{U: v, V: p})
		}
	}

	return pairs
}

// Clone returns an independent copy of the matching.
func (m *Matching) Clone() *Matching {
	mate := make([]int, len(m.mate))
	copy(mate, m.mate)

	return &Matching{mate: mate, size: m.size}
}
