package matching

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/maxmatch/core"
)

// Report is the post-hoc verdict on a computed matching. The solvers run
// without mid-phase assertions (deliberately — see package doc), so this
// is the single place engine defects surface. A failing report means a
// bug in the engine, never a problem with the input.
type Report struct {
	// Size is the matching cardinality.
	Size int

	// MatchedVertices counts vertices with a partner (2·Size when OK).
	MatchedVertices int

	// BadEdges lists matched pairs that are not edges of the graph.
	BadEdges []core.Pair

	// Conflicted lists vertices whose mate relation is not an
	// involution: mate(mate(v)) != v, or mate(v) == v.
	Conflicted []int
}

// OK reports whether the matching passed every check.
func (r Report) OK() bool {
	return len(r.BadEdges) == 0 && len(r.Conflicted) == 0
}

// Verdict returns the canonical one-line verdict string.
func (r Report) Verdict() string {
	if r.OK() {
		return "VALIDATION PASSED"
	}

	return "VALIDATION FAILED"
}

// String renders the full report, including the offending edges and
// vertices on failure, for the diagnostic dump drivers print.
func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("=== Validation Report ===\n")
	fmt.Fprintf(&sb, "Matching size: %d\n", r.Size)
	fmt.Fprintf(&sb, "Matched vertices: %d\n", r.MatchedVertices)
	for _, e := range r.BadEdges {
		fmt.Fprintf(&sb, "ERROR: edge (%d, %d) not in graph\n", e.U, e.V)
	}
	for _, v := range r.Conflicted {
		fmt.Fprintf(&sb, "ERROR: vertex %d violates the involution\n", v)
	}
	sb.WriteString(r.Verdict() + "\n")
	sb.WriteString("=========================")

	return sb.String()
}

// Validate checks m against g: every matched pair must be a real edge of
// the graph, and the mate relation must be a self-inverse pairing with
// no vertex claimed twice. O(V + Size·log d_max).
func Validate(g *core.Graph, m *core.Matching) Report {
	r := Report{Size: m.Size()}

	for v := 0; v < m.Len(); v++ {
		p := m.Mate(v)
		if p == core.NIL {
			continue
		}
		r.MatchedVertices++
		if p == v || p < 0 || p >= m.Len() || m.Mate(p) != v {
			r.Conflicted = append(r.Conflicted, v)
			continue
		}
		if p > v && !g.HasEdge(v, p) {
			r.BadEdges = append(r.BadEdges, core.Pair{U: v, V: p})
		}
	}

	return r
}
