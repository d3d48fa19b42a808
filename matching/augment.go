package matching

import "github.com/katalvlaran/maxmatch/core"

// walkFrame is one resumable segment of the path-unfolding walk: "emit
// new mate pairs while moving cur toward goal". A goal of core.NIL means
// "until a free tree root is reached" and only ever appears in the two
// outermost frames of an opportunity. Frames for vertices hidden inside
// a blossom carry the bridge detour through stage 0 → 1 → 2.
type walkFrame struct {
	cur, goal int
	stage     int
	s, t      int // bridge endpoints, loaded at stage 0
}

// unfold reconstructs the real alternating path from v down to its tree
// root (or to an explicit goal vertex inside a blossom detour), appending
// one (a, b) pair per edge that becomes matched after the flip.
//
// The walk is the augmentor's half of the bridge contract:
//   - at an EVEN-labeled vertex, take the plain step — pair the matched
//     partner with that partner's parent and continue from the parent;
//   - at an ODD-labeled vertex (absorbed into a blossom), detour: unfold
//     from the bridge source down to the vertex's own partner, emit the
//     bridge edge itself, then continue from the bridge target.
//
// Native recursion over nested blossoms is replaced by an explicit frame
// stack so deeply nested contractions cannot exhaust the goroutine stack.
func (p *phase) unfold(v, goal int, pairs *[]core.Pair) {
	stack := make([]walkFrame, 1, 8)
	stack[0] = walkFrame{cur: v, goal: goal}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.cur == f.goal {
			stack = stack[:len(stack)-1]
			continue
		}

		if p.label[f.cur] == even {
			mv := p.m.Mate(f.cur)
			if mv == core.NIL {
				// Free root: the outermost walk is complete.
				stack = stack[:len(stack)-1]
				continue
			}
			pv := p.parent[mv]
			*pairs = append(*pairs, core.Pair{U: mv, V: pv})
			f.cur = pv

			continue
		}

		// ODD vertex hidden inside a blossom: detour via its bridge.
		switch f.stage {
		case 0:
			f.s, f.t = p.reg.bridge(f.cur)
			f.stage = 1
			stack = append(stack, walkFrame{cur: f.s, goal: p.m.Mate(f.cur)})
		case 1:
			*pairs = append(*pairs, core.Pair{U: f.s, V: f.t})
			f.stage = 2
			stack = append(stack, walkFrame{cur: f.t, goal: f.goal})
		default:
			stack = stack[:len(stack)-1]
		}
	}
}

// reconstruct turns one recorded opportunity (z, u) into the complete
// list of pairs that become matched when the path flips: the opportunity
// edge itself plus both unfolded root-to-endpoint halves.
func (p *phase) reconstruct(opp halfEdge) []core.Pair {
	pairs := []core.Pair{{U: opp.from, V: opp.to}}
	p.unfold(opp.from, core.NIL, &pairs)
	p.unfold(opp.to, core.NIL, &pairs)

	return pairs
}

// augment applies every harvested opportunity of the phase and returns
// how many were actually applied.
//
// Steps:
//  1. Reconstruct all candidate paths first, against the phase-static
//     matching — applying any flip earlier would corrupt the mate
//     pointers the remaining reconstructions walk through.
//  2. Keep a candidate only if it shares no vertex with an already kept
//     one; overlapping candidates are dropped, not partially applied
//     (the next phase rediscovers whatever they covered).
//  3. Flip each kept path: every pair becomes matched, every previously
//     matched edge interior to the path becomes unmatched by the same
//     writes. One Recount restores cardinality bookkeeping.
//
// Each kept path raises the cardinality by exactly one, and kept paths
// touch disjoint vertex sets, so the flips commute.
func (p *phase) augment() int {
	// 1) Reconstruct before mutating anything.
	candidates := make([][]core.Pair, 0, len(p.opps))
	for _, opp := range p.opps {
		candidates = append(candidates, p.reconstruct(opp))
	}

	// 2) Enforce vertex-disjointness in discovery order.
	used := make([]bool, p.g.VertexCount())
	applied := 0
	for _, pairs := range candidates {
		overlap := false
		for _, pr := range pairs {
			if used[pr.U] || used[pr.V] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		// 3) Claim and flip.
		for _, pr := range pairs {
			used[pr.U] = true
			used[pr.V] = true
			p.m.SetMate(pr.U, pr.V)
			p.m.SetMate(pr.V, pr.U)
		}
		applied++
	}
	p.m.Recount()

	return applied
}
