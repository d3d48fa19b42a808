package matching

import "github.com/katalvlaran/maxmatch/core"

// Phased computes a maximum-cardinality matching of g with the phased,
// blossom-aware alternating-forest solver.
//
// Steps:
//  1. Resolve options; reject a nil graph or an invalid option (O(1)).
//  2. Greedy-bootstrap the matching per opts (O(V + E)).
//  3. Repeat phases until one finds nothing:
//     a. Reset the blossom registry and build a fresh forest state.
//     b. Grow the alternating forest from every free vertex at once,
//     processing edges in non-decreasing distance order, contracting
//     each blossom encountered (see phase.grow).
//     c. Reconstruct every augmenting opportunity harvested at the
//     terminal distance, keep a vertex-disjoint subset, flip them all
//     (see phase.augment).
//     d. Invoke the OnPhase hook with the new cardinality.
//  4. Stop early once the matching is perfect — no free vertices remain,
//     so a further pass could not seed a single root.
//
// A phase that records opportunities applies at least one of them, so the
// cardinality strictly increases per productive phase and the loop
// terminates after at most V/2 augmentations.
//
// Complexity:
//
//	Time:   O(phases · (V + E·α(V))); the multi-path harvest bounds
//	        phases by O(√V) on the inputs this engine targets.
//	Memory: O(V + E) for forest state, registry and level queue.
func Phased(g *core.Graph, opts ...Option) (*Result, error) {
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

	// 2) Optional greedy seed; only phase count depends on it.
	bootstrap(g, m, o.Bootstrap)

	res := &Result{Matching: m}
	reg := newRegistry(n)

	// 3) Phase loop.
	for {
		res.Phases++
		p := newPhase(g, m, reg)
		if !p.grow() {
			break // no augmenting opportunity anywhere: maximum reached
		}
		res.Augmentations += p.augment()
		o.OnPhase(res.Phases, m.Size())

		// 4) Perfect matching: nothing left to root a forest on.
		if 2*m.Size() >= n {
			break
		}
	}

	return res, nil
}
