package gen

import "math/rand"

// Cycle returns the edges of an n-cycle (0-1, 1-2, ..., n-1-0).
// n < 3 yields no edges: a 2-cycle would be a duplicate edge and a
// 1-cycle a self-loop, both canonicalized away downstream anyway.
func Cycle(n int) [][2]int {
	if n < 3 {
		return nil
	}
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return edges
}

// Complete returns the edges of K_n, ascending lexicographic order.
func Complete(n int) [][2]int {
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}

// Petersen returns the Petersen graph: outer 5-cycle 0..4, inner
// pentagram 5..9, spokes i—i+5. 10 vertices, 15 edges, 3-regular, and a
// perfect matching of size 5 — the classic stress fixture for blossom
// handling.
func Petersen() [][2]int {
	edges := make([][2]int, 0, 15)
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 5})
		edges = append(edges, [2]int{i, i + 5})
		edges = append(edges, [2]int{5 + i, 5 + (i+2)%5})
	}

	return edges
}

// RandomSparse returns m distinct undirected edges (no self-loops) drawn
// uniformly over n vertices with the given seed. m is clamped to the
// number of available edges. Deterministic for equal arguments.
func RandomSparse(n, m int, seed int64) [][2]int {
	max := n * (n - 1) / 2
	if m > max {
		m = max
	}
	rng := rand.New(rand.NewSource(seed))

	seen := make(map[[2]int]bool, m)
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}

	return edges
}

// RandomBipartite returns m distinct edges between a left part 0..nl-1
// and a right part nl..nl+nr-1, drawn with the given seed. m is clamped
// to nl·nr. Deterministic for equal arguments.
func RandomBipartite(nl, nr, m int, seed int64) [][2]int {
	if m > nl*nr {
		m = nl * nr
	}
	rng := rand.New(rand.NewSource(seed))

	seen := make(map[[2]int]bool, m)
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		u := rng.Intn(nl)
		v := nl + rng.Intn(nr)
		key := [2]int{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}

	return edges
}
