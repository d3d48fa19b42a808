package core

import (
	"errors"
	"fmt"
	"sort"
)

// NIL marks the absence of a vertex: a free vertex's mate, a missing
// parent pointer, an unset bridge endpoint. All maxmatch packages share
// this sentinel.
const NIL = -1

// ErrBadOrder is returned when NewGraph is given a negative vertex count.
var ErrBadOrder = errors.New("core: negative vertex count")

// ErrVertexRange is returned when an edge endpoint lies outside [0, n).
var ErrVertexRange = errors.New("core: vertex out of range")

// Graph is an immutable, undirected, unweighted graph over the vertices
// 0..n-1. Neighbor lists are sorted, deduplicated and loop-free; the
// structure must not be mutated after NewGraph returns.
type Graph struct {
	n    int
	m    int     // number of distinct undirected edges after canonicalization
	adj  [][]int // adj[v] sorted ascending
	degs []int
}

// NewGraph builds a canonical Graph from n and a raw edge list.
//
// Canonicalization, in order:
//  1. Reject n < 0 (ErrBadOrder) and any endpoint outside [0, n)
//     (ErrVertexRange, wrapped with the offending edge).
//  2. Drop self-loops silently.
//  3. Insert each surviving edge in both directions.
//  4. Sort each neighbor list ascending and remove duplicates in place.
//
// Complexity: O(V + E·log d_max) time, O(V + E) memory.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadOrder, n)
	}

	// 1) Validate endpoints before touching adjacency.
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: edge (%d, %d) with n=%d", ErrVertexRange, e[0], e[1], n)
		}
	}

	// 2+3) Collect both directions, skipping self-loops.
	adj := make([][]int, n)
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	// 4) Sort and deduplicate every neighbor list; count distinct edges.
	g := &Graph{n: n, adj: adj, degs: make([]int, n)}
	var half int // sum of degrees = 2·m
	for v := 0; v < n; v++ {
		list := adj[v]
		sort.Ints(list)
		k := 0
		for i := 0; i < len(list); i++ {
			if i == 0 || list[i] != list[i-1] {
				list[k] = list[i]
				k++
			}
		}
		adj[v] = list[:k]
		g.degs[v] = k
		half += k
	}
	g.m = half / 2

	return g, nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges after
// canonicalization (self-loops and duplicates excluded).
func (g *Graph) EdgeCount() int { return g.m }

// Degree returns the number of distinct neighbors of v.
func (g *Graph) Degree(v int) int { return g.degs[v] }

// Neighbors returns the sorted neighbor list of v. The returned slice is
// shared with the Graph and must be treated as read-only.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// HasEdge reports whether the undirected edge (u, v) exists, by binary
// search over u's neighbor list. O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	list := g.adj[u]
	i := sort.SearchInts(list, v)

	return i < len(list) && list[i] == v
}
