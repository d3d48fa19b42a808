package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxmatch/core"
)

func seedGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	return g
}

// TestBootstrapIndex_Order: pairs form in index order, lowest free
// neighbor first.
func TestBootstrapIndex_Order(t *testing.T) {
	// 0 prefers 1 over 2; 2 is then stranded with 3.
	g := seedGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})

	m := core.NewMatching(4)
	bootstrap(g, m, BootstrapIndex)
	require.Equal(t, []core.Pair{{U: 0, V: 1}, {U: 2, V: 3}}, m.Pairs())
}

// TestBootstrapDegree_Order: the star center yields to its leaves — the
// scarce leaf claims the hub before the index pass would have.
func TestBootstrapDegree_Order(t *testing.T) {
	// Star K1,3 plus an edge between two leaves. Degrees: 0→3, 1→2,
	// 2→2, 3→1. Vertex 3 goes first and takes the hub, freeing (1,2).
	g := seedGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}})

	m := core.NewMatching(4)
	bootstrap(g, m, BootstrapDegree)
	require.Equal(t, []core.Pair{{U: 0, V: 3}, {U: 1, V: 2}}, m.Pairs())
}

// TestBootstrapNone leaves the matching untouched.
func TestBootstrapNone(t *testing.T) {
	g := seedGraph(t, 4, [][2]int{{0, 1}, {2, 3}})

	m := core.NewMatching(4)
	bootstrap(g, m, BootstrapNone)
	require.Zero(t, m.Size())
}

// TestBootstrap_Validity: every mode yields an involutive matching over
// real edges only.
func TestBootstrap_Validity(t *testing.T) {
	g := seedGraph(t, 7, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {2, 5}, {5, 6}})

	for _, mode := range []BootstrapMode{BootstrapNone, BootstrapIndex, BootstrapDegree} {
		m := core.NewMatching(7)
		bootstrap(g, m, mode)
		require.True(t, Validate(g, m).OK(), "mode %s", mode)
	}
}

// TestBootstrapMode_String covers the CLI-facing names.
func TestBootstrapMode_String(t *testing.T) {
	require.Equal(t, "none", BootstrapNone.String())
	require.Equal(t, "index", BootstrapIndex.String())
	require.Equal(t, "degree", BootstrapDegree.String())
	require.Equal(t, "BootstrapMode(9)", BootstrapMode(9).String())
}
