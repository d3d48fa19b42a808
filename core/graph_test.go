package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxmatch/core"
)

// TestNewGraph_Canonicalization verifies loop dropping, deduplication and
// sorted neighbor order on a deliberately messy edge list.
func TestNewGraph_Canonicalization(t *testing.T) {
	g, err := core.NewGraph(4, [][2]int{
		{2, 1}, {1, 2}, {3, 3}, {0, 2}, {2, 0}, {1, 0},
	})
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []int{1, 2}, g.Neighbors(0))
	require.Equal(t, []int{0, 2}, g.Neighbors(1))
	require.Equal(t, []int{0, 1}, g.Neighbors(2))
	require.Empty(t, g.Neighbors(3), "self-loop must be dropped entirely")
}

// TestNewGraph_Symmetry checks u∈N(v) ⇔ v∈N(u) on a small random-ish list.
func TestNewGraph_Symmetry(t *testing.T) {
	g, err := core.NewGraph(6, [][2]int{{0, 5}, {5, 2}, {2, 4}, {4, 0}, {1, 3}})
	require.NoError(t, err)

	for v := 0; v < g.VertexCount(); v++ {
		for _, u := range g.Neighbors(v) {
			require.True(t, g.HasEdge(u, v), "edge (%d,%d) missing its mirror", v, u)
		}
	}
}

// TestNewGraph_Errors covers the two sentinel failures.
func TestNewGraph_Errors(t *testing.T) {
	_, err := core.NewGraph(-1, nil)
	require.ErrorIs(t, err, core.ErrBadOrder)

	_, err = core.NewGraph(3, [][2]int{{0, 3}})
	require.ErrorIs(t, err, core.ErrVertexRange)

	_, err = core.NewGraph(3, [][2]int{{-1, 0}})
	require.ErrorIs(t, err, core.ErrVertexRange)
}

// TestNewGraph_Empty exercises the degenerate inputs.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())

	g, err = core.NewGraph(5, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0, g.Degree(4))
}

// TestHasEdge checks both hits and misses, including out-of-range probes.
func TestHasEdge(t *testing.T) {
	g, err := core.NewGraph(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.False(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 7))
	require.False(t, g.HasEdge(-1, 1))
}
