package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxmatch/core"
	"github.com/katalvlaran/maxmatch/gen"
	"github.com/katalvlaran/maxmatch/matching"
)

// solvers names both entry points so every scenario runs against each.
var solvers = map[string]func(*core.Graph, ...matching.Option) (*matching.Result, error){
	"phased": matching.Phased,
	"single": matching.SinglePath,
}

var bootstraps = []matching.BootstrapMode{
	matching.BootstrapNone,
	matching.BootstrapIndex,
	matching.BootstrapDegree,
}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	return g
}

// FixtureSuite runs the known-answer graphs through both solvers under
// every bootstrap mode: the maximum size must never depend on either.
type FixtureSuite struct {
	suite.Suite
}

func (s *FixtureSuite) check(n int, edges [][2]int, want int) {
	s.T().Helper()
	g := mustGraph(s.T(), n, edges)

	for name, solve := range solvers {
		for _, mode := range bootstraps {
			res, err := solve(g, matching.WithBootstrap(mode))
			require.NoError(s.T(), err)
			require.Equal(s.T(), want, res.Matching.Size(),
				"%s with bootstrap=%s", name, mode)

			rep := matching.Validate(g, res.Matching)
			require.True(s.T(), rep.OK(), "%s with bootstrap=%s: %s", name, mode, rep)
		}
	}
}

// TestTriangle: the smallest blossom. Size 1.
func (s *FixtureSuite) TestTriangle() {
	s.check(3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, 1)
}

// TestPentagon: 5-cycle, one odd cycle spanning everything. Size 2.
func (s *FixtureSuite) TestPentagon() {
	s.check(5, gen.Cycle(5), 2)
}

// TestPetersen: perfect matching of size 5 despite being saturated with
// odd cycles.
func (s *FixtureSuite) TestPetersen() {
	s.check(10, gen.Petersen(), 5)
}

// TestBlossomWithPendant: a triangle sharing a vertex with a pendant
// edge, plus an isolated vertex. Mishandled contraction under-counts
// this to 1; the answer is 2: (0,1) and (2,3).
func (s *FixtureSuite) TestBlossomWithPendant() {
	s.check(5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}, 2)
}

// TestTwoTrianglesBridged: two blossoms joined by an edge admit a
// perfect matching only if both cycles unfold correctly. Size 3.
func (s *FixtureSuite) TestTwoTrianglesBridged() {
	s.check(6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	}, 3)
}

// TestPaths: even and odd paths, no blossoms involved.
func (s *FixtureSuite) TestPaths() {
	s.check(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, 2)
	s.check(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, 2)
}

// TestEvenCycle: C6 is bipartite; size 3.
func (s *FixtureSuite) TestEvenCycle() {
	s.check(6, gen.Cycle(6), 3)
}

// TestComplete: K_n has matching size ⌊n/2⌋.
func (s *FixtureSuite) TestComplete() {
	s.check(4, gen.Complete(4), 2)
	s.check(7, gen.Complete(7), 3)
	s.check(8, gen.Complete(8), 4)
}

// TestDegenerate: empty and edgeless graphs solve to zero.
func (s *FixtureSuite) TestDegenerate() {
	s.check(0, nil, 0)
	s.check(6, nil, 0)
	s.check(1, nil, 0)
}

func TestFixtureSuite(t *testing.T) {
	suite.Run(t, new(FixtureSuite))
}

// bruteMax enumerates all matchings of a small graph over a vertex
// bitmask — the independent oracle for maximality.
func bruteMax(edges [][2]int) int {
	best := 0
	var rec func(i int, used uint32, size int)
	rec = func(i int, used uint32, size int) {
		if size > best {
			best = size
		}
		for ; i < len(edges); i++ {
			u, v := uint32(1)<<edges[i][0], uint32(1)<<edges[i][1]
			if used&u == 0 && used&v == 0 {
				rec(i+1, used|u|v, size+1)
			}
		}
	}
	rec(0, 0, 0)

	return best
}

// TestMaximality_BruteForce cross-checks both solvers against exhaustive
// enumeration on a battery of small random graphs, where every odd-cycle
// configuration eventually shows up.
func TestMaximality_BruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		edges := gen.RandomSparse(9, 14, seed)
		g := mustGraph(t, 9, edges)
		want := bruteMax(edges)

		for name, solve := range solvers {
			res, err := solve(g)
			require.NoError(t, err)
			require.Equal(t, want, res.Matching.Size(), "%s on seed %d", name, seed)
			require.True(t, matching.Validate(g, res.Matching).OK(), "%s on seed %d", name, seed)
		}
	}
}

// TestCrossAgreement_Random: the two variants must report the identical
// size (not necessarily the same edges) on larger inputs too.
func TestCrossAgreement_Random(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		edges := gen.RandomSparse(60, 140, seed)
		g := mustGraph(t, 60, edges)

		ph, err := matching.Phased(g)
		require.NoError(t, err)
		sp, err := matching.SinglePath(g)
		require.NoError(t, err)

		require.Equal(t, sp.Matching.Size(), ph.Matching.Size(), "seed %d", seed)
		require.True(t, matching.Validate(g, ph.Matching).OK(), "seed %d", seed)
		require.True(t, matching.Validate(g, sp.Matching).OK(), "seed %d", seed)
	}
}

// TestCrossAgreement_Bipartite pins the general solvers on bipartite
// inputs, where the optimum has well-understood structure.
func TestCrossAgreement_Bipartite(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		edges := gen.RandomBipartite(8, 8, 20, seed)
		g := mustGraph(t, 16, edges)
		want := bruteMax(edges)

		for name, solve := range solvers {
			res, err := solve(g)
			require.NoError(t, err)
			require.Equal(t, want, res.Matching.Size(), "%s on seed %d", name, seed)
		}
	}
}

// TestDeterminism: two runs on the same graph yield bitwise-identical
// matchings, not merely the same size.
func TestDeterminism(t *testing.T) {
	edges := gen.RandomSparse(80, 200, 11)
	g := mustGraph(t, 80, edges)

	for name, solve := range solvers {
		a, err := solve(g)
		require.NoError(t, err)
		b, err := solve(g)
		require.NoError(t, err)
		require.Equal(t, a.Matching.Pairs(), b.Matching.Pairs(), "%s not deterministic", name)
	}
}

// TestMonotonicGrowth: cardinality observed via the OnPhase hook is
// strictly increasing, and every increase is at least one.
func TestMonotonicGrowth(t *testing.T) {
	edges := gen.RandomSparse(50, 90, 5)
	g := mustGraph(t, 50, edges)

	for name, solve := range solvers {
		var sizes []int
		res, err := solve(g,
			matching.WithBootstrap(matching.BootstrapNone),
			matching.WithOnPhase(func(_, matched int) { sizes = append(sizes, matched) }),
		)
		require.NoError(t, err)
		require.NotEmpty(t, sizes, "%s never augmented", name)

		prev := 0
		for i, sz := range sizes {
			require.Greater(t, sz, prev, "%s: phase report %d did not grow", name, i)
			prev = sz
		}
		require.Equal(t, res.Matching.Size(), sizes[len(sizes)-1])
	}
}

// TestResultCounters: Augmentations accounts for exactly the cardinality
// gained after bootstrap.
func TestResultCounters(t *testing.T) {
	g := mustGraph(t, 10, gen.Petersen())

	res, err := matching.Phased(g, matching.WithBootstrap(matching.BootstrapNone))
	require.NoError(t, err)
	require.Equal(t, 5, res.Matching.Size())
	require.Equal(t, 5, res.Augmentations)
	require.GreaterOrEqual(t, res.Phases, 1)
}

// TestErrors covers the sentinel failures of both solvers.
func TestErrors(t *testing.T) {
	for name, solve := range solvers {
		_, err := solve(nil)
		require.ErrorIs(t, err, matching.ErrGraphNil, name)

		g := mustGraph(t, 2, [][2]int{{0, 1}})
		_, err = solve(g, matching.WithBootstrap(matching.BootstrapMode(42)))
		require.ErrorIs(t, err, matching.ErrOptionViolation, name)
	}
}
