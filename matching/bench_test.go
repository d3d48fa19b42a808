package matching_test

import (
	"testing"

	"github.com/katalvlaran/maxmatch/core"
	"github.com/katalvlaran/maxmatch/gen"
	"github.com/katalvlaran/maxmatch/matching"
)

// benchGraph builds a fixed random graph once; failures abort the bench.
func benchGraph(b *testing.B, n, m int, seed int64) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n, gen.RandomSparse(n, m, seed))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkPhased_Sparse(b *testing.B) {
	g := benchGraph(b, 2000, 6000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.Phased(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSinglePath_Sparse(b *testing.B) {
	g := benchGraph(b, 400, 1200, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.SinglePath(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPhased_Dense(b *testing.B) {
	g, err := core.NewGraph(300, gen.Complete(300))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.Phased(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPhased_NoBootstrap isolates the cost the greedy seed saves.
func BenchmarkPhased_NoBootstrap(b *testing.B) {
	g := benchGraph(b, 2000, 6000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.Phased(g, matching.WithBootstrap(matching.BootstrapNone)); err != nil {
			b.Fatal(err)
		}
	}
}
