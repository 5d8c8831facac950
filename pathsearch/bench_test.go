package pathsearch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netpath/pathsearch"
)

// BenchmarkLeastCost_Random100 measures one search across a 100-vertex network.
func BenchmarkLeastCost_Random100(b *testing.B) {
	net := randomConnected(1, 100).Snapshot()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pathsearch.LeastCost(net, 0, 99)
	}
}

// BenchmarkGreedyLongest_Random100 measures the max-heap variant on the same network.
func BenchmarkGreedyLongest_Random100(b *testing.B) {
	net := randomConnected(1, 100).Snapshot()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pathsearch.GreedyLongest(net, 0, 99)
	}
}

// BenchmarkRandomized_Random100 uses a fixed seed so iterations do equal work.
func BenchmarkRandomized_Random100(b *testing.B) {
	net := randomConnected(1, 100).Snapshot()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pathsearch.Randomized(net, 0, 99, pathsearch.WithSeed(uint64(i)))
	}
}

// BenchmarkSample_100Runs runs 100 randomized searches per iteration.
func BenchmarkSample_100Runs(b *testing.B) {
	net := randomConnected(1, 60)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pathsearch.Sample(context.Background(), net, 0, 59, 100); err != nil {
			b.Fatal(err)
		}
	}
}
