package pathsearch_test

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/pathsearch"
)

// ExampleLeastCost routes through the cheap detour and then around a removed link.
func ExampleLeastCost() {
	net := network.New[string]()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		net.AddVertex(name)
	}
	_ = net.AddEdge(0, 1, 2)
	_ = net.AddEdge(1, 2, 2)
	_ = net.AddEdge(0, 2, 10)
	_ = net.AddEdge(2, 3, 1)
	_ = net.AddEdge(3, 4, 1)

	res := pathsearch.LeastCost(net, 0, 4)
	fmt.Println(res.Path, res.Weight)

	_ = net.RemoveEdge(1, 2)
	fmt.Println(slices.Collect(pathsearch.ShortestPath(net, 0, 4)), pathsearch.PathWeight(net, 0, 4))
	// Output:
	// [0 1 2 3 4] 6
	// [A C D E] 12
}

// ExampleGreedyLongest contrasts the greedy heavy walk with the cheapest route.
func ExampleGreedyLongest() {
	net := network.New[string]()
	for _, name := range []string{"S", "X", "Y", "T"} {
		net.AddVertex(name)
	}
	_ = net.AddEdgeBetween("S", "X", 1)
	_ = net.AddEdgeBetween("S", "Y", 5)
	_ = net.AddEdgeBetween("Y", "X", 5)
	_ = net.AddEdgeBetween("X", "T", 1)
	_ = net.AddEdgeBetween("Y", "T", 1)

	fmt.Println(slices.Collect(pathsearch.Between(net, pathsearch.GreedyLongest, "S", "T")))
	fmt.Println(slices.Collect(pathsearch.Between(net, pathsearch.LeastCost, "S", "T")))
	// Output:
	// [S Y X T]
	// [S X T]
}

// ExampleSample draws reproducible random routes on a line.
func ExampleSample() {
	net := network.New[int]()
	for i := 0; i < 4; i++ {
		net.AddVertex(i)
	}
	for i := 0; i < 3; i++ {
		_ = net.AddEdge(i, i+1, 1)
	}

	results, err := pathsearch.Sample(context.Background(), net, 0, 3, 3, pathsearch.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range results {
		fmt.Println(res.Path, res.Weight)
	}
	// Output:
	// [0 1 2 3] 3
	// [0 1 2 3] 3
	// [0 1 2 3] 3
}
