package traverse

import (
	"iter"

	"github.com/katalvlaran/netpath/network"
)

// Reachable returns how many vertices a breadth-first traversal from start
// visits, start included. Invalid start ⇒ 0.
func Reachable(g network.View, start int) int {
	count := 0
	for range BFS(g, start) {
		count++
	}

	return count
}

// IsConnected reports whether every vertex reaches every other vertex, i.e.
// a BFS from each vertex visits all Order() vertices. For directed edges this
// is strong connectivity. An empty graph is not connected.
//
// Complexity: O(V³) on the dense matrix.
func IsConnected(g network.View) bool {
	n := g.Order()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if Reachable(g, i) != n {
			return false
		}
	}

	return true
}

// Labeled is the label lookup Labels needs; *network.Network satisfies it.
type Labeled[T any] interface {
	Vertex(i int) (T, bool)
}

// Labels maps an index sequence to vertex labels, skipping indices that no
// longer resolve.
func Labels[T any](g Labeled[T], seq iter.Seq[int]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range seq {
			label, ok := g.Vertex(i)
			if !ok {
				continue
			}
			if !yield(label) {
				return
			}
		}
	}
}
