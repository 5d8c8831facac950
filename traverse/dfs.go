package traverse

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/netpath/network"
)

// DFS returns the depth-first (pre-order) visitation order from start.
//
// It keeps an explicit stack: start is pushed and yielded, then the first
// unvisited out-neighbor of the stack top is pushed and yielded; when the top
// has no unvisited neighbor it is popped (backtrack).
func DFS(g network.View, start int, opts ...Option) iter.Seq[int] {
	o := buildOptions(opts)

	return func(yield func(int) bool) {
		n := g.Order()
		if start < 0 || start >= n {
			return
		}

		visited := make([]bool, n)
		stack := arraystack.New()

		visit := func(x int) bool {
			visited[x] = true
			stack.Push(x)
			o.OnVisit(x)

			return yield(x)
		}

		// 1) Seed with start.
		if !visit(start) {
			return
		}

		for !stack.Empty() {
			top, _ := stack.Peek()
			x := top.(int)

			// 2) Descend into the first unvisited neighbor, if any.
			found := false
			for i := 0; i < n && !found; i++ {
				if visited[i] || !network.IsEdge(g.Weight(x, i)) || !o.FilterNeighbor(x, i) {
					continue
				}
				found = true
				if !visit(i) {
					return
				}
			}

			// 3) Backtrack.
			if !found {
				stack.Pop()
			}
		}
	}
}
