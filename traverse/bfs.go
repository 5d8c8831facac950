package traverse

import (
	"iter"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/netpath/network"
)

// BFS returns the breadth-first visitation order from start.
//
// The start index is enqueued and marked visited; each dequeued vertex is
// yielded and then every unvisited out-neighbor is enqueued in ascending
// index order.
func BFS(g network.View, start int, opts ...Option) iter.Seq[int] {
	o := buildOptions(opts)

	return func(yield func(int) bool) {
		n := g.Order()
		if start < 0 || start >= n {
			return
		}

		visited := make([]bool, n)
		queue := arrayqueue.New()

		// 1) Seed with start.
		queue.Enqueue(start)
		visited[start] = true

		for !queue.Empty() {
			// 2) Dequeue and yield.
			v, _ := queue.Dequeue()
			x := v.(int)
			o.OnVisit(x)
			if !yield(x) {
				return
			}

			// 3) Enqueue every unvisited neighbor.
			for i := 0; i < n; i++ {
				if visited[i] || !network.IsEdge(g.Weight(x, i)) || !o.FilterNeighbor(x, i) {
					continue
				}
				visited[i] = true
				queue.Enqueue(i)
			}
		}
	}
}
