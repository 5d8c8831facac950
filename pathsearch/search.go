package pathsearch

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/netpath/heap"
	"github.com/katalvlaran/netpath/network"
)

// LeastCost returns the minimum-weight path from start to target.
// Correct for non-negative weights.
func LeastCost(g network.View, start, target int, opts ...Option) Result {
	r := newRunner(g, heap.Min, buildOptions(opts))

	return r.run(start, target, r.popTop)
}

// GreedyLongest returns a path built by always extending the unvisited
// vertex with the largest cumulative weight. It is a greedy walk, not a true
// longest-path solver.
func GreedyLongest(g network.View, start, target int, opts ...Option) Result {
	r := newRunner(g, heap.Max, buildOptions(opts))

	return r.run(start, target, r.popTop)
}

// Randomized picks, at each step, one of the reachable unvisited vertices
// uniformly at random and relaxes it like LeastCost. The result is always a
// valid path or empty.
func Randomized(g network.View, start, target int, opts ...Option) Result {
	r := newRunner(g, heap.Min, buildOptions(opts))

	return r.run(start, target, r.pickRandom)
}

// PathWeight returns the weight of the LeastCost path, summing consecutive
// edge weights, or +Inf when no path exists (including start == target).
func PathWeight(g network.View, start, target int) float64 {
	return LeastCost(g, start, target).Weight
}

// runner holds the mutable state of a single search.
type runner struct {
	g       network.View
	options Options
	order   heap.Order
	n       int

	pathWeight  []float64 // best known cumulative weight per vertex
	predecessor []int     // -1 when unset
	visited     []bool
	frontier    *heap.Heap[heap.Entry]
}

// next resolves the next vertex to visit, or reports that none is reachable.
type next func() (int, bool)

func newRunner(g network.View, order heap.Order, o Options) *runner {
	n := g.Order()

	return &runner{
		g:           g,
		options:     o,
		order:       order,
		n:           n,
		pathWeight:  make([]float64, n),
		predecessor: make([]int, n),
		visited:     make([]bool, n),
		frontier:    heap.NewEntryHeap(order),
	}
}

// run executes the shared skeleton, using pick for step 3.
func (r *runner) run(start, target int, pick next) Result {
	// 1) Validate input.
	if r.n == 0 || start == target || !r.valid(start) || !r.valid(target) {
		return noPath()
	}

	// 2) Seed from start.
	r.seed(start)

	// 3-5) Visit until target is final.
	for !r.visited[target] {
		idx, ok := pick()
		if !ok {
			return noPath()
		}
		r.visited[idx] = true
		r.relax(idx)
		r.rebuild()
	}

	// 6) Reconstruct.
	return r.reconstruct(start, target)
}

func (r *runner) valid(i int) bool { return i >= 0 && i < r.n }

// seed initialises weights, predecessors and the frontier from start.
func (r *runner) seed(start int) {
	worst := r.order.Worst()
	for i := 0; i < r.n; i++ {
		r.pathWeight[i] = worst
		r.predecessor[i] = -1
	}
	r.pathWeight[start] = 0
	r.visited[start] = true

	for i := 0; i < r.n; i++ {
		if i == start {
			continue
		}
		if w := r.g.Weight(start, i); network.IsEdge(w) {
			r.pathWeight[i] = w
			r.predecessor[i] = start
		}
		r.frontier.Insert(heap.Entry{Vertex: i, Weight: r.pathWeight[i]})
	}
}

// relax improves every unvisited out-neighbor of idx through idx.
func (r *runner) relax(idx int) {
	for i := 0; i < r.n; i++ {
		if r.visited[i] {
			continue
		}
		w := r.g.Weight(idx, i)
		if !network.IsEdge(w) {
			continue
		}
		if sum := r.pathWeight[idx] + w; r.order.Better(sum, r.pathWeight[i]) {
			r.pathWeight[i] = sum
			r.predecessor[i] = idx
		}
	}
}

// rebuild discards the frontier and re-inserts every unvisited vertex with
// its current weight.
func (r *runner) rebuild() {
	r.frontier.Clear()
	for i := 0; i < r.n; i++ {
		if !r.visited[i] {
			r.frontier.Insert(heap.Entry{Vertex: i, Weight: r.pathWeight[i]})
		}
	}
}

// reachable reports whether an entry denotes a vertex some visited vertex
// has an edge to.
func (r *runner) reachable(e heap.Entry) bool {
	return !math.IsInf(e.Weight, 0) && r.predecessor[e.Vertex] >= 0
}

// popTop extracts the heap top. Stale entries (visited or outdated weight)
// are skipped; an unreachable top means every remaining vertex is
// unreachable, since it is the best candidate.
func (r *runner) popTop() (int, bool) {
	for {
		e, err := r.frontier.ExtractTop()
		if err != nil {
			return -1, false
		}
		if r.visited[e.Vertex] || e.Weight != r.pathWeight[e.Vertex] {
			continue
		}
		if !r.reachable(e) {
			return -1, false
		}

		return e.Vertex, true
	}
}

// pickRandom draws uniformly among the reachable, unvisited frontier entries.
func (r *runner) pickRandom() (int, bool) {
	candidates := make([]int, 0, r.frontier.Size())
	for _, e := range r.frontier.Values() {
		if !r.visited[e.Vertex] && e.Weight == r.pathWeight[e.Vertex] && r.reachable(e) {
			candidates = append(candidates, e.Vertex)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	// Heap storage order depends on insertion history; sort so a seeded
	// source always sees the same candidate list.
	slices.Sort(candidates)

	return candidates[r.intN(len(candidates))], true
}

func (r *runner) intN(n int) int {
	if r.options.Rand != nil {
		return r.options.Rand.IntN(n)
	}

	return rand.IntN(n)
}

// reconstruct walks predecessors from target back to start.
func (r *runner) reconstruct(start, target int) Result {
	path := []int{target}
	for v := target; v != start; {
		v = r.predecessor[v]
		if v < 0 {
			return noPath()
		}
		path = append(path, v)
	}
	slices.Reverse(path)

	return Result{Path: path, Weight: Weight(r.g, path)}
}

// Weight sums the edge weights along path. It returns +Inf for an empty
// path or when two consecutive vertices are not joined by an edge.
func Weight(g network.View, path []int) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	total := 0.0
	for k := 1; k < len(path); k++ {
		w := g.Weight(path[k-1], path[k])
		if !network.IsEdge(w) {
			return math.Inf(1)
		}
		total += w
	}

	return total
}
