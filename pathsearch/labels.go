package pathsearch

import (
	"iter"

	"github.com/katalvlaran/netpath/network"
)

// Labels runs search on a snapshot of net and returns the path as labels.
// The sequence is computed eagerly and is empty when no path exists.
func Labels[T comparable](net *network.Network[T], search Func, start, target int, opts ...Option) iter.Seq[T] {
	labels := net.Vertices()
	res := search(net.Snapshot(), start, target, opts...)

	return func(yield func(T) bool) {
		for _, i := range res.Path {
			if i >= len(labels) {
				return
			}
			if !yield(labels[i]) {
				return
			}
		}
	}
}

// Between is Labels addressed by label instead of index. An unknown label
// yields an empty sequence.
func Between[T comparable](net *network.Network[T], search Func, from, to T, opts ...Option) iter.Seq[T] {
	return Labels(net, search, net.IndexOf(from), net.IndexOf(to), opts...)
}

// ShortestPath returns the least-cost path from start to target as labels.
func ShortestPath[T comparable](net *network.Network[T], start, target int) iter.Seq[T] {
	return Labels(net, LeastCost, start, target)
}

// LongestPath returns the greedy-longest path from start to target as labels.
func LongestPath[T comparable](net *network.Network[T], start, target int) iter.Seq[T] {
	return Labels(net, GreedyLongest, start, target)
}

// RandomPath returns a randomized path from start to target as labels.
func RandomPath[T comparable](net *network.Network[T], start, target int, opts ...Option) iter.Seq[T] {
	return Labels(net, Randomized, start, target, opts...)
}
