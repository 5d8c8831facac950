// Package traverse provides breadth-first and depth-first visitation over a
// network.View, plus the connectivity check built on top of them.
//
// Both traversals return an iter.Seq[int] of vertex indices. The sequence is
// lazy: no work happens until it is ranged over, and every range re-runs the
// traversal from scratch. Neighbors are always examined in ascending index
// order, so the visit order is deterministic.
//
// An invalid start index yields an empty sequence rather than an error.
//
// Complexity (dense matrix):
//
//   - Time:   O(V²) per traversal.
//   - Memory: O(V) for the visited flags and the queue or stack.
package traverse

// Option configures a traversal.
type Option func(*Options)

// Options holds the hooks and filters of a traversal.
type Options struct {
	// OnVisit is called for every vertex right before it is yielded.
	OnVisit func(index int)

	// FilterNeighbor can skip the edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns Options with no-op hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int) {},
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a callback invoked for each visited vertex.
func WithOnVisit(fn func(index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
