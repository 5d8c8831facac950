// Package pathsearch implements the three path searches of the network
// engine: least-cost, greedy-longest and randomized. All three share one
// best-first skeleton over a network.View and a heap.Heap of (vertex, weight)
// records:
//
//  1. Reject start == target, invalid indices and empty graphs (empty Result).
//  2. Seed pathWeight[start] = 0, mark start visited, and seed every other
//     vertex with the direct edge weight from start.
//  3. Take the next vertex from the heap: the minimum (least-cost), the
//     maximum (greedy-longest) or a uniformly random finite candidate
//     (randomized). A top that is unreachable ends the search with no path.
//  4. Mark it visited, relax its unvisited out-neighbors, then clear and
//     rebuild the heap from every unvisited vertex's current weight.
//  5. Stop once target is visited.
//  6. Rebuild the path by walking predecessors back from target.
//
// Greedy-longest is NOT a longest-simple-path solver (that problem is
// NP-hard). It mirrors least-cost with max-relaxation and max-extraction,
// producing a path biased toward large edge weights.
//
// Complexity:
//
//   - Time:   O(V² log V), one heap rebuild per visited vertex.
//   - Memory: O(V) per call; nothing is shared between calls.
//
// Concurrency:
//
//	A single call never suspends and has no cancellation point. Calls are
//	independent, so many searches can run in parallel on the same immutable
//	network.Matrix (see Sample). Mutating a network.Network while a search
//	reads it is undefined; search a Snapshot() instead.
package pathsearch

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/katalvlaran/netpath/network"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pathsearch: invalid option supplied")

// ErrUnknownKind is returned by ParseKind for an unrecognised search name.
var ErrUnknownKind = errors.New("pathsearch: unknown search kind")

// Result is the outcome of one search: the vertex indices from start to
// target inclusive and the sum of edge weights along them. A failed search
// has an empty Path and Weight = +Inf.
type Result struct {
	Path   []int
	Weight float64
}

// noPath is the Result of an unreachable target or rejected input.
func noPath() Result { return Result{Weight: math.Inf(1)} }

// Empty reports whether no path was found.
func (r Result) Empty() bool { return len(r.Path) == 0 }

// Len returns the number of vertices on the path.
func (r Result) Len() int { return len(r.Path) }

// Seq returns the path indices as a sequence.
func (r Result) Seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range r.Path {
			if !yield(v) {
				return
			}
		}
	}
}

// Func is the common signature of LeastCost, GreedyLongest and Randomized.
type Func func(g network.View, start, target int, opts ...Option) Result

// Kind names a search algorithm.
type Kind string

// Known search kinds.
const (
	Shortest Kind = "shortest"
	Longest  Kind = "longest"
	Random   Kind = "random"
)

// ParseKind resolves a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Shortest, Longest, Random:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Func returns the search implementing k, or nil for an unknown kind.
func (k Kind) Func() Func {
	switch k {
	case Shortest:
		return LeastCost
	case Longest:
		return GreedyLongest
	case Random:
		return Randomized
	default:
		return nil
	}
}

// Option configures a search or a Sample run.
type Option func(*Options)

// Options holds tunables shared by the searches.
type Options struct {
	// Rand drives Randomized. nil uses the math/rand/v2 global source.
	Rand *rand.Rand

	// Seed, when HasSeed is set, makes Sample derive one PCG stream per run
	// from (Seed, run index), so results are reproducible.
	Seed    uint64
	HasSeed bool

	// Workers bounds the goroutines used by Sample.
	Workers int

	err error
}

// DefaultOptions returns Options with the global random source and one
// Sample worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithRand sets the random source used by Randomized. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed makes randomized choices reproducible. For a single search it
// installs rand.New(rand.NewPCG(seed, 0)); Sample derives a stream per run.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
		o.Rand = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithWorkers bounds Sample concurrency. n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
