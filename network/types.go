// Package network defines the weighted vertex/edge store used by the
// traversal and path-search packages.
//
// A Network[T] keeps vertex labels in a dense slice and edge weights in a
// square capacity×capacity matrix. matrix[i][j] holds the directed weight
// from vertex i to vertex j, or NoEdge (+Inf) when there is none. Capacity
// doubles when exhausted; growth is a pure copy into a fresh matrix.
//
// Edge semantics:
//
//   - AddEdge(i, j, w) writes matrix[i][j] only (directed).
//   - RemoveEdge(i, j) clears matrix[i][j] AND matrix[j][i].
//   - SetEdgeWeight(i, j, w) writes both directions (used by snapshot restore).
//
// Indices and handles:
//
//	Vertex indices are dense, in [0, Order()). RemoveVertex shifts every later
//	vertex, row and column down by one, so cached indices ≥ the removed one
//	become stale. Every vertex also gets a Handle (UUID) that survives
//	removals; IndexOfHandle resolves it to the current index.
//
// Concurrency:
//
//	All exported methods take an internal sync.RWMutex, so individual calls
//	are safe across goroutines. A search that spans many calls is not
//	protected against concurrent mutation; run it on Snapshot() instead.
//
// Errors:
//
//   - ErrInvalidIndex   index outside [0, Order()); the mutation is a no-op.
//   - ErrInvalidWeight  NaN or ±Inf edge weight; the mutation is a no-op.
//   - ErrVertexNotFound label or handle lookup failed.
package network

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// Sentinel errors for network operations.
var (
	// ErrInvalidIndex indicates an index outside [0, Order()).
	ErrInvalidIndex = errors.New("network: index out of range")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("network: edge weight must be finite")

	// ErrVertexNotFound indicates a label or handle that is not in the network.
	ErrVertexNotFound = errors.New("network: vertex not found")
)

// DefaultCapacity is the initial number of vertex slots.
const DefaultCapacity = 10

// NoEdge is the matrix sentinel for an absent directed connection.
var NoEdge = math.Inf(1)

// IsEdge reports whether w denotes an existing edge.
func IsEdge(w float64) bool { return w < NoEdge }

// Handle is a stable vertex identifier that survives index shifts.
type Handle = uuid.UUID

// View is the read-only surface consumed by traversal and path search.
// Weight returns NoEdge for absent edges and for out-of-range indices.
type View interface {
	Order() int
	Weight(i, j int) float64
}

// Option configures a Network at construction.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial number of vertex slots. Values < 1 are
// ignored and DefaultCapacity is used.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
