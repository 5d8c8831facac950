package network

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
)

// Network is a weighted network of vertices labelled by T.
type Network[T comparable] struct {
	mu sync.RWMutex

	numVertices int            // live vertices, ≤ capacity
	vertices    []T            // len == capacity
	handles     []Handle       // len == capacity, parallel to vertices
	index       map[Handle]int // handle → current index
	matrix      [][]float64    // capacity × capacity, NoEdge when absent
}

// New returns an empty network.
// Complexity: O(c²) for the initial matrix, c = capacity.
func New[T comparable](opts ...Option) *Network[T] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network[T]{}
	n.allocate(o.capacity)

	return n
}

// allocate resets storage to an empty network with the given capacity.
func (n *Network[T]) allocate(capacity int) {
	n.numVertices = 0
	n.vertices = make([]T, capacity)
	n.handles = make([]Handle, capacity)
	n.index = make(map[Handle]int, capacity)
	n.matrix = newMatrix(capacity)
}

// newMatrix allocates a size×size matrix filled with NoEdge.
func newMatrix(size int) [][]float64 {
	m := make([][]float64, size)
	for i := range m {
		row := make([]float64, size)
		for j := range row {
			row[j] = NoEdge
		}
		m[i] = row
	}

	return m
}

// Order returns the number of vertices.
func (n *Network[T]) Order() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.numVertices
}

// Capacity returns the number of allocated vertex slots.
func (n *Network[T]) Capacity() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.vertices)
}

// IsEmpty reports whether the network has no vertices.
func (n *Network[T]) IsEmpty() bool { return n.Order() == 0 }

// IndexIsValid reports whether 0 ≤ i < Order().
func (n *Network[T]) IndexIsValid(i int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.valid(i)
}

func (n *Network[T]) valid(i int) bool { return i >= 0 && i < n.numVertices }

// AddVertex appends a vertex and returns its index. When the network is full
// the capacity doubles first. The new vertex's row and column are NoEdge.
//
// Complexity: O(V) amortized; O(c²) on growth.
func (n *Network[T]) AddVertex(label T) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1) Grow if every slot is taken.
	if n.numVertices == len(n.vertices) {
		n.expandCapacity()
	}

	// 2) Reset row and column of the new slot, including the diagonal.
	idx := n.numVertices
	for i := 0; i <= idx; i++ {
		n.matrix[idx][i] = NoEdge
		n.matrix[i][idx] = NoEdge
	}

	// 3) Register label and handle.
	h := uuid.New()
	n.vertices[idx] = label
	n.handles[idx] = h
	n.index[h] = idx
	n.numVertices++

	return idx
}

// expandCapacity doubles storage, copying live labels, handles and rows.
// Callers must hold the write lock.
func (n *Network[T]) expandCapacity() {
	size := len(n.vertices) * 2
	if size == 0 {
		size = DefaultCapacity
	}

	vertices := make([]T, size)
	handles := make([]Handle, size)
	matrix := newMatrix(size)
	for i := 0; i < n.numVertices; i++ {
		copy(matrix[i], n.matrix[i][:n.numVertices])
	}
	copy(vertices, n.vertices[:n.numVertices])
	copy(handles, n.handles[:n.numVertices])

	n.vertices = vertices
	n.handles = handles
	n.matrix = matrix
}

// AddEdge sets the directed weight i→j. The reverse direction is untouched;
// a bidirectional edge needs two calls.
//
// Returns ErrInvalidIndex or ErrInvalidWeight, leaving the network unchanged.
func (n *Network[T]) AddEdge(i, j int, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.valid(i) || !n.valid(j) {
		return fmt.Errorf("%w: edge %d→%d with %d vertices", ErrInvalidIndex, i, j, n.numVertices)
	}
	n.matrix[i][j] = weight

	return nil
}

// SetEdgeWeight sets weight in both directions, i→j and j→i.
func (n *Network[T]) SetEdgeWeight(i, j int, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.valid(i) || !n.valid(j) {
		return fmt.Errorf("%w: edge %d↔%d with %d vertices", ErrInvalidIndex, i, j, n.numVertices)
	}
	n.matrix[i][j] = weight
	n.matrix[j][i] = weight

	return nil
}

// RemoveEdge clears both i→j and j→i, regardless of how the edge was added.
func (n *Network[T]) RemoveEdge(i, j int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.valid(i) || !n.valid(j) {
		return fmt.Errorf("%w: edge %d↔%d with %d vertices", ErrInvalidIndex, i, j, n.numVertices)
	}
	n.matrix[i][j] = NoEdge
	n.matrix[j][i] = NoEdge

	return nil
}

// RemoveVertex deletes the vertex at index and shifts every later vertex,
// row and column down by one. Handles of shifted vertices keep resolving.
//
// Complexity: O(V²).
func (n *Network[T]) RemoveVertex(index int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.valid(index) {
		return fmt.Errorf("%w: vertex %d with %d vertices", ErrInvalidIndex, index, n.numVertices)
	}

	delete(n.index, n.handles[index])
	n.numVertices--
	last := n.numVertices

	// 1) Shift labels and handles.
	for i := index; i < last; i++ {
		n.vertices[i] = n.vertices[i+1]
		n.handles[i] = n.handles[i+1]
		n.index[n.handles[i]] = i
	}
	var zero T
	n.vertices[last] = zero
	n.handles[last] = Handle{}

	// 2) Shift rows up (including the old last column).
	for i := index; i < last; i++ {
		copy(n.matrix[i][:last+1], n.matrix[i+1][:last+1])
	}

	// 3) Shift columns left.
	for j := 0; j < last; j++ {
		row := n.matrix[j]
		copy(row[index:last], row[index+1:last+1])
	}

	return nil
}

// Clear removes every vertex and edge, keeping the current capacity.
func (n *Network[T]) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.allocate(len(n.vertices))
}

// Weight returns the directed weight i→j, or NoEdge when absent or when
// either index is invalid.
func (n *Network[T]) Weight(i, j int) float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.valid(i) || !n.valid(j) {
		return NoEdge
	}

	return n.matrix[i][j]
}

// HasEdge reports whether a directed edge i→j exists.
func (n *Network[T]) HasEdge(i, j int) bool { return IsEdge(n.Weight(i, j)) }

// Vertex returns the label at index i.
func (n *Network[T]) Vertex(i int) (T, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.valid(i) {
		var zero T
		return zero, false
	}

	return n.vertices[i], true
}

// Vertices returns a copy of all labels in index order.
func (n *Network[T]) Vertices() []T {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]T, n.numVertices)
	copy(out, n.vertices[:n.numVertices])

	return out
}

// IndexOf returns the index of the first vertex equal to label, or -1.
func (n *Network[T]) IndexOf(label T) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for i := 0; i < n.numVertices; i++ {
		if n.vertices[i] == label {
			return i
		}
	}

	return -1
}

// HandleOf returns the stable handle of the vertex at index i.
func (n *Network[T]) HandleOf(i int) (Handle, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.valid(i) {
		return Handle{}, false
	}

	return n.handles[i], true
}

// IndexOfHandle returns the current index of h, or ErrVertexNotFound once
// the vertex has been removed.
func (n *Network[T]) IndexOfHandle(h Handle) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := n.index[h]
	if !ok {
		return -1, fmt.Errorf("%w: handle %s", ErrVertexNotFound, h)
	}

	return i, nil
}
