package heap

import (
	"cmp"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Heap is a binary heap of T ordered by a float64 key.
//
// The zero value is not usable; construct with New, NewWithTieBreak or
// NewEntryHeap. A Heap is not safe for concurrent use; each search owns its
// own instance.
type Heap[T any] struct {
	order Order
	tree  *binaryheap.Heap
}

// New returns an empty heap that orders elements by key(elem) in the given
// direction.
func New[T any](order Order, key func(T) float64) *Heap[T] {
	return NewWithTieBreak(order, key, nil)
}

// NewWithTieBreak is like New, but elements with equal keys are ordered by
// tie (negative means a first). tie is applied identically for Min and Max,
// so a Max heap of entries still yields equal weights in ascending tie order.
func NewWithTieBreak[T any](order Order, key func(T) float64, tie func(a, b T) int) *Heap[T] {
	comparator := func(a, b interface{}) int {
		x, y := a.(T), b.(T)
		c := cmp.Compare(key(x), key(y))
		if order == Max {
			c = -c
		}
		if c == 0 && tie != nil {
			return tie(x, y)
		}

		return c
	}

	return &Heap[T]{order: order, tree: binaryheap.NewWith(comparator)}
}

// NewEntryHeap returns a heap of Entry records ordered by Weight, with ties
// broken by ascending Vertex.
func NewEntryHeap(order Order) *Heap[Entry] {
	return NewWithTieBreak(order,
		func(e Entry) float64 { return e.Weight },
		func(a, b Entry) int { return cmp.Compare(a.Vertex, b.Vertex) },
	)
}

// Order reports the heap's extraction direction.
func (h *Heap[T]) Order() Order { return h.order }

// Insert adds v to the heap.
func (h *Heap[T]) Insert(v T) { h.tree.Push(v) }

// ExtractTop removes and returns the top element: the minimum for a Min
// heap, the maximum for a Max heap. Returns ErrEmptyCollection when empty.
func (h *Heap[T]) ExtractTop() (T, error) {
	v, ok := h.tree.Pop()
	if !ok {
		var zero T
		return zero, ErrEmptyCollection
	}

	return v.(T), nil
}

// PeekRoot returns the top element without removing it.
// Returns ErrEmptyCollection when empty.
func (h *Heap[T]) PeekRoot() (T, error) {
	v, ok := h.tree.Peek()
	if !ok {
		var zero T
		return zero, ErrEmptyCollection
	}

	return v.(T), nil
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.tree.Empty() }

// Size returns the number of elements.
func (h *Heap[T]) Size() int { return h.tree.Size() }

// Clear removes all elements.
func (h *Heap[T]) Clear() { h.tree.Clear() }

// Values returns the elements in internal (array) order, not sorted.
func (h *Heap[T]) Values() []T {
	raw := h.tree.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}

	return out
}
