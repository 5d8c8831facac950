// Package heap provides an ordered-extraction container used by the path
// search engine: a binary heap parameterized by comparison direction.
//
// A Heap[T] is built with an Order (Min or Max) and a key function that maps
// each element to its float64 priority. ExtractTop always returns the element
// with the smallest key (Min) or the largest key (Max). Elements with equal
// keys are returned in an unspecified order unless the caller supplies a
// tie-break through NewWithTieBreak.
//
// Entry is the record type used by the search engine. Unlike a bare weight,
// an Entry carries the vertex it belongs to, so a popped value never has to
// be reconciled against the graph.
//
// Complexity:
//
//   - Insert, ExtractTop: O(log n)
//   - PeekRoot, IsEmpty, Size: O(1)
//   - Clear: O(1); Values: O(n)
//
// Errors:
//
//   - ErrEmptyCollection  ExtractTop or PeekRoot on an empty heap.
package heap

import (
	"errors"
	"math"
)

// ErrEmptyCollection is returned when extracting or peeking from an empty heap.
var ErrEmptyCollection = errors.New("heap: collection is empty")

// Order selects which end of the key range ExtractTop returns.
type Order int

const (
	// Min returns the smallest key first.
	Min Order = iota

	// Max returns the largest key first.
	Max
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// Worst returns the key value that loses against every other key under o:
// +Inf for Min, -Inf for Max.
func (o Order) Worst() float64 {
	if o == Max {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

// Better reports whether key a strictly beats key b under o.
func (o Order) Better(a, b float64) bool {
	if o == Max {
		return a > b
	}

	return a < b
}

// Entry pairs a vertex index with its current path weight.
type Entry struct {
	Vertex int
	Weight float64
}
