// Package snapshot saves and restores a network.Network as a JSON document:
//
//	{
//	  "adjacencyMatrix": [[null, 2, ...], ...],            // V×V, null = no edge
//	  "vertexValues":    [{"index": 0, "value": "A"}, ...],
//	  "edgeWeights":     [{"index": "0 to 1", "weight": 2}, ...]
//	}
//
// edgeWeights repeats every finite matrix[i][j] with i < j, listed per row
// from the highest column down. It is redundant with the matrix and exists
// for readers that only want the upper triangle.
//
// Documents are checked against an embedded JSON Schema before decoding, so
// structural problems surface as ErrSchema with every violation listed.
// Semantic problems (row lengths, edge keys, indices) surface as ErrShape or
// ErrMalformedKey. A failed Decode leaves the target network untouched.
package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema indicates a document that does not match the snapshot schema.
	ErrSchema = errors.New("snapshot: document does not match schema")

	// ErrShape indicates inconsistent dimensions or out-of-range indices.
	ErrShape = errors.New("snapshot: inconsistent shape")

	// ErrMalformedKey indicates an edgeWeights key that is not "i to j".
	ErrMalformedKey = errors.New("snapshot: malformed edge key")
)

// Extension is appended by SaveFile when the path lacks it.
const Extension = ".json"

// Document is the wire form of a snapshot.
type Document struct {
	AdjacencyMatrix [][]*float64  `json:"adjacencyMatrix"`
	VertexValues    []VertexValue `json:"vertexValues"`
	EdgeWeights     []EdgeWeight  `json:"edgeWeights"`
}

// VertexValue pairs a vertex index with its label rendered as text.
type VertexValue struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// EdgeWeight is one "i to j" entry of the upper triangle.
type EdgeWeight struct {
	Index  string  `json:"index"`
	Weight float64 `json:"weight"`
}

// ParseFunc rebuilds a vertex label from its index and saved text.
type ParseFunc[T comparable] func(index int, value string) (T, error)

// StringLabel is the ParseFunc for string-labelled networks.
func StringLabel(_ int, value string) (string, error) { return value, nil }

// Option configures Decode.
type Option func(*options)

type options struct {
	symmetric bool
	format    func(any) string
}

// WithSymmetricWeights applies every edgeWeights entry in both directions,
// turning each upper-triangle edge into a two-way link. This matches maps
// whose every edge is bidirectional; for one-way maps it adds reverse edges.
func WithSymmetricWeights() Option {
	return func(o *options) { o.symmetric = true }
}

// WithFormatter overrides how Encode renders labels. The default is fmt.Sprint.
func WithFormatter(f func(any) string) Option {
	return func(o *options) {
		if f != nil {
			o.format = f
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{format: func(v any) string { return fmt.Sprint(v) }}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// edge is a decoded, validated mutation.
type edge struct {
	i, j int
	w    float64
}

// validEdge reports whether i and j address a vertex of an order-n network.
func validEdge(n, i, j int) bool { return i >= 0 && i < n && j >= 0 && j < n }
