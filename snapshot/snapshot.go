package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/netpath/network"
)

// Build converts net into a Document. Labels are rendered with fmt.Sprint
// unless WithFormatter says otherwise.
func Build[T comparable](net *network.Network[T], opts ...Option) Document {
	o := buildOptions(opts)
	m := net.Snapshot()
	labels := net.Vertices()
	n := min(m.Order(), len(labels))

	doc := Document{
		AdjacencyMatrix: make([][]*float64, n),
		VertexValues:    make([]VertexValue, n),
		EdgeWeights:     []EdgeWeight{},
	}
	for i := 0; i < n; i++ {
		row := make([]*float64, n)
		for j := 0; j < n; j++ {
			if w := m.Weight(i, j); network.IsEdge(w) {
				row[j] = &w
			}
		}
		doc.AdjacencyMatrix[i] = row
		doc.VertexValues[i] = VertexValue{Index: i, Value: o.format(labels[i])}
	}
	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			if w := m.Weight(i, j); network.IsEdge(w) {
				doc.EdgeWeights = append(doc.EdgeWeights, EdgeWeight{Index: network.EdgeKey(i, j), Weight: w})
			}
		}
	}

	return doc
}

// Encode writes net to w as a single JSON document.
func Encode[T comparable](w io.Writer, net *network.Network[T], opts ...Option) error {
	if err := json.NewEncoder(w).Encode(Build(net, opts...)); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return nil
}

// Decode reads a document from r, validates it and restores it into net.
func Decode[T comparable](r io.Reader, net *network.Network[T], parse ParseFunc[T], opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("snapshot: read: %w", err)
	}
	if err = Validate(data); err != nil {
		return err
	}

	var doc Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return Restore(net, doc, parse, opts...)
}

// Restore replaces the contents of net with doc. Vertices are added in index
// order, then matrix edges one direction at a time, then edgeWeights entries
// (both directions under WithSymmetricWeights). Nothing is changed unless
// the whole document is consistent.
func Restore[T comparable](net *network.Network[T], doc Document, parse ParseFunc[T], opts ...Option) error {
	o := buildOptions(opts)

	labels, err := restoreLabels(doc.VertexValues, parse)
	if err != nil {
		return err
	}
	edges, err := restoreEdges(doc, len(labels), o.symmetric)
	if err != nil {
		return err
	}

	net.Clear()
	for _, label := range labels {
		net.AddVertex(label)
	}
	for _, e := range edges {
		if err = net.AddEdge(e.i, e.j, e.w); err != nil {
			return err
		}
	}

	return nil
}

func restoreLabels[T comparable](values []VertexValue, parse ParseFunc[T]) ([]T, error) {
	n := len(values)
	labels := make([]T, n)
	seen := make([]bool, n)
	for _, v := range values {
		if v.Index < 0 || v.Index >= n || seen[v.Index] {
			return nil, fmt.Errorf("%w: vertex index %d among %d values", ErrShape, v.Index, n)
		}
		label, err := parse(v.Index, v.Value)
		if err != nil {
			return nil, fmt.Errorf("snapshot: vertex %d: %w", v.Index, err)
		}
		labels[v.Index] = label
		seen[v.Index] = true
	}

	return labels, nil
}

func restoreEdges(doc Document, n int, symmetric bool) ([]edge, error) {
	if len(doc.AdjacencyMatrix) != n {
		return nil, fmt.Errorf("%w: %d matrix rows for %d vertices", ErrShape, len(doc.AdjacencyMatrix), n)
	}

	var edges []edge
	for i, row := range doc.AdjacencyMatrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), n)
		}
		for j, w := range row {
			if w != nil {
				edges = append(edges, edge{i: i, j: j, w: *w})
			}
		}
	}

	for _, ew := range doc.EdgeWeights {
		i, j, err := network.ParseEdgeKey(ew.Index)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, ew.Index)
		}
		if !validEdge(n, i, j) {
			return nil, fmt.Errorf("%w: edge %q outside %d vertices", ErrShape, ew.Index, n)
		}
		edges = append(edges, edge{i: i, j: j, w: ew.Weight})
		if symmetric {
			edges = append(edges, edge{i: j, j: i, w: ew.Weight})
		}
	}

	return edges, nil
}

// SaveFile writes net to path, appending Extension when missing, and
// returns the path written.
func SaveFile[T comparable](path string, net *network.Network[T], opts ...Option) (string, error) {
	if !strings.HasSuffix(path, Extension) {
		path += Extension
	}

	var buf bytes.Buffer
	if err := Encode(&buf, net, opts...); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("snapshot: save %s: %w", path, err)
	}

	return path, nil
}

// LoadFile restores net from the document at path.
func LoadFile[T comparable](path string, net *network.Network[T], parse ParseFunc[T], opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snapshot: load %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, net, parse, opts...)
}
