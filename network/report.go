package network

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a three-part text report: a 0/1 adjacency table, the vertex
// labels by index, and the weights of edges i→j for i < j.
// An empty network renders as "Graph is empty".
func (n *Network[T]) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	size := n.numVertices
	if size == 0 {
		return "Graph is empty"
	}

	var b strings.Builder

	// 1) Adjacency table.
	b.WriteString("Adjacency Matrix\n----------------\nindex\n\t")
	for i := 0; i < size; i++ {
		b.WriteString(strconv.Itoa(i))
		if i < 10 {
			b.WriteByte(' ')
		}
	}
	b.WriteString("\n\n")
	for i := 0; i < size; i++ {
		fmt.Fprintf(&b, "%d\t", i)
		for j := 0; j < size; j++ {
			if IsEdge(n.matrix[i][j]) {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
		}
		b.WriteByte('\n')
	}

	// 2) Labels.
	b.WriteString("\n\nVertex Values\n-------------\nindex\tvalue\n\n")
	for i := 0; i < size; i++ {
		fmt.Fprintf(&b, "%d\t%v\n", i, n.vertices[i])
	}

	// 3) Upper-triangle weights, highest column first.
	b.WriteString("\n\nWeights of Edges\n----------------\nindex\tweight\n\n")
	for i := 0; i < size; i++ {
		for j := size - 1; j > i; j-- {
			if w := n.matrix[i][j]; IsEdge(w) {
				fmt.Fprintf(&b, "%s\t%s\n", EdgeKey(i, j), FormatWeight(w))
			}
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// EdgeKey formats the "i to j" key used by reports and snapshots.
func EdgeKey(i, j int) string { return strconv.Itoa(i) + " to " + strconv.Itoa(j) }

// ParseEdgeKey parses an "i to j" key.
func ParseEdgeKey(key string) (int, int, error) {
	from, to, ok := strings.Cut(key, " to ")
	if !ok {
		return 0, 0, fmt.Errorf("network: malformed edge key %q", key)
	}
	i, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("network: malformed edge key %q: %w", key, err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("network: malformed edge key %q: %w", key, err)
	}

	return i, j, nil
}

// FormatWeight renders w in its shortest exact decimal form.
func FormatWeight(w float64) string { return strconv.FormatFloat(w, 'f', -1, 64) }
