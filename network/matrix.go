package network

import "fmt"

// Matrix is an immutable Order()×Order() copy of a network's weights.
// It implements View and is safe to share between goroutines, which makes
// it the input of choice for long-running or concurrent searches.
type Matrix struct {
	n    int
	data []float64 // row-major, len == n*n
}

// Snapshot copies the live part of the weight matrix.
// Complexity: O(V²).
func (n *Network[T]) Snapshot() *Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()

	size := n.numVertices
	data := make([]float64, size*size)
	for i := 0; i < size; i++ {
		copy(data[i*size:(i+1)*size], n.matrix[i][:size])
	}

	return &Matrix{n: size, data: data}
}

// NewMatrix builds a Matrix from rows. Every row must have len(rows)
// entries; NoEdge marks absent edges.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	size := len(rows)
	data := make([]float64, size*size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("network: row %d has %d columns, want %d", i, len(row), size)
		}
		copy(data[i*size:], row)
	}

	return &Matrix{n: size, data: data}, nil
}

// Order returns the number of vertices captured.
func (m *Matrix) Order() int { return m.n }

// Weight returns the directed weight i→j, or NoEdge when absent or out of range.
func (m *Matrix) Weight(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return NoEdge
	}

	return m.data[i*m.n+j]
}
