package network

import "fmt"

// AddEdgeBetween adds the directed edge a→b by label.
// Returns ErrVertexNotFound if either label is absent.
func (n *Network[T]) AddEdgeBetween(a, b T, weight float64) error {
	i, j, err := n.pair(a, b)
	if err != nil {
		return err
	}

	return n.AddEdge(i, j, weight)
}

// RemoveEdgeBetween clears both directions between a and b by label.
func (n *Network[T]) RemoveEdgeBetween(a, b T) error {
	i, j, err := n.pair(a, b)
	if err != nil {
		return err
	}

	return n.RemoveEdge(i, j)
}

// RemoveVertexLabel removes the first vertex equal to label.
func (n *Network[T]) RemoveVertexLabel(label T) error {
	i := n.IndexOf(label)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, label)
	}

	return n.RemoveVertex(i)
}

func (n *Network[T]) pair(a, b T) (int, int, error) {
	i := n.IndexOf(a)
	if i < 0 {
		return -1, -1, fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	j := n.IndexOf(b)
	if j < 0 {
		return -1, -1, fmt.Errorf("%w: %v", ErrVertexNotFound, b)
	}

	return i, j, nil
}
