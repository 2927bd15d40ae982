package graphgen

import (
	"fmt"

	"github.com/solventlabs/cliquetabu/graph"
)

const minCycleVertices = 3

// Cycle builds the n-vertex simple cycle C_n: vertex i is adjacent to
// (i+1)%n for every i. n must be at least 3.
func Cycle(n int) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}
	return g, nil
}
