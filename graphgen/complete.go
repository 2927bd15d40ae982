package graphgen

import (
	"fmt"

	"github.com/solventlabs/cliquetabu/graph"
)

const minCompleteVertices = 1

// Complete builds the complete simple graph K_n: every pair of distinct
// vertices is adjacent. n must be at least 1.
func Complete(n int) (*graph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}
