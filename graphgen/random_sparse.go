package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/solventlabs/cliquetabu/graph"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdos-Renyi graph over n vertices: each of the
// n*(n-1)/2 unordered pairs is joined independently with probability p.
// Pairs are visited in stable (i asc, j>i asc) order so the result is
// deterministic for a given rng stream.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > 0.0 && p < 1.0 {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparse: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1.0
			if rng != nil {
				include = rng.Float64() <= p
			}
			if !include {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}
