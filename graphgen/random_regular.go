package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/solventlabs/cliquetabu/graph"
)

const (
	minRandomRegularVertices = 1
	maxStubMatchingAttempts  = 100
)

// RandomRegular builds an undirected d-regular simple graph over n vertices
// via stub-matching: a list of n*d stubs (each vertex repeated d times) is
// shuffled and paired consecutively; a pairing with a self-loop or a
// duplicate edge is discarded and reshuffled, for at most
// maxStubMatchingAttempts attempts in total.
func RandomRegular(n, d int, rng *rand.Rand) (*graph.Graph, error) {
	if n < minRandomRegularVertices {
		return nil, fmt.Errorf("RandomRegular: n=%d < min=%d: %w", n, minRandomRegularVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("RandomRegular: degree must be in [0,%d), got %d: %w", n, d, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("RandomRegular: n*d must be even (n=%d, d=%d): %w", n, d, ErrTooFewVertices)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomRegular: %w", ErrNeedRandSource)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("RandomRegular: %w", err)
	}

	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}

	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			if err := g.AddEdge(stubs[i], stubs[i+1]); err != nil {
				return nil, fmt.Errorf("RandomRegular: AddEdge(%d,%d): %w", stubs[i], stubs[i+1], err)
			}
		}
		return g, nil
	}

	return nil, fmt.Errorf("RandomRegular: failed to construct after %d attempts: %w", maxStubMatchingAttempts, ErrConstructFailed)
}
