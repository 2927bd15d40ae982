package heuristic

import (
	"math/rand"

	"github.com/solventlabs/cliquetabu/clique"
	"github.com/solventlabs/cliquetabu/coloring"
	"github.com/solventlabs/cliquetabu/graph"
)

// Variant selects which initial-heuristic implementation seeds a restart.
type Variant int

const (
	// RandomGreedyVariant seeds via RandomGreedy.
	RandomGreedyVariant Variant = iota
	// SaturationGuidedVariant seeds via SaturationGuided, driven by a fresh
	// DSATUR coloring of the graph.
	SaturationGuidedVariant
)

// Apply grows s to a maximal clique using the configured variant.
// randomization is only consulted by RandomGreedyVariant.
func Apply(variant Variant, s *clique.State, g *graph.Graph, randomization int, rng *rand.Rand) {
	switch variant {
	case SaturationGuidedVariant:
		SaturationGuided(s, coloring.DSATUR(g))
	default:
		RandomGreedy(s, randomization, rng)
	}
}
