package heuristic

import (
	"github.com/solventlabs/cliquetabu/clique"
	"github.com/solventlabs/cliquetabu/graph"
)

// SaturationGuided grows s into a maximal clique using a DSATUR-derived
// priority: at each step it picks the surviving Candidate maximizing
// (saturation, candidate-degree, id), where saturation(v) is the number
// of distinct colors (from a precomputed DSATUR coloring) among v's
// neighbors that are still Candidates, and candidate-degree(v) is the
// count of v's neighbors still in the Candidate pool. This is DSATUR's
// own priority rule applied to the shrinking candidate pool instead of
// the shrinking uncolored-vertex pool, which is what keeps it
// differentiating between candidates: every surviving candidate is, by
// construction, adjacent to the whole current clique, so ranking by
// clique-adjacency alone can't break ties.
//
// colors must be a coloring of the same graph s was built over (the
// caller typically supplies coloring.DSATUR(g)).
//
// Complexity: O(n) outer steps, each recomputing the priority key of up
// to n candidates at O(deg) per key: O(n^3) worst case. This trades
// DSATUR's O(log n) decrease-key pop for a simpler full rescan.
func SaturationGuided(s *clique.State, colors []int) {
	for {
		cands := s.Candidates()
		if len(cands) == 0 {
			return
		}

		candidateSet := make(map[int]struct{}, len(cands))
		for _, v := range cands {
			candidateSet[v] = struct{}{}
		}

		best, bestSat, bestDeg := -1, -1, -1
		for _, v := range cands {
			sat, deg := saturationKey(s.Graph(), colors, v, candidateSet)
			if sat > bestSat || (sat == bestSat && deg > bestDeg) || (sat == bestSat && deg == bestDeg && v > best) {
				best, bestSat, bestDeg = v, sat, deg
			}
		}

		s.AddToClique(best)
	}
}

func saturationKey(g *graph.Graph, colors []int, v int, candidateSet map[int]struct{}) (sat, deg int) {
	seen := make(map[int]struct{})
	for u := range g.Neighbors(v) {
		if _, isCand := candidateSet[u]; !isCand {
			continue
		}
		deg++
		seen[colors[u]] = struct{}{}
	}
	return len(seen), deg
}
