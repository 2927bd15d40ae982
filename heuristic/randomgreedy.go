// Package heuristic implements the two initial-heuristic variants used to
// seed a clique.State before the tabu search's local moves take over:
// random-greedy (randomization parameter r) and saturation-guided
// (DSATUR-driven).
package heuristic

import (
	"math/rand"

	"github.com/solventlabs/cliquetabu/clique"
)

// RandomGreedy grows s into a maximal clique by repeatedly picking a
// vertex uniformly at random from a restricted candidate list of size
// min(r, |candidates|) and adding it via s.AddToClique. r must be >= 1;
// r == 1 degenerates to always taking the first candidate after a fresh
// shuffle, which is still randomized across calls since the shuffle
// itself is seeded from rng.
//
// Complexity: O(n) restarts of the restricted-candidate selection, each
// O(k) to shuffle a candidate snapshot of size k, plus the usual
// O(|non-neighbors(v)|) per AddToClique.
func RandomGreedy(s *clique.State, r int, rng *rand.Rand) {
	if r < 1 {
		r = 1
	}

	for {
		cands := s.Candidates()
		if len(cands) == 0 {
			return
		}

		rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

		width := r
		if width > len(cands) {
			width = len(cands)
		}

		v := cands[rng.Intn(width)]
		s.AddToClique(v)
	}
}
