package clique

// blockingVertex returns the single Q-member in nonNeighbors[v], assuming
// tightness[v] == 1 (exactly one such member exists by I5).
func (s *State) blockingVertex(v int) int {
	for u := range s.nonNeighbors[v] {
		if s.IsClique(u) {
			return u
		}
	}
	panic(InvariantError("clique: blockingVertex: tightness/non-neighbor mismatch"))
}

type oneSwapCandidate struct {
	u, w int // u removed from Q, w added
}

// feasible1Swaps enumerates every (u, w) pair satisfying swap_1_1's
// precondition: w has tightness 1, its sole blocking vertex is u, u is not
// in the added-tabu window, and w is not in the removed-tabu window.
func (s *State) feasible1Swaps() []oneSwapCandidate {
	var out []oneSwapCandidate
	for i := s.q + 1; i < len(s.order); i++ {
		w := s.order[i]
		if s.tightness[w] != 1 {
			continue
		}
		u := s.blockingVertex(w)
		if s.tabu.IsAdded(u) || s.tabu.IsRemoved(w) {
			continue
		}
		out = append(out, oneSwapCandidate{u: u, w: w})
	}
	return out
}

// Swap1to1 replaces one clique member with a single outside vertex blocked
// by exactly that member, honoring the tabu windows. Returns false if no
// such pair is feasible.
// Complexity: O(n) to scan candidates/non-candidates for feasible pairs,
// plus O(|non-neighbors|) for the Add/Remove it performs.
func (s *State) Swap1to1() bool {
	cands := s.feasible1Swaps()
	if len(cands) == 0 {
		return false
	}

	choice := cands[0]
	if s.policy == RandomFeasible {
		choice = cands[s.rng.Intn(len(cands))]
	}

	s.RemoveFromClique(choice.u)
	s.AddToClique(choice.w)
	s.tabu.RestrictRemoved(choice.u)
	s.tabu.RestrictAdded(choice.w)
	return true
}

type twoSwapCandidate struct {
	u, a, b int // u removed from Q, a and b added
}

// feasible2Swaps enumerates every (u, a, b) triple satisfying swap_1_2's
// precondition: a and b both have tightness 1 with u as their sole
// blocking vertex, a and b are adjacent, u is not in the added-tabu
// window, and neither a nor b is in the removed-tabu window.
func (s *State) feasible2Swaps() []twoSwapCandidate {
	blockedBy := make(map[int][]int) // u -> tightness-1 vertices blocked solely by u
	for i := s.q + 1; i < len(s.order); i++ {
		w := s.order[i]
		if s.tightness[w] != 1 {
			continue
		}
		u := s.blockingVertex(w)
		if s.tabu.IsAdded(u) || s.tabu.IsRemoved(w) {
			continue
		}
		blockedBy[u] = append(blockedBy[u], w)
	}

	// Walk Q in qco order so the enumeration order does not depend on map
	// iteration.
	var out []twoSwapCandidate
	for k := 0; k <= s.q; k++ {
		u := s.order[k]
		blocked := blockedBy[u]
		for i := 0; i < len(blocked); i++ {
			for j := i + 1; j < len(blocked); j++ {
				a, b := blocked[i], blocked[j]
				if s.g.AreAdjacent(a, b) {
					out = append(out, twoSwapCandidate{u: u, a: a, b: b})
				}
			}
		}
	}
	return out
}

// Swap1to2 replaces one clique member with two mutually adjacent outside
// vertices both blocked solely by that member, honoring the tabu windows.
// Returns false if no such triple is feasible.
// Complexity: O(n^2) worst case to pair up same-blocker candidates, plus
// O(|non-neighbors|) for the Add/Remove it performs.
func (s *State) Swap1to2() bool {
	cands := s.feasible2Swaps()
	if len(cands) == 0 {
		return false
	}

	choice := cands[0]
	if s.policy == RandomFeasible {
		choice = cands[s.rng.Intn(len(cands))]
	}

	s.RemoveFromClique(choice.u)
	s.AddToClique(choice.a)
	s.AddToClique(choice.b)
	s.tabu.RestrictRemoved(choice.u)
	s.tabu.RestrictAdded(choice.a)
	s.tabu.RestrictAdded(choice.b)
	return true
}
