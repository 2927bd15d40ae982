// Package clique implements the QCO (Quick Candidate Ordering) clique
// state engine: the index-partitioned vertex permutation that jointly
// tracks the current clique Q, the candidate set C⊇Q, and per-vertex
// tightness, together with the Add/Remove/Move/Swap operations the tabu
// search driver composes into a full local search.
//
// The engine is the hardest-to-get-right part of this module: every
// public mutator must leave the QCO invariants intact —
//
//	(I1) Q is a clique.
//	(I2) Candidates are exactly the vertices outside Q with tightness 0.
//	(I3) Non-candidates are exactly the vertices outside Q with tightness >= 1.
//	(I4) pos and order are mutually inverse bijections.
//	(I5) tightness[v] == |non-neighbors(v) ∩ Q| for every v.
//
// — and the swap-with-boundary discipline (swapPositions plus cursor
// adjustment) is what keeps Add/Remove O(1) amortized per affected
// non-neighbor instead of falling back to recomputing set differences.
package clique

import (
	"fmt"

	"github.com/solventlabs/cliquetabu/graph"
	"github.com/solventlabs/cliquetabu/internal/tabu"
)

// State is the QCO clique engine for a single search restart. It owns its
// tabu memory exclusively and is never shared across restarts: callers
// build a fresh State per restart via New.
type State struct {
	g *graph.Graph

	// nonNeighbors[v] = V \ ({v} ∪ adjacency(v)), precomputed once and
	// immutable thereafter.
	nonNeighbors []map[int]struct{}

	order     []int // qco_: order[i] is the vertex at permutation index i
	pos       []int // index_: pos[v] is the permutation index of vertex v
	tightness []int

	q int // index of the last clique member, or -1 if Q is empty
	c int // index of the last candidate, or q if there are no candidates

	tabu     *tabu.Memory
	policy   SelectionPolicy
	rng      randSource
}

// New builds a State over g with every vertex initially a Candidate and Q
// empty. Complexity: O(n^2) to precompute the non-neighbor mirror.
func New(g *graph.Graph, opts ...Option) *State {
	o := resolveOptions(opts)
	n := g.N()

	s := &State{
		g:            g,
		nonNeighbors: make([]map[int]struct{}, n),
		order:        make([]int, n),
		pos:          make([]int, n),
		tightness:    make([]int, n),
		q:            -1,
		c:            n - 1,
		tabu:         tabu.New(o.AddedTabuCapacity, o.RemovedTabuCapacity),
		policy:       o.Selection,
		rng:          o.Rand,
	}

	for v := 0; v < n; v++ {
		mirror := make(map[int]struct{})
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			if !g.AreAdjacent(v, u) {
				mirror[u] = struct{}{}
			}
		}
		s.nonNeighbors[v] = mirror

		s.order[v] = v
		s.pos[v] = v
		s.tightness[v] = 0
	}

	return s
}

// randSource is the subset of *rand.Rand used by this package, so tests
// can swap in deterministic sequences without faking a full Rand.
type randSource interface {
	Intn(n int) int
}

func (s *State) inRange(v int) bool {
	return v >= 0 && v < len(s.order)
}

// IsClique reports whether v currently belongs to Q.
func (s *State) IsClique(v int) bool {
	if !s.inRange(v) {
		return false
	}
	return s.pos[v] <= s.q
}

// IsCandidate reports whether v is currently a Candidate (tightness 0,
// outside Q).
func (s *State) IsCandidate(v int) bool {
	if !s.inRange(v) {
		return false
	}
	p := s.pos[v]
	return p > s.q && p <= s.c
}

// hasCandidates reports whether the Candidates partition is non-empty.
func (s *State) hasCandidates() bool {
	return s.c > s.q
}

func (s *State) swapPositions(i, j int) {
	a, b := s.order[i], s.order[j]
	s.order[i], s.order[j] = b, a
	s.pos[a], s.pos[b] = j, i
}

// AddToClique moves v from Candidates into Q, updating the tightness of
// every non-neighbor of v and demoting any that become non-candidates.
// Precondition: v must currently be a Candidate; violating this panics
// with an InvariantError.
// Complexity: O(|non-neighbors(v)|).
func (s *State) AddToClique(v int) {
	if !s.IsCandidate(v) {
		panic(InvariantError(fmt.Sprintf("clique: AddToClique(%d): vertex is not a candidate", v)))
	}

	pv := s.pos[v]
	s.q++
	s.swapPositions(pv, s.q)

	for u := range s.nonNeighbors[v] {
		if s.tightness[u] == 0 {
			s.removeFromCandidates(u)
		}
		s.tightness[u]++
	}
}

// RemoveFromClique moves v out of Q back into Candidates or Non-cands as
// appropriate, decrementing the tightness of every non-neighbor of v and
// promoting any that reach zero back into Candidates.
// Precondition: v must currently be in Q.
// Complexity: O(|non-neighbors(v)|).
func (s *State) RemoveFromClique(v int) {
	if !s.IsClique(v) {
		panic(InvariantError(fmt.Sprintf("clique: RemoveFromClique(%d): vertex is not in the clique", v)))
	}

	pv := s.pos[v]
	s.swapPositions(pv, s.q)
	s.q--

	for u := range s.nonNeighbors[v] {
		s.tightness[u]--
		if s.tightness[u] == 0 {
			s.addToCandidates(u)
		}
	}
}

// addToCandidates moves a Non-cand vertex into the Candidates partition.
// Precondition: v must not already be a Candidate (checked by callers via
// the tightness==0 transition).
func (s *State) addToCandidates(v int) {
	s.c++
	s.swapPositions(s.pos[v], s.c)
}

// removeFromCandidates moves a Candidate vertex into the Non-cands
// partition.
// Precondition: v must currently be a Candidate.
func (s *State) removeFromCandidates(v int) {
	s.swapPositions(s.pos[v], s.c)
	s.c--
}

// Move extends Q by one Candidate, chosen per the configured
// SelectionPolicy: RandomFeasible picks uniformly among positions
// [q+1, c], FirstFeasible always takes order[c]. Returns false if there
// are no Candidates.
// Complexity: O(|non-neighbors(chosen vertex)|).
func (s *State) Move() bool {
	if !s.hasCandidates() {
		return false
	}

	idx := s.c
	if s.policy == RandomFeasible {
		width := s.c - s.q
		idx = s.q + 1 + s.rng.Intn(width)
	}

	v := s.order[idx]
	s.AddToClique(v)
	return true
}

// Perturb removes min(k, |Q|) vertices chosen uniformly at random from Q,
// then clears the tabu memory. Perturb(0) is a no-op on the clique itself
// (the tabu memory is still cleared).
// Complexity: O(k * average non-neighbors).
func (s *State) Perturb(k int) {
	remove := k
	if size := s.CliqueSize(); remove > size {
		remove = size
	}

	for i := 0; i < remove; i++ {
		// Q currently occupies order[0..q]; pick one uniformly at random.
		idx := s.rng.Intn(s.q + 1)
		s.RemoveFromClique(s.order[idx])
	}

	s.tabu.Clear()
}

// Clique returns the vertex set currently held in Q.
// Complexity: O(|Q|).
func (s *State) Clique() map[int]struct{} {
	out := make(map[int]struct{}, s.q+1)
	for i := 0; i <= s.q; i++ {
		out[s.order[i]] = struct{}{}
	}
	return out
}

// CliqueSize returns |Q|.
func (s *State) CliqueSize() int {
	return s.q + 1
}

// Candidates returns a snapshot of the current Candidates partition, in
// qco order. The initial heuristic and the search driver use this to pick
// seed/extension vertices without reaching into State internals.
func (s *State) Candidates() []int {
	out := make([]int, s.c-s.q)
	copy(out, s.order[s.q+1:s.c+1])
	return out
}

// Tightness returns the current tightness of v (0 if v is in Q or is a
// Candidate).
func (s *State) Tightness(v int) int {
	return s.tightness[v]
}

// Graph returns the underlying graph the state was built over.
func (s *State) Graph() *graph.Graph {
	return s.g
}
