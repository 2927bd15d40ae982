package clique

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/cliquetabu/graph"
)

func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	return g
}

func c4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// S1: K4, after construction q=-1, c=3, every tightness=0. After move four
// times, Q={0,1,2,3}; move returns false thereafter; verifier passes.
func TestS1_K4MoveToCompletion(t *testing.T) {
	g := k4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))

	require.Equal(t, 0, s.CliqueSize())
	for v := 0; v < 4; v++ {
		require.Equal(t, 0, s.Tightness(v))
	}

	for i := 0; i < 4; i++ {
		require.True(t, s.Move())
	}
	require.False(t, s.Move())
	require.Equal(t, 4, s.CliqueSize())
	require.True(t, Verify(g, s.Clique()))
}

// S2: C4, maximum clique size is 2; any run returns one of the four edges.
func TestS2_C4MaxCliqueIsAnEdge(t *testing.T) {
	g := c4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))

	for s.Move() {
	}
	require.Equal(t, 2, s.CliqueSize())
	require.True(t, Verify(g, s.Clique()))

	clique := s.Clique()
	valid := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	found := false
	for _, e := range valid {
		if _, a := clique[e[0]]; a {
			if _, b := clique[e[1]]; b && len(clique) == 2 {
				found = true
			}
		}
	}
	require.True(t, found)
}

// P1: after any sequence of ops, pos[v] <= q forms a clique.
func TestP1_CliqueInvariantUnderRandomOps(t *testing.T) {
	g := randomGraph(t, 12, 0.5, 1)
	s := New(g, WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 200; i++ {
		switch i % 5 {
		case 0, 1:
			s.Move()
		case 2:
			s.Swap1to1()
		case 3:
			s.Swap1to2()
		case 4:
			if s.CliqueSize() > 0 {
				s.Perturb(1)
			}
		}
		require.True(t, Verify(g, s.Clique()))
	}
}

// P2/I5: for every v outside Q, tightness[v] equals the exact count of v's
// non-neighbors inside Q.
func TestP2_TightnessMatchesNonNeighborCount(t *testing.T) {
	g := randomGraph(t, 10, 0.4, 2)
	s := New(g, WithRand(rand.New(rand.NewSource(7))))

	for i := 0; i < 50; i++ {
		s.Move()
		assertTightnessInvariant(t, s, g)
	}
}

func assertTightnessInvariant(t *testing.T, s *State, g *graph.Graph) {
	t.Helper()
	clique := s.Clique()
	for v := 0; v < g.N(); v++ {
		if _, inQ := clique[v]; inQ {
			continue
		}
		count := 0
		for u := range clique {
			if !g.AreAdjacent(v, u) {
				count++
			}
		}
		require.Equal(t, count, s.Tightness(v), "vertex %d", v)
	}
}

// P3: pos/order are mutually inverse bijections.
func TestP3_PosOrderBijection(t *testing.T) {
	g := randomGraph(t, 9, 0.5, 3)
	s := New(g, WithRand(rand.New(rand.NewSource(9))))

	for i := 0; i < 30; i++ {
		s.Move()
		s.Swap1to1()
		for idx, v := range s.order {
			require.Equal(t, idx, s.pos[v])
		}
		for v, idx := range s.pos {
			require.Equal(t, v, s.order[idx])
		}
	}
}

// P4: move() returns true iff some vertex outside Q has tightness 0.
func TestP4_MoveReturnsTrueIffCandidateExists(t *testing.T) {
	g := k4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))

	for {
		hasCandidate := s.hasCandidates()
		ok := s.Move()
		require.Equal(t, hasCandidate, ok)
		if !ok {
			break
		}
	}
}

// P9: add_to_clique(v); remove_from_clique(v) restores cursors and
// tightness to their prior values, and the Candidates partition holds the
// same vertices (the permutation order inside it may differ).
func TestP9_AddRemoveRoundTrips(t *testing.T) {
	g := randomGraph(t, 8, 0.5, 4)
	s := New(g)

	beforeQ, beforeC := s.q, s.c
	beforeTightness := append([]int(nil), s.tightness...)
	beforeCandidates := s.Candidates()

	v := s.order[s.q+1]
	s.AddToClique(v)
	s.RemoveFromClique(v)

	require.Equal(t, beforeQ, s.q)
	require.Equal(t, beforeC, s.c)
	require.Equal(t, beforeTightness, s.tightness)
	require.ElementsMatch(t, beforeCandidates, s.Candidates())
}

// P10: perturb(0) is a no-op on the clique (tabu still cleared).
func TestP10_PerturbZeroIsNoOp(t *testing.T) {
	g := k4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))
	s.Move()
	s.Move()

	before := s.Clique()
	s.tabu.RestrictAdded(0)
	s.Perturb(0)

	require.Equal(t, before, s.Clique())
	require.False(t, s.tabu.IsAdded(0))
}

// S4: K5, add(0); add(1); add(2); remove(1) leaves Q={0,2} with every
// v outside Q a Candidate at tightness 0.
func TestS4_RemoveRestoresCandidates(t *testing.T) {
	g, err := graph.New(5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	s := New(g)
	s.AddToClique(0)
	s.AddToClique(1)
	s.AddToClique(2)
	s.RemoveFromClique(1)

	require.Equal(t, map[int]struct{}{0: {}, 2: {}}, s.Clique())
	for v := 0; v < 5; v++ {
		if _, inQ := s.Clique()[v]; inQ {
			continue
		}
		require.Equal(t, 0, s.Tightness(v))
		require.True(t, s.IsCandidate(v))
	}
}

// S5: a graph where vertex 3 is a non-neighbor of exactly one Q member;
// swap_1_1 removes that member and adds vertex 3, then both land in their
// respective tabu windows.
func TestS5_Swap1to1RestrictsBothVertices(t *testing.T) {
	// Triangle {0,1,2} plus vertex 3 adjacent to everyone except 1.
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(2, 3))

	s := New(g, WithSelectionPolicy(FirstFeasible))
	s.AddToClique(0)
	s.AddToClique(1)
	s.AddToClique(2)
	// Q={0,1,2}; vertex 3 is blocked solely by 1 (tightness[3]==1).
	require.Equal(t, 1, s.Tightness(3))

	require.True(t, s.Swap1to1())
	require.Contains(t, s.Clique(), 3)
	require.NotContains(t, s.Clique(), 1)
	require.True(t, s.tabu.IsRemoved(1))
	require.True(t, s.tabu.IsAdded(3))
}

func TestAddToClique_NonCandidatePanics(t *testing.T) {
	g := k4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))
	s.Move() // adds order[c]==3

	require.Panics(t, func() { s.AddToClique(3) })
}

func TestRemoveFromClique_NonMemberPanics(t *testing.T) {
	g := k4(t)
	s := New(g, WithSelectionPolicy(FirstFeasible))

	require.Panics(t, func() { s.RemoveFromClique(0) })
}

// randomGraph builds a deterministic pseudo-random graph on n vertices
// with edge probability p, seeded by seed.
func randomGraph(t *testing.T, n int, p float64, seed int64) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				require.NoError(t, g.AddEdge(i, j))
			}
		}
	}
	return g
}
