package clique

import "github.com/solventlabs/cliquetabu/graph"

// Verify re-checks that every pair of vertices in members is mutually
// adjacent in g. This is the post-hoc verification the search driver runs
// on each restart result that becomes the new best: a failure here is
// reported, not fatal, since
// it flags a defect in the search rather than a precondition the caller
// violated.
// Complexity: O(|members|^2).
func Verify(g *graph.Graph, members map[int]struct{}) bool {
	vs := make([]int, 0, len(members))
	for v := range members {
		vs = append(vs, v)
	}
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !g.AreAdjacent(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}
