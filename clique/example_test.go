package clique_test

import (
	"fmt"

	"github.com/solventlabs/cliquetabu/clique"
	"github.com/solventlabs/cliquetabu/graph"
)

// ExampleState demonstrates growing a clique on K4 to completion using the
// deterministic first-feasible selection policy.
func ExampleState() {
	g, _ := graph.New(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j)
		}
	}

	s := clique.New(g, clique.WithSelectionPolicy(clique.FirstFeasible))
	for s.Move() {
	}

	fmt.Println("Clique size:", s.CliqueSize())
	fmt.Println("Valid clique:", clique.Verify(g, s.Clique()))

	// Output:
	// Clique size: 4
	// Valid clique: true
}

// ExampleVerify shows the post-hoc verifier rejecting a non-clique vertex
// set.
func ExampleVerify() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	members := map[int]struct{}{0: {}, 1: {}, 2: {}}
	fmt.Println(clique.Verify(g, members))

	// Output:
	// false
}
