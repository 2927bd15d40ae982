// Package search implements the multi-start tabu-enhanced local search
// driver: it repeatedly seeds a fresh clique.State with the configured
// initial heuristic, then alternates Move/Swap1to1/Swap1to2 under tabu
// restriction, perturbing and continuing when the neighborhood runs dry,
// and keeps the largest clique any restart produced.
package search

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/solventlabs/cliquetabu/clique"
	"github.com/solventlabs/cliquetabu/graph"
	"github.com/solventlabs/cliquetabu/heuristic"
	"github.com/solventlabs/cliquetabu/internal/rngutil"
)

// Result is the outcome of a Run: the best clique found across every
// restart, its size, and whether the post-hoc verifier accepted it.
type Result struct {
	Clique   map[int]struct{}
	Size     int
	Verified bool
}

// Run performs the multi-start search over g and returns the largest
// clique found. ctx is checked once per restart, between outer-loop
// iterations, never inside a restart's inner loop: cancellation ends the
// search early with whatever best-so-far result it has, it never aborts
// a restart partway through a move.
func Run(ctx context.Context, g *graph.Graph, opts ...Option) Result {
	o := resolveOptions(opts)
	baseRNG := rngutil.FromSeed(o.Seed)

	best := Result{Clique: map[int]struct{}{}, Size: 0, Verified: true}

	for restart := 0; restart < o.Starts; restart++ {
		if ctx.Err() != nil {
			break
		}

		rng := rngutil.Derive(baseRNG, uint64(restart))
		o.Observer.OnRestartStart(restart)

		members := runRestart(g, o, rng, restart)

		o.Observer.OnRestartEnd(restart, len(members))
		if len(members) > best.Size {
			best = Result{
				Clique:   members,
				Size:     len(members),
				Verified: clique.Verify(g, members),
			}
			if !best.Verified {
				slog.Warn("search: restart produced an unverified clique",
					"restart", restart, "size", best.Size)
			}
		}
	}

	return best
}

// runRestart builds a fresh clique.State, seeds it with the configured
// initial heuristic, and runs the inner move/swap/perturb loop up to
// o.MaxSwaps attempts. It returns the largest clique the restart reached
// at any point, not just the final state: a perturbation shrinks Q, so
// the local optimum is snapshotted before each perturb.
func runRestart(g *graph.Graph, o Options, rng *rand.Rand, restart int) map[int]struct{} {
	s := clique.New(g,
		clique.WithTabuCapacities(o.TabuAddedCapacity, o.TabuRemovedCapacity),
		clique.WithSelectionPolicy(o.Selection),
		clique.WithRand(rng),
	)

	heuristic.Apply(o.HeuristicVariant, s, g, o.Randomization, rng)

	best := s.Clique()
	for attempt := 0; attempt < o.MaxSwaps; attempt++ {
		switch {
		case s.Move():
			o.Observer.OnMove(restart)
		case s.Swap1to1():
			o.Observer.OnSwap(restart, "1to1")
		case o.EnableSwap12 && s.Swap1to2():
			o.Observer.OnSwap(restart, "1to2")
		default:
			// Local optimum: every enabled neighborhood is exhausted.
			if s.CliqueSize() > len(best) {
				best = s.Clique()
			}
			if !o.EnablePerturbation {
				return best
			}
			k := perturbSize(s.CliqueSize(), rng)
			s.Perturb(k)
			o.Observer.OnPerturb(restart, k)
		}
	}

	if s.CliqueSize() > len(best) {
		best = s.Clique()
	}
	return best
}

// perturbSize picks round(uniform(0.3*size, 0.7*size)).
func perturbSize(size int, rng *rand.Rand) int {
	lo, hi := 0.3*float64(size), 0.7*float64(size)
	return int(math.Round(lo + rng.Float64()*(hi-lo)))
}
