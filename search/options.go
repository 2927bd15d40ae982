package search

import (
	"github.com/solventlabs/cliquetabu/clique"
	"github.com/solventlabs/cliquetabu/heuristic"
)

// Options configures a Run. The zero value is never used directly;
// resolveOptions applies DefaultOptions first and opts on top of that.
type Options struct {
	// Starts is the number of outer-loop restarts. Defaults to 300.
	Starts int

	// MaxSwaps bounds the inner loop's move/swap attempts per restart. The
	// richer driver uses 300; a minimal configuration uses 100.
	MaxSwaps int

	// EnableSwap12 toggles the 1-to-2 swap neighborhood. A minimal driver
	// configuration disables it.
	EnableSwap12 bool

	// EnablePerturbation toggles perturb-and-continue when a restart's
	// inner loop runs dry before MaxSwaps is exhausted. A minimal driver
	// configuration disables it, so the inner loop instead terminates the
	// first time move and swap_1_1 both return false.
	EnablePerturbation bool

	// Selection is the move-selection policy threaded into every restart's
	// clique.State.
	Selection clique.SelectionPolicy

	// TabuAddedCapacity and TabuRemovedCapacity size each restart's tabu
	// windows.
	TabuAddedCapacity   int
	TabuRemovedCapacity int

	// HeuristicVariant picks the initial-heuristic implementation.
	HeuristicVariant heuristic.Variant

	// Randomization is the RCL width (r) consulted by RandomGreedyVariant.
	Randomization int

	// Seed drives every restart's independent RNG stream via
	// rngutil.Derive. Zero resolves to a fixed default seed. The seed fixes
	// the random draws but not the whole run: clique.State walks
	// non-neighbor sets stored in Go maps, whose iteration order varies
	// between runs and shapes the vertex permutation those draws index
	// into, so two runs with the same seed can return different cliques on
	// a graph that is not complete.
	Seed int64

	// Observer receives progress callbacks during the search. Defaults to
	// a no-op.
	Observer Observer
}

// Option mutates an Options value during Run setup.
type Option func(*Options)

// WithStarts overrides the number of outer-loop restarts.
func WithStarts(n int) Option { return func(o *Options) { o.Starts = n } }

// WithMaxSwaps overrides the inner loop's attempt budget.
func WithMaxSwaps(n int) Option { return func(o *Options) { o.MaxSwaps = n } }

// WithSwap12 toggles the 1-to-2 swap neighborhood.
func WithSwap12(enabled bool) Option { return func(o *Options) { o.EnableSwap12 = enabled } }

// WithPerturbation toggles perturb-and-continue.
func WithPerturbation(enabled bool) Option {
	return func(o *Options) { o.EnablePerturbation = enabled }
}

// WithSelectionPolicy overrides the move-selection policy.
func WithSelectionPolicy(p clique.SelectionPolicy) Option {
	return func(o *Options) { o.Selection = p }
}

// WithTabuCapacities overrides both tabu window sizes.
func WithTabuCapacities(added, removed int) Option {
	return func(o *Options) {
		o.TabuAddedCapacity = added
		o.TabuRemovedCapacity = removed
	}
}

// WithHeuristic selects the initial-heuristic variant and, for
// RandomGreedyVariant, its randomization parameter r.
func WithHeuristic(variant heuristic.Variant, randomization int) Option {
	return func(o *Options) {
		o.HeuristicVariant = variant
		o.Randomization = randomization
	}
}

// WithSeed overrides the base seed every restart's RNG stream derives
// from.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithObserver overrides the progress observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// DefaultOptions returns the richer driver configuration: 300 starts, 300
// max swaps, both swap neighborhoods and perturbation enabled,
// random-among-feasible selection, Ca=3/Cr=1 tabu windows, and the
// random-greedy heuristic with a modest RCL width.
func DefaultOptions() Options {
	return Options{
		Starts:              300,
		MaxSwaps:            300,
		EnableSwap12:        true,
		EnablePerturbation:  true,
		Selection:           clique.RandomFeasible,
		TabuAddedCapacity:   3,
		TabuRemovedCapacity: 1,
		HeuristicVariant:    heuristic.RandomGreedyVariant,
		Randomization:       4,
		Observer:            noopObserver{},
	}
}

// MinimalOptions returns the minimal driver configuration: swap_1_2 and
// perturbation disabled, a smaller inner-loop budget, and deterministic
// first-feasible selection. The inner loop then terminates the first time
// move and swap_1_1 both fail.
func MinimalOptions() Options {
	o := DefaultOptions()
	o.MaxSwaps = 100
	o.EnableSwap12 = false
	o.EnablePerturbation = false
	o.Selection = clique.FirstFeasible
	return o
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Observer == nil {
		o.Observer = noopObserver{}
	}
	return o
}
