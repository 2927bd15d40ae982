package clique

import "math/rand"

// InvariantError is the panic value raised when a caller violates one of
// the State's preconditions (adding a non-candidate, removing a
// non-member, and so on). These are programmer errors, not recoverable
// runtime conditions, so State panics instead of threading an error
// return through every call site.
type InvariantError string

// Error implements the error interface so recover()-based callers can
// still inspect the failure with the usual error machinery.
func (e InvariantError) Error() string {
	return string(e)
}

// SelectionPolicy controls how State picks among several feasible moves.
type SelectionPolicy int

const (
	// RandomFeasible enumerates every feasible move for a neighborhood and
	// picks uniformly at random among them. This is the policy the richer
	// driver configuration uses; it avoids deterministic cycling between a
	// small number of states.
	RandomFeasible SelectionPolicy = iota

	// FirstFeasible performs the first feasible move in a fixed scan of the
	// qco order: Move takes order[c], Swap1to1 the first eligible vertex
	// after position q, and Swap1to2 the first eligible pair blocked by the
	// earliest Q member. The choice is deterministic given a fixed State,
	// useful for a minimal driver configuration or for reproducing a
	// specific trace in tests.
	FirstFeasible
)

// Options configures a new clique State.
type Options struct {
	// AddedTabuCapacity is the window size of the "recently added" tabu
	// list. Must be >= 1; defaults to 3.
	AddedTabuCapacity int

	// RemovedTabuCapacity is the window size of the "recently removed"
	// tabu list. Must be >= 1; defaults to 1.
	RemovedTabuCapacity int

	// Selection is the move-selection policy for Move/Swap1to1/Swap1to2.
	// Defaults to RandomFeasible.
	Selection SelectionPolicy

	// Rand is the pseudo-random source used for RandomFeasible selection
	// and Perturb's vertex sampling. A nil Rand is resolved to a
	// default-seeded source, so randomness stays threaded through one
	// seeded stream rather than scattered process-global calls.
	Rand *rand.Rand
}

// Option mutates an Options value during construction.
type Option func(*Options)

// WithTabuCapacities overrides the added/removed tabu window sizes.
func WithTabuCapacities(added, removed int) Option {
	return func(o *Options) {
		o.AddedTabuCapacity = added
		o.RemovedTabuCapacity = removed
	}
}

// WithSelectionPolicy overrides the move-selection policy.
func WithSelectionPolicy(p SelectionPolicy) Option {
	return func(o *Options) { o.Selection = p }
}

// WithRand overrides the pseudo-random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

const (
	defaultAddedTabuCapacity   = 3
	defaultRemovedTabuCapacity = 1
)

// resolveOptions applies opts atop deterministic defaults.
func resolveOptions(opts []Option) Options {
	o := Options{
		AddedTabuCapacity:   defaultAddedTabuCapacity,
		RemovedTabuCapacity: defaultRemovedTabuCapacity,
		Selection:           RandomFeasible,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	return o
}
