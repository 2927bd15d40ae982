// Package graphgen builds synthetic fixtures (complete graphs, cycles,
// Erdos-Renyi samples, d-regular graphs) over the dense graph.Graph
// representation, for use by tests and ad-hoc benchmarking without a
// DIMACS file. The cliquetabu command does not use it.
//
// Error policy mirrors the rest of this module: only sentinel errors are
// exposed, callers branch with errors.Is, and sentinels are never wrapped
// with formatted strings at the definition site.
package graphgen

import "errors"

// ErrTooFewVertices indicates a vertex count or degree parameter is smaller
// than the minimum the requested generator requires.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates a probability value lies outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic generator was called with a nil
// *rand.Rand.
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// ErrConstructFailed indicates a generator exhausted its bounded retry
// budget without producing a graph that satisfies its contract.
var ErrConstructFailed = errors.New("graphgen: construction failed")
