// Package tabu implements the clique engine's short-memory tabu list: two
// bounded recency sets that forbid immediately undoing a swap move.
package tabu

import "github.com/solventlabs/cliquetabu/internal/recency"

// Memory tracks recently added and recently removed vertices. A vertex
// recorded in the "added" side must not be removed from the clique by a
// swap; a vertex recorded in the "removed" side must not be re-added. Both
// windows are independent bounded recency.Set instances.
type Memory struct {
	added   *recency.Set[int]
	removed *recency.Set[int]
}

// New builds a Memory whose "added" window holds addedCapacity vertices and
// whose "removed" window holds removedCapacity vertices. Both capacities
// must be >= 1 (recency.New panics otherwise): a tabu window narrower than
// one vertex forbids nothing.
func New(addedCapacity, removedCapacity int) *Memory {
	return &Memory{
		added:   recency.New[int](addedCapacity),
		removed: recency.New[int](removedCapacity),
	}
}

// RestrictAdded records v as recently added to the clique.
func (m *Memory) RestrictAdded(v int) {
	m.added.Insert(v)
}

// RestrictRemoved records v as recently removed from the clique.
func (m *Memory) RestrictRemoved(v int) {
	m.removed.Insert(v)
}

// IsAdded reports whether v is within the recently-added tabu window.
func (m *Memory) IsAdded(v int) bool {
	return m.added.Contains(v)
}

// IsRemoved reports whether v is within the recently-removed tabu window.
func (m *Memory) IsRemoved(v int) bool {
	return m.removed.Contains(v)
}

// Clear empties both windows. Called on perturbation, since a diversification
// step invalidates whatever moves the tabu memory was guarding against.
func (m *Memory) Clear() {
	m.added.Clear()
	m.removed.Clear()
}
