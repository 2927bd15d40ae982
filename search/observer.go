package search

// Observer receives progress callbacks during a Run, mirroring the shape
// of a metrics-collection hook: every method is called synchronously from
// the search loop, so an Observer must not block for long or it will
// stall the whole run. The zero-value noopObserver is used when a caller
// does not supply one.
type Observer interface {
	// OnRestartStart fires at the top of each outer-loop restart, before
	// the initial heuristic runs.
	OnRestartStart(restart int)

	// OnMove fires after a successful Move.
	OnMove(restart int)

	// OnSwap fires after a successful Swap1to1 or Swap1to2. kind is "1to1"
	// or "1to2".
	OnSwap(restart int, kind string)

	// OnPerturb fires after a Perturb call, with the number of vertices
	// removed.
	OnPerturb(restart int, removed int)

	// OnRestartEnd fires once a restart's inner loop terminates, with the
	// size of the clique it produced.
	OnRestartEnd(restart int, cliqueSize int)
}

type noopObserver struct{}

func (noopObserver) OnRestartStart(int)    {}
func (noopObserver) OnMove(int)            {}
func (noopObserver) OnSwap(int, string)    {}
func (noopObserver) OnPerturb(int, int)    {}
func (noopObserver) OnRestartEnd(int, int) {}
