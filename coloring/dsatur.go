// Package coloring implements DSATUR graph coloring, used to seed the
// saturation-guided initial heuristic for the clique search.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V pops that are not stale.
//   - Each coloring event may push updated priorities for up to deg(v)
//     neighbors: O(E) pushes total.
//   - Each heap operation costs O(log N), N bounded by V + E.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicate entries
//     into the heap and ignoring stale ones once priorities move on.
package coloring

import (
	"container/heap"

	"github.com/solventlabs/cliquetabu/graph"
)

// DSATUR returns a proper coloring of g: a slice indexed by vertex id
// where colors[u] != colors[v] whenever (u,v) is an edge. Colors start at
// 0 and are assigned greedily in DSATUR order: at each step, the
// uncolored vertex maximizing (saturation, uncolored-degree, id) is
// colored with the smallest color absent from its neighborhood.
func DSATUR(g *graph.Graph) []int {
	n := g.N()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	neighborColors := make([]map[int]struct{}, n)
	uncoloredDegree := make([]int, n)
	for v := 0; v < n; v++ {
		neighborColors[v] = make(map[int]struct{})
		uncoloredDegree[v] = g.Degree(v)
	}

	pq := make(satPQ, 0, n)
	heap.Init(&pq)
	for v := 0; v < n; v++ {
		heap.Push(&pq, &satItem{v: v, sat: 0, degree: uncoloredDegree[v]})
	}

	colored := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*satItem)
		v := item.v

		if colored[v] {
			continue
		}
		// Stale entry: priorities for v have since changed; a fresher
		// entry is still in the heap.
		if item.sat != len(neighborColors[v]) || item.degree != uncoloredDegree[v] {
			continue
		}

		colors[v] = smallestAbsentColor(neighborColors[v])
		colored[v] = true

		for u := range g.Neighbors(v) {
			if colored[u] {
				continue
			}
			uncoloredDegree[u]--
			if _, seen := neighborColors[u][colors[v]]; !seen {
				neighborColors[u][colors[v]] = struct{}{}
			}
			heap.Push(&pq, &satItem{v: u, sat: len(neighborColors[u]), degree: uncoloredDegree[u]})
		}
	}

	return colors
}

func smallestAbsentColor(used map[int]struct{}) int {
	for c := 0; ; c++ {
		if _, ok := used[c]; !ok {
			return c
		}
	}
}

// satItem is a single priority-queue entry: vertex v with the saturation
// and uncolored-degree it had when pushed.
type satItem struct {
	v, sat, degree int
}

// satPQ orders by (saturation, uncolored-degree, id) descending, so
// heap.Pop always returns the DSATUR-maximal uncolored vertex.
type satPQ []*satItem

func (pq satPQ) Len() int { return len(pq) }

func (pq satPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.sat != b.sat {
		return a.sat > b.sat
	}
	if a.degree != b.degree {
		return a.degree > b.degree
	}
	return a.v > b.v
}

func (pq satPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *satPQ) Push(x interface{}) { *pq = append(*pq, x.(*satItem)) }

func (pq *satPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
