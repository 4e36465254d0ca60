// SPDX-License-Identifier: MIT
// File: dijkstra.go
// Role: Single-source shortest paths with a lazy-deletion min-heap.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/matrix"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Validation order (nothing is computed before all checks pass):
//  1. g non-nil (ErrNilGraph).
//  2. source non-empty (ErrEmptySource).
//  3. source present in g (wrapped core.ErrVertexNotFound).
//
// Complexity: O(V² + E log V) time, O(V² + E) space.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	src := g.IndexOf(source)
	if src < 0 {
		return nil, fmt.Errorf("dijkstra: source %q: %w", source, core.ErrVertexNotFound)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		adj:     g.Adjacency(),
		options: cfg,
		res:     newResult(source, g.Labels(), cfg.ReturnPath),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     *matrix.Dense // snapshot of the weight matrix; 0 means no edge
	options Options
	res     *Result
	visited []bool // finalized vertices
	pq      nodePQ
}

// init marks the source at distance 0 and seeds the heap with it.
func (r *runner) init(src int) {
	n := r.adj.Order()
	r.visited = make([]bool, n)
	r.pq = make(nodePQ, 0, n)
	heap.Init(&r.pq)

	r.res.Dist[src] = 0
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process pops vertices in increasing distance order until the heap is empty
// or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	// tentative distances beyond the cap were never finalized
	for i, done := range r.visited {
		if !done {
			r.res.Dist[i] = Unreachable
			if r.res.Prev != nil {
				r.res.Prev[i] = -1
			}
		}
	}

	return nil
}

// relax scans row u of the matrix and improves every unvisited neighbour.
func (r *runner) relax(u int) error {
	row, err := r.adj.Row(u)
	if err != nil {
		return fmt.Errorf("dijkstra: row %d: %w", u, err)
	}

	du := r.res.Dist[u]
	var newDist int64
	for v, w := range row {
		if w <= 0 || r.visited[v] {
			continue
		}
		// sums reaching matrix.Inf mean "no path", as in Floyd-Warshall
		if w >= matrix.Inf-du {
			continue
		}
		newDist = du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur := r.res.Dist[v]; cur != Unreachable && newDist >= cur {
			continue
		}

		r.res.Dist[v] = newDist
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}

	return nil
}

// nodeItem is a (vertex index, tentative distance) heap entry.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped on Pop once their vertex is visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index so equal distances pop deterministically.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
