// SPDX-License-Identifier: MIT
// File: prim.go
// Role: Prim's MST grown from a root with a lazy edge min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/matrix"
)

// Prim grows a minimum spanning tree of root's component.
//
// Steps:
//  1. Validate: g non-nil, root non-empty, root present.
//  2. Mark root visited; push its edges to unvisited neighbours.
//  3. Pop the lightest edge; skip it if the far end is already visited;
//     otherwise accept it and push the new vertex's edges.
//  4. When the heap drains with fewer than |V|−1 edges, return the partial
//     tree and ErrDisconnected.
//
// Complexity: O(V² + E log E).
func Prim(g *core.Graph, root string) (*MST, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	r := g.IndexOf(root)
	if r < 0 {
		return nil, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	labels := g.Labels()
	p := &primRunner{
		adj:     g.Adjacency(),
		labels:  labels,
		visited: make([]bool, len(labels)),
	}
	mst, err := p.run(r)
	if err != nil {
		return nil, err
	}
	if len(mst.Edges) < len(labels)-1 {
		return mst, fmt.Errorf("%w: tree from %q spans %d of %d vertices",
			ErrDisconnected, root, len(mst.Edges)+1, len(labels))
	}

	return mst, nil
}

// primRunner holds the state of one Prim execution.
type primRunner struct {
	adj     *matrix.Dense
	labels  []string
	visited []bool
	pq      edgePQ
	seq     int // push counter; breaks weight ties in push order
}

func (p *primRunner) run(root int) (*MST, error) {
	n := len(p.labels)
	mst := &MST{Edges: make([]core.Edge, 0, n)}
	heap.Init(&p.pq)

	p.visited[root] = true
	if err := p.pushFrom(root); err != nil {
		return nil, err
	}

	for p.pq.Len() > 0 && len(mst.Edges) < n-1 {
		it := heap.Pop(&p.pq).(*edgeItem)
		if p.visited[it.to] {
			continue // stale
		}
		p.visited[it.to] = true
		mst.add(core.Edge{Src: p.labels[it.from], Des: p.labels[it.to], Weight: it.weight})

		if err := p.pushFrom(it.to); err != nil {
			return nil, err
		}
	}

	return mst, nil
}

// pushFrom queues every edge from u to an unvisited vertex.
func (p *primRunner) pushFrom(u int) error {
	row, err := p.adj.Row(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: row %d: %w", u, err)
	}
	for v, w := range row {
		if w > 0 && !p.visited[v] {
			heap.Push(&p.pq, &edgeItem{from: u, to: v, weight: w, seq: p.seq})
			p.seq++
		}
	}

	return nil
}

// edgeItem is a candidate tree edge from a visited vertex to another vertex.
type edgeItem struct {
	from, to int
	weight   int64
	seq      int
}

// edgePQ implements heap.Interface as a min-heap by weight, then push order.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
