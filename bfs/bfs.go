// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: Queue-driven breadth-first walker and connectivity helpers.
package bfs

import (
	"context"
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

type queueItem struct {
	label string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start.
// Errors: ErrGraphNil, ErrOptionViolation, wrapped core.ErrVertexNotFound,
// ctx.Err() on cancellation, or the OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %q: %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(label string, d int, parent string) {
	w.visited[label] = true
	w.res.Depth[label] = d
	if parent != "" {
		w.res.Parent[label] = parent
	}
	w.queue = append(w.queue, queueItem{label: label, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.label)
		if err := w.opts.OnVisit(item.label, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.label, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbs, err := w.graph.Neighbors(item.label)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.label, err)
	}
	for _, nb := range nbs {
		if !w.visited[nb.Label] {
			w.enqueue(nb.Label, next, item.label)
		}
	}

	return nil
}

// Components returns the connected components of g, each in BFS order,
// ordered by their lowest-index vertex. A nil graph has no components.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	var comps [][]string
	seen := make(map[string]bool, g.VertexCount())
	for _, l := range g.Labels() {
		if seen[l] {
			continue
		}
		res, err := BFS(g, l)
		if err != nil {
			continue // label came from g, so BFS cannot miss it
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// Connected reports whether g has at most one component. The empty graph
// and a single vertex count as connected.
func Connected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}
