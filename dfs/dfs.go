// SPDX-License-Identifier: MIT
// File: dfs.go
// Role: Iterative pre-order depth-first walker.
package dfs

import (
	"fmt"

	"github.com/luluwu516/DataStructures/core"
)

type frame struct {
	label  string
	depth  int
	parent string
}

type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	visited map[string]bool
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// then continues into every unreached component in index order; start may be
// empty in that mode, otherwise it must exist and is walked first. On abort
// the partial result is returned with the error.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if (!o.FullTraversal || start != "") && !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start %q: %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
		visited: make(map[string]bool, n),
	}

	if !o.FullTraversal {
		return w.res, w.walk(start)
	}
	roots := g.Labels()
	if start != "" {
		roots = append([]string{start}, roots...)
	}
	for _, l := range roots {
		if w.visited[l] {
			continue
		}
		if err := w.walk(l); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// walk explores one tree from root with an explicit stack. Neighbours are
// pushed in reverse index order so the lowest index is popped first.
func (w *dfsWalker) walk(root string) error {
	stack := []frame{{label: root}}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[f.label] {
			continue
		}

		w.visited[f.label] = true
		w.res.Order = append(w.res.Order, f.label)
		w.res.Depth[f.label] = f.depth
		if f.parent != "" {
			w.res.Parent[f.label] = f.parent
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.label); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", f.label, err)
			}
		}

		nbs, err := w.graph.Neighbors(f.label)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%q): %w", f.label, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.visited[nbs[i].Label] {
				stack = append(stack, frame{label: nbs[i].Label, depth: f.depth + 1, parent: f.label})
			}
		}
	}

	return nil
}
