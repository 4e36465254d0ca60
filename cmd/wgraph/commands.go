// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/luluwu516/DataStructures/bfs"
	"github.com/luluwu516/DataStructures/dfs"
	"github.com/luluwu516/DataStructures/dijkstra"
	"github.com/luluwu516/DataStructures/floydwarshall"
	"github.com/luluwu516/DataStructures/prim_kruskal"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print vertices, weight matrix and edge list",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.print()
		},
	}
}

func newWeightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weight SRC DES",
		Short: "Print the weight of the edge SRC-DES (0 when absent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.weight(args[0], args[1])
		},
	}
}

func newDijkstraCmd(a *app) *cobra.Command {
	var (
		from     string
		withPath bool
	)
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Single-source shortest distances",
		Long: `Print the shortest distance from --from to every vertex.
Unreachable vertices print as -1. With --path, the route to every
reachable vertex follows the distances.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.dijkstra(from, withPath)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source vertex")
	cmd.Flags().BoolVar(&withPath, "path", false, "print shortest routes")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newFloydCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "floyd",
		Short: "All-pairs shortest distances (Floyd-Warshall)",
		Long: `Print the all-pairs distance table, or only the row for --from.
Unreachable pairs print as "-" in the table and -1 in a row.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.floyd(from)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "print only this source's row")

	return cmd
}

func newKruskalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kruskal",
		Short: "Minimum spanning tree by Kruskal's algorithm",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.mst(prim_kruskal.MethodKruskal, "")
		},
	}
}

func newPrimCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "prim",
		Short: "Minimum spanning tree by Prim's algorithm",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.mst(prim_kruskal.MethodPrim, from)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "root vertex")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newBFSCmd(a *app) *cobra.Command {
	var (
		from  string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first visit order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.bfs(cmd.Context(), from, depth)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start vertex")
	cmd.Flags().IntVar(&depth, "max-depth", 0, "stop expanding past this depth (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newDFSCmd(a *app) *cobra.Command {
	var (
		from string
		all  bool
	)
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first visit order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.dfs(cmd.Context(), from, all)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start vertex")
	cmd.Flags().BoolVar(&all, "all", false, "continue into unreached components")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) print() error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	return g.Fprint(a.out.Writer())
}

func (a *app) weight(src, des string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	w, err := g.Weight(src, des)
	if err != nil {
		return a.fail("weight", err)
	}
	a.out.Line("%s-%s %d", src, des, w)

	return nil
}

func (a *app) dijkstra(from string, withPath bool) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	var opts []dijkstra.Option
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	res, err := dijkstra.Dijkstra(g, from, opts...)
	if err != nil {
		return a.fail("dijkstra", err)
	}

	a.out.Title("Shortest distances from %s", res.Source)
	a.out.Distances(res.Source, res.Labels, res.Dist)
	if !withPath {
		return nil
	}
	a.out.Title("Routes")
	for _, l := range res.Labels {
		path, err := res.Path(l)
		if errors.Is(err, dijkstra.ErrNoPath) {
			continue
		}
		if err != nil {
			return a.fail("dijkstra", err)
		}
		a.out.Sequence(path)
	}

	return nil
}

func (a *app) floyd(from string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	res, err := floydwarshall.Compute(g)
	if err != nil {
		return a.fail("floyd", err)
	}

	if from == "" {
		a.out.Title("All-pairs shortest distances")
		a.out.Table(res.Labels, res.Matrix())
		return nil
	}
	row, err := res.From(from)
	if err != nil {
		return a.fail("floyd", err)
	}
	a.out.Title("Shortest distances from %s", from)
	a.out.Distances(from, res.Labels, row)

	return nil
}

// mst prints the tree (or forest) and its total. A disconnected graph still
// prints the forest before the error is returned.
func (a *app) mst(method, root string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	tree, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithRoot(root))
	if err != nil && !errors.Is(err, prim_kruskal.ErrDisconnected) {
		return a.fail(method, err)
	}

	a.out.Title("Minimum spanning tree (%s)", method)
	for _, e := range tree.Edges {
		a.out.Line(" %s", e)
	}
	a.out.Line("Total weight: %d", tree.TotalWeight)
	if err != nil {
		a.out.Warn("%v", err)
		return a.fail(method, err)
	}

	return nil
}

func (a *app) bfs(ctx context.Context, from string, maxDepth int) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	res, err := bfs.BFS(g, from,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return a.fail("bfs", err)
	}
	a.out.Title("Breadth-first order from %s", from)
	a.out.Sequence(res.Order)

	return nil
}

func (a *app) dfs(ctx context.Context, from string, all bool) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	opts := []dfs.Option{dfs.WithContext(ctx)}
	if all {
		opts = append(opts, dfs.WithFullTraversal())
	}
	res, err := dfs.DFS(g, from, opts...)
	if err != nil {
		return a.fail("dfs", err)
	}
	a.out.Title("Depth-first order from %s", from)
	a.out.Sequence(res.Order)

	return nil
}
