// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luluwu516/DataStructures/internal/graphfile"
	"github.com/luluwu516/DataStructures/internal/logger"
	"github.com/luluwu516/DataStructures/prim_kruskal"
)

var (
	errUnknownShellCommand = errors.New("shell: unknown command")
	errShellUsage          = errors.New("shell: usage")
)

const shellPrompt = "wgraph> "

const shellHelp = `commands:
  add-vertex L            remove-vertex L        has-vertex L
  add-edge S D W          remove-edge S D        has-edge S D
  weight S D              print
  dijkstra L [path]       floyd [L]
  kruskal                 prim L
  bfs L                   dfs L
  save PATH               help                   exit`

// shellCommand runs one line's arguments. usage is printed on arity errors.
type shellCommand struct {
	usage string
	arity func(n int) bool
	run   func(ctx context.Context, a *app, args []string) error
}

func exactly(n int) func(int) bool { return func(got int) bool { return got == n } }

func between(lo, hi int) func(int) bool {
	return func(got int) bool { return got >= lo && got <= hi }
}

var shellCommands = map[string]shellCommand{
	"add-vertex": {"add-vertex L", exactly(1), func(_ context.Context, a *app, args []string) error {
		return a.graph.AddVertex(args[0])
	}},
	"remove-vertex": {"remove-vertex L", exactly(1), func(_ context.Context, a *app, args []string) error {
		return a.graph.RemoveVertex(args[0])
	}},
	"add-edge": {"add-edge S D W", exactly(3), func(_ context.Context, a *app, args []string) error {
		w, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q is not an integer", errShellUsage, args[2])
		}
		return a.graph.AddEdge(args[0], args[1], w)
	}},
	"remove-edge": {"remove-edge S D", exactly(2), func(_ context.Context, a *app, args []string) error {
		return a.graph.RemoveEdge(args[0], args[1])
	}},
	"has-vertex": {"has-vertex L", exactly(1), func(_ context.Context, a *app, args []string) error {
		a.out.Bool(args[0], a.graph.HasVertex(args[0]))
		return nil
	}},
	"has-edge": {"has-edge S D", exactly(2), func(_ context.Context, a *app, args []string) error {
		a.out.Bool(args[0]+"-"+args[1], a.graph.HasEdge(args[0], args[1]))
		return nil
	}},
	"weight": {"weight S D", exactly(2), func(_ context.Context, a *app, args []string) error {
		return a.weight(args[0], args[1])
	}},
	"print": {"print", exactly(0), func(_ context.Context, a *app, _ []string) error {
		return a.print()
	}},
	"dijkstra": {"dijkstra L [path]", between(1, 2), func(_ context.Context, a *app, args []string) error {
		withPath := len(args) == 2
		if withPath && args[1] != "path" {
			return fmt.Errorf("%w: dijkstra L [path]", errShellUsage)
		}
		return a.dijkstra(args[0], withPath)
	}},
	"floyd": {"floyd [L]", between(0, 1), func(_ context.Context, a *app, args []string) error {
		from := ""
		if len(args) == 1 {
			from = args[0]
		}
		return a.floyd(from)
	}},
	"kruskal": {"kruskal", exactly(0), func(_ context.Context, a *app, _ []string) error {
		return a.mst(prim_kruskal.MethodKruskal, "")
	}},
	"prim": {"prim L", exactly(1), func(_ context.Context, a *app, args []string) error {
		return a.mst(prim_kruskal.MethodPrim, args[0])
	}},
	"bfs": {"bfs L", exactly(1), func(ctx context.Context, a *app, args []string) error {
		return a.bfs(ctx, args[0], 0)
	}},
	"dfs": {"dfs L", exactly(1), func(ctx context.Context, a *app, args []string) error {
		return a.dfs(ctx, args[0], false)
	}},
	"save": {"save PATH", exactly(1), func(_ context.Context, a *app, args []string) error {
		return graphfile.Save(args[0], a.graph)
	}},
	"help": {"help", exactly(0), func(_ context.Context, a *app, _ []string) error {
		a.out.Line("%s", shellHelp)
		return nil
	}},
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit and query the graph line by line from stdin",
		Long: `Read one command per line from stdin and apply it to the loaded graph
(or an empty one). Errors are printed and the loop continues; "exit" or
end of input stops it. Type "help" for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.loadGraph(); err != nil {
				return err
			}
			return a.shell(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell runs the read-eval loop until exit or EOF. Only read errors end it
// with an error.
func (a *app) shell(ctx context.Context, in io.Reader) error {
	interactive := logger.IsTerminal(a.out.Writer())
	sc := bufio.NewScanner(in)
	lineNo := 0

	for {
		if interactive {
			fmt.Fprint(a.out.Writer(), shellPrompt)
		}
		if !sc.Scan() {
			break
		}
		lineNo++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		name, args := fields[0], fields[1:]
		if name == "exit" || name == "quit" {
			return nil
		}

		if err := a.dispatch(ctx, name, args); err != nil {
			a.log.Warn("shell command failed",
				slog.Int("line", lineNo),
				slog.String("input", name),
				slog.Any("error", err))
			a.out.Error(err)
		}
	}

	if err := sc.Err(); err != nil {
		return a.fail("shell", fmt.Errorf("shell: read: %w", err))
	}

	return nil
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	c, ok := shellCommands[name]
	if !ok {
		return fmt.Errorf("%w: %q (try help)", errUnknownShellCommand, name)
	}
	if !c.arity(len(args)) {
		return fmt.Errorf("%w: %s", errShellUsage, c.usage)
	}

	return c.run(ctx, a, args)
}
