// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/luluwu516/DataStructures/core"
	"github.com/luluwu516/DataStructures/internal/config"
	"github.com/luluwu516/DataStructures/internal/console"
	"github.com/luluwu516/DataStructures/internal/graphfile"
	"github.com/luluwu516/DataStructures/internal/logger"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// persistent flags
	configPath string
	graphPath  string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
	out    *console.Printer
	graph  *core.Graph
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wgraph",
		Short: "Run shortest-path and spanning-tree algorithms on a weighted graph",
		Long: `wgraph reads an undirected weighted graph from a YAML document and runs
Dijkstra, Floyd-Warshall, Kruskal, Prim, BFS or DFS over it.

Graph document:
  vertices: [a, b, c]
  edges:
    - {src: a, des: b, weight: 3}

Examples:
  wgraph --graph g.yaml dijkstra --from a --path
  wgraph --graph g.yaml kruskal
  wgraph generate --shape random -n 8 --extra 4 --seed 7 > g.yaml`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "config file (default ./wgraph.yaml or ./config/wgraph.yaml)")
	f.StringVar(&a.graphPath, "graph", "", "graph document to load")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: auto, json, text")

	root.AddCommand(
		newPrintCmd(a),
		newWeightCmd(a),
		newDijkstraCmd(a),
		newFloydCmd(a),
		newKruskalCmd(a),
		newPrimCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newGenerateCmd(a),
		newShellCmd(a),
	)

	return root
}

// setup loads configuration, builds the logger and the output printer.
// Flags set on the command line override every other configuration layer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("graph") {
		overrides["graph.path"] = a.graphPath
	}
	if flags.Changed("log-level") {
		overrides["log.level"] = a.logLevel
	}
	if flags.Changed("log-format") {
		overrides["log.format"] = a.logFormat
	}

	opts := []config.LoaderOption{config.WithOverrides(overrides)}
	if a.configPath != "" {
		opts = append(opts, config.WithConfigFile(a.configPath))
	}
	loader := config.NewLoader(opts...)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.File.Path,
		MaxSize:    cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAge:     cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	}
	if cfg.Log.Output == "stderr" {
		lc.Writer = cmd.ErrOrStderr()
	}
	log, closer, err := logger.New(lc)
	if err != nil {
		return err
	}
	log, _ = logger.WithRunID(log)
	a.log = log.With(slog.String("command", cmd.Name()))
	a.closer = closer
	a.out = console.New(cmd.OutOrStdout(), cfg.Output.Color)

	a.log.Debug("configuration loaded",
		slog.String("source", loader.Source()),
		slog.String("graph", cfg.Graph.Path))

	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.closer == nil {
		return nil
	}

	return a.closer.Close()
}

// loadGraph returns the configured graph, reading the document on first use.
// An unset graph.path yields an empty graph.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.graph != nil {
		return a.graph, nil
	}

	var err error
	if a.cfg.Graph.Path == "" {
		a.graph = core.NewGraph(a.cfg.Graph.Capacity, core.WithLogger(a.log))
	} else if a.graph, err = graphfile.Load(a.cfg.Graph.Path, a.cfg.Graph.Capacity, core.WithLogger(a.log)); err != nil {
		a.log.Error("load graph", slog.String("path", a.cfg.Graph.Path), slog.Any("error", err))
		return nil, err
	}
	a.log.Info("graph ready",
		slog.Int("vertices", a.graph.VertexCount()),
		slog.Int("edges", a.graph.EdgeCount()))

	return a.graph, nil
}

// fail logs err against op and returns it for RunE.
func (a *app) fail(op string, err error) error {
	a.log.Error(op, slog.Any("error", err))
	return err
}
