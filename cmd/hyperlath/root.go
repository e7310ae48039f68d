// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/graphfile"
	"github.com/katalvlaran/hyperlath/id"
)

var errNoFile = errors.New("hyperlath: --file is required")

// app carries the global flags and the logger shared by every subcommand.
type app struct {
	file        string
	inputFormat string
	format      string
	verbose     bool

	output graphfile.Format
	log    *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "hyperlath",
		Short: "Inspect and query hypergraph documents",
		Long: `hyperlath loads a YAML or JSON hypergraph document (labelled nodes and
hyperedges over them) and runs statistics, BFS/DFS traversals, Dijkstra or A*
shortest paths, and incidence or distance matrices over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out, err := graphfile.ParseFormat(a.format)
			if err != nil {
				return err
			}
			a.output = out
			a.log, err = newLogger(a.verbose)

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "graph document to load (- for stdin)")
	pf.StringVar(&a.inputFormat, "input-format", "", "document format: yaml|json (default: from the file extension)")
	pf.StringVar(&a.format, "format", string(graphfile.FormatYAML), "output format: yaml|json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable development logging")

	root.AddCommand(
		a.statsCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.pathCmd(),
		a.incidenceCmd(),
		a.distancesCmd(),
		a.generateCmd(),
	)

	return root
}

// newLogger returns a development logger under --verbose and a production
// logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// load reads the document named by --file and builds it with the app
// logger attached to the graph.
func (a *app) load(cmd *cobra.Command) (*graphfile.Loaded, error) {
	if a.file == "" {
		return nil, errNoFile
	}

	format := graphfile.FormatYAML
	var err error
	switch {
	case a.inputFormat != "":
		format, err = graphfile.ParseFormat(a.inputFormat)
	case a.file != "-":
		format, err = graphfile.FormatFromPath(a.file)
	}
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if a.file != "-" {
		f, err := os.Open(a.file)
		if err != nil {
			return nil, errors.Wrap(err, "hyperlath: open document")
		}
		defer f.Close()
		r = f
	}

	l, err := graphfile.Load(r, format, core.WithLogger(a.log))
	if err != nil {
		return nil, errors.Wrapf(err, "hyperlath: load %s", a.file)
	}
	a.log.Debug("document loaded",
		zap.String("file", a.file),
		zap.Int("order", l.Graph.Order()),
		zap.Int("size", l.Graph.Size()),
		zap.Bool("directed", l.Graph.Directed()),
	)

	return l, nil
}

func (a *app) emit(cmd *cobra.Command, v any) error {
	return graphfile.Encode(cmd.OutOrStdout(), v, a.output)
}

func labels(l *graphfile.Loaded, vs []id.VertexID[uint32]) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = l.Label(v)
	}

	return out
}
