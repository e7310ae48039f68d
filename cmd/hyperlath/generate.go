// SPDX-License-Identifier: MIT

package main

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/builder"
	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/graphfile"
)

var (
	errUnknownTopology = errors.New("hyperlath: unknown topology")
	errWeightRange     = errors.New("hyperlath: invalid weight range")
)

type generateParams struct {
	topology   string
	n, n2      int
	k, m       int
	rows, cols int
	seed       int64
	directed   bool
	minW, maxW int
	extra      int
}

func (p generateParams) constructor() (builder.Constructor, error) {
	table := map[string]func() builder.Constructor{
		"path":      func() builder.Constructor { return builder.Path(p.n) },
		"cycle":     func() builder.Constructor { return builder.Cycle(p.n) },
		"star":      func() builder.Constructor { return builder.Star(p.n) },
		"complete":  func() builder.Constructor { return builder.Complete(p.n) },
		"uniform":   func() builder.Constructor { return builder.CompleteUniform(p.n, p.k) },
		"grid":      func() builder.Constructor { return builder.Grid(p.rows, p.cols) },
		"bipartite": func() builder.Constructor { return builder.CompleteBipartite(p.n, p.n2) },
		"sunflower": func() builder.Constructor { return builder.Sunflower(p.n, p.k) },
		"random":    func() builder.Constructor { return builder.RandomUniform(p.n, p.m, p.k) },
	}
	mk, ok := table[strings.ToLower(p.topology)]
	if !ok {
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)

		return nil, errors.Wrapf(errUnknownTopology, "%q (want one of %s)", p.topology, strings.Join(names, "|"))
	}

	return mk(), nil
}

// builderOptions shares one seeded source between the topology and the
// extra edges, so consecutive RandomEdge calls draw different edges.
func (p generateParams) builderOptions() ([]builder.BuilderOption, error) {
	opts := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(p.seed)))}
	if p.maxW > 0 {
		if p.minW < 0 || p.minW > p.maxW {
			return nil, errors.Wrapf(errWeightRange, "want 0 <= min-weight <= max-weight, got %d..%d", p.minW, p.maxW)
		}
		opts = append(opts, builder.WithIntWeight(p.minW, p.maxW))
	}

	return opts, nil
}

// generate builds the requested topology, then appends p.extra random
// hyperedges of at most p.k members.
func (p generateParams) generate(log *zap.Logger) (*graphfile.Document, error) {
	cons, err := p.constructor()
	if err != nil {
		return nil, err
	}
	bopts, err := p.builderOptions()
	if err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{core.WithLogger(log)}
	if p.directed {
		gopts = append(gopts, core.WithDirected())
	}
	g := core.NewGraph[uint32, string, float64](gopts...)
	labels, err := builder.Apply(g, bopts, cons)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.extra; i++ {
		if _, err = builder.RandomEdge(g, max(p.k, 1), bopts...); err != nil {
			return nil, errors.Wrapf(err, "extra edge %d", i)
		}
	}

	return graphfile.Export(g, labels)
}

func (a *app) generateCmd() *cobra.Command {
	var p generateParams
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a generated hypergraph document",
		Long: `Emit a generated hypergraph document in --format. Topologies:
path, cycle, star, complete (n), uniform (all k-subsets of n), grid (rows,
cols), bipartite (n, n2), sunflower (n petals of k members), random (m
k-member edges over n vertices). --extra appends random edges of up to k
members.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := p.generate(a.log)
			if err != nil {
				return err
			}
			a.log.Debug("generated",
				zap.String("topology", p.topology),
				zap.Int("nodes", len(doc.Nodes)),
				zap.Int("edges", len(doc.Edges)),
			)

			return a.emit(cmd, doc)
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.topology, "topology", "path", "path|cycle|star|complete|uniform|grid|bipartite|sunflower|random")
	f.IntVar(&p.n, "n", 4, "vertex count (petals for sunflower, left side for bipartite)")
	f.IntVar(&p.n2, "n2", 2, "right side of a bipartite graph")
	f.IntVar(&p.k, "k", 3, "members per hyperedge")
	f.IntVar(&p.m, "m", 4, "hyperedges of a random graph")
	f.IntVar(&p.rows, "rows", 2, "grid rows")
	f.IntVar(&p.cols, "cols", 2, "grid columns")
	f.Int64Var(&p.seed, "seed", 1, "random seed")
	f.BoolVar(&p.directed, "directed", false, "generate a directed hypergraph")
	f.IntVar(&p.minW, "min-weight", 1, "lower bound of random integer weights")
	f.IntVar(&p.maxW, "max-weight", 0, "upper bound of random integer weights (0 = unweighted)")
	f.IntVar(&p.extra, "extra", 0, "random hyperedges to append")

	return cmd
}
