// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/astar"
	"github.com/katalvlaran/hyperlath/dijkstra"
	"github.com/katalvlaran/hyperlath/search"
)

const (
	algoDijkstra = "dijkstra"
	algoAStar    = "astar"
)

var errUnknownAlgo = errors.New("hyperlath: unknown path algorithm")

type pathReport struct {
	Algo     string   `json:"algo" yaml:"algo"`
	Vertices []string `json:"vertices" yaml:"vertices"`
	Cost     float64  `json:"cost" yaml:"cost"`
	Hops     int      `json:"hops" yaml:"hops"`
	Settled  int      `json:"settled" yaml:"settled"`
}

func (a *app) pathCmd() *cobra.Command {
	var (
		from, to      string
		algo          string
		maxDistance   float64
		maxExpansions int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Cheapest path between two nodes",
		Long: `Cheapest path between two nodes. Crossing a hyperedge costs its weight
(1 when unweighted). astar runs with the zero heuristic, since documents carry
no coordinates, and settles vertices in the same order as dijkstra.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			start, err := l.Vertex(from)
			if err != nil {
				return err
			}
			goal, err := l.Vertex(to)
			if err != nil {
				return err
			}

			var (
				path    search.Path[uint32, float64]
				visited search.Traversal[uint32]
			)
			switch algo {
			case algoDijkstra:
				opts := []dijkstra.Option{}
				if cmd.Flags().Changed("max-distance") {
					opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
				}
				s := dijkstra.New(l.Graph, opts...)
				path, err = s.FindPath(start, goal)
				visited = s
			case algoAStar:
				s := astar.New(l.Graph, astar.Zero[uint32, float64], astar.WithMaxExpansions(maxExpansions))
				path, err = s.FindPath(start, goal)
				visited = s
			default:
				return errors.Wrapf(errUnknownAlgo, "%q (want %s|%s)", algo, algoDijkstra, algoAStar)
			}
			if err != nil {
				return err
			}
			a.log.Debug("path found",
				zap.String("algo", algo),
				zap.Float64("cost", path.Cost),
				zap.Int("settled", len(visited.Visited())),
			)

			return a.emit(cmd, pathReport{
				Algo:     algo,
				Vertices: labels(l, path.Vertices),
				Cost:     path.Cost,
				Hops:     path.Len(),
				Settled:  len(visited.Visited()),
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "start node label")
	f.StringVar(&to, "to", "", "goal node label")
	f.StringVar(&algo, "algo", algoDijkstra, "algorithm: dijkstra|astar")
	f.Float64Var(&maxDistance, "max-distance", 0, "dijkstra: give up beyond this distance")
	f.IntVar(&maxExpansions, "max-expansions", 0, "astar: expansion budget (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
