// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/bfs"
	"github.com/katalvlaran/hyperlath/dfs"
	"github.com/katalvlaran/hyperlath/graphfile"
	"github.com/katalvlaran/hyperlath/id"
)

type traversalReport struct {
	Start string         `json:"start" yaml:"start"`
	Order []string       `json:"order" yaml:"order"`
	Depth map[string]int `json:"depth" yaml:"depth"`
}

func newTraversalReport(l *graphfile.Loaded, start id.VertexID[uint32], order []id.VertexID[uint32], depth map[id.VertexID[uint32]]int) traversalReport {
	rep := traversalReport{
		Start: l.Label(start),
		Order: labels(l, order),
		Depth: make(map[string]int, len(depth)),
	}
	for v, d := range depth {
		rep.Depth[l.Label(v)] = d
	}

	return rep
}

func (a *app) bfsCmd() *cobra.Command {
	var from string
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first traversal from a node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			start, err := l.Vertex(from)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(l.Graph, start,
				bfs.WithMaxDepth(maxDepth),
				bfs.WithOnVisit(func(v id.VertexID[uint32], depth int) error {
					a.log.Debug("bfs visit", zap.String("vertex", l.Label(v)), zap.Int("depth", depth))

					return nil
				}),
			)
			if err != nil {
				return err
			}

			return a.emit(cmd, newTraversalReport(l, start, res.Order, res.Depth))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node label")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "depth limit (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var from string
	var maxDepth int
	var all bool
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first traversal from a node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			start, err := l.Vertex(from)
			if err != nil {
				return err
			}
			opts := []dfs.Option{
				dfs.WithMaxDepth(maxDepth),
				dfs.WithOnVisit(func(v id.VertexID[uint32], depth int) error {
					a.log.Debug("dfs visit", zap.String("vertex", l.Label(v)), zap.Int("depth", depth))

					return nil
				}),
			}
			if all {
				opts = append(opts, dfs.WithFullTraversal())
			}
			res, err := dfs.DFS(l.Graph, start, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, newTraversalReport(l, start, res.Order, res.Depth))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node label")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "depth limit (negative = unlimited)")
	cmd.Flags().BoolVar(&all, "all", false, "continue into every unvisited component")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
