// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperlath/bfs"
	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/dfs"
)

type statsReport struct {
	core.GraphStats `yaml:",inline"`

	Components [][]string `json:"components" yaml:"components"`

	// Directed graphs only: a cycle if one exists, else a topological order.
	Cycle    []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Topology []string `json:"topological_order,omitempty" yaml:"topological_order,omitempty"`
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print order, size, rank, components and (directed) ordering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			g := l.Graph

			rep := statsReport{GraphStats: g.Stats()}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}
			for _, c := range comps {
				rep.Components = append(rep.Components, labels(l, c))
			}

			if g.Directed() {
				cycle, err := dfs.FindCycle(g)
				if err != nil {
					return err
				}
				if cycle != nil {
					rep.Cycle = labels(l, cycle)
				} else {
					order, err := dfs.TopologicalSort(g)
					if err != nil {
						return err
					}
					rep.Topology = labels(l, order)
				}
			}

			return a.emit(cmd, rep)
		},
	}
}
