// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperlath/matrix"
)

type incidenceReport struct {
	Vertices []string    `json:"vertices" yaml:"vertices"`
	Edges    []string    `json:"edges" yaml:"edges"`
	Rows     [][]float64 `json:"rows" yaml:"rows,flow"`
}

// distanceReport rows hold nil for unreachable pairs; neither encoding
// has a portable +Inf.
type distanceReport struct {
	Vertices []string     `json:"vertices" yaml:"vertices"`
	Rows     [][]*float64 `json:"rows" yaml:"rows,flow"`
}

func (a *app) incidenceCmd() *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "incidence",
		Short: "Print the vertex × hyperedge incidence matrix",
		Long: `Print the vertex × hyperedge incidence matrix. Undirected members are
marked 1; a directed hyperedge marks its source -1 and each target 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			var opts []matrix.Option
			if weighted {
				opts = append(opts, matrix.WithWeighted())
			}
			im, err := matrix.NewIncidence(l.Graph, opts...)
			if err != nil {
				return err
			}

			rep := incidenceReport{
				Vertices: labels(l, im.Vertices),
				Edges:    make([]string, len(im.Edges)),
				Rows:     make([][]float64, len(im.Vertices)),
			}
			for j, e := range im.Edges {
				rep.Edges[j] = e.String()
			}
			for i := range rep.Rows {
				if rep.Rows[i], err = im.Mat.Row(i); err != nil {
					return err
				}
			}

			return a.emit(cmd, rep)
		},
	}
	cmd.Flags().BoolVar(&weighted, "weighted", false, "scale marks by the hyperedge step cost")

	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distances",
		Short: "Print all-pairs shortest step costs (Floyd–Warshall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd)
			if err != nil {
				return err
			}
			dm, err := matrix.Distances(l.Graph)
			if err != nil {
				return err
			}

			rep := distanceReport{
				Vertices: labels(l, dm.Vertices),
				Rows:     make([][]*float64, len(dm.Vertices)),
			}
			for i := range rep.Rows {
				row, err := dm.Mat.Row(i)
				if err != nil {
					return err
				}
				rep.Rows[i] = make([]*float64, len(row))
				for j := range row {
					if !math.IsInf(row[j], 1) {
						rep.Rows[i][j] = &row[j]
					}
				}
			}

			return a.emit(cmd, rep)
		},
	}
}
