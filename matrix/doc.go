// SPDX-License-Identifier: MIT

// Package matrix lowers hyperlath hypergraphs into dense float64 matrices.
//
// Views:
//
//   - Incidence: |V|×|E|. Undirected members are marked +1; a directed
//     hyperedge marks its source −1 and each target +1. WithWeighted scales
//     the marks by the edge's step cost.
//   - Adjacency: |V|×|V| clique expansion. Entry (u,v) counts the
//     hyperedges that step from u to v, or with WithWeighted the cheapest
//     step cost among them.
//   - Distances: all-pairs shortest step costs via Floyd–Warshall, with
//     +Inf for unreachable pairs. On the same graph they agree with the
//     single-source results of package dijkstra.
//
// Rows follow ascending vertex identifiers and columns ascending edge
// identifiers, so builds are deterministic.
//
// Dense is row-major and bounds-checked: At and Set return ErrOutOfRange
// instead of panicking. Add, Sub, Mul, Transpose, Scale and RowSums cover
// the algebra the views need; for an unweighted undirected graph
// Mul(B, Transpose(B)) equals NewAdjacency(g, WithKeepLoops()).
//
// Errors are sentinels wrapped with github.com/pkg/errors and matched with
// errors.Is.
package matrix
