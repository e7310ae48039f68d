// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents its complexity.

package core

import "github.com/katalvlaran/hyperlath/id"

// GraphStats is a read-only snapshot of a graph's configuration and catalog sizes.
type GraphStats struct {
	Attributes Attributes `json:"attributes" yaml:"attributes"`

	// Order is the vertex count, Size the hyperedge count.
	Order int `json:"order" yaml:"order"`
	Size  int `json:"size" yaml:"size"`

	// WeightedEdges counts surfaces (hyperedges carrying a weight).
	WeightedEdges int `json:"weighted_edges" yaml:"weighted_edges"`

	// Rank is the largest domain size, 0 for an edgeless graph.
	Rank int `json:"rank" yaml:"rank"`

	// Isolated counts vertices with degree 0.
	Isolated int `json:"isolated" yaml:"isolated"`

	// Dangling counts hyperedge members that are not nodes (lazy validation only).
	Dangling int `json:"dangling" yaml:"dangling"`
}

// Attributes returns the index representation and direction of the graph.
// Complexity: O(1).
func (g *Graph[T, N, E]) Attributes() Attributes { return g.attrs }

// Directed reports whether hyperedges of g are directed.
// Complexity: O(1).
func (g *Graph[T, N, E]) Directed() bool { return g.attrs.IsDirected() }

// LazyValidation reports whether hyperedges may reference missing vertices.
// Complexity: O(1).
func (g *Graph[T, N, E]) LazyValidation() bool { return g.lazy }

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph[T, N, E]) Order() int { return len(g.nodes) }

// Size returns the number of hyperedges.
// Complexity: O(1).
func (g *Graph[T, N, E]) Size() int { return len(g.edges) }

// Stats produces a deterministic snapshot of configuration and catalog sizes.
//
// Implementation:
//   - Stage 1: Copy attributes and catalog sizes.
//   - Stage 2: Scan edges once for weights, rank and dangling members.
//   - Stage 3: Scan nodes once for isolated vertices via the incidence index.
//
// Complexity:
//   - Time O(V + Σ|domain|), Space O(1) plus the returned struct.
func (g *Graph[T, N, E]) Stats() GraphStats {
	stats := GraphStats{
		Attributes: g.attrs,
		Order:      len(g.nodes),
		Size:       len(g.edges),
	}
	var (
		e *Edge[T, E]
		v id.VertexID[T]
	)
	for _, e = range g.edges {
		if e.Weighted {
			stats.WeightedEdges++
		}
		if len(e.Domain) > stats.Rank {
			stats.Rank = len(e.Domain)
		}
		for _, v = range e.Domain {
			if _, ok := g.nodes[v]; !ok {
				stats.Dangling++
			}
		}
	}
	for v = range g.nodes {
		if g.degree(v) == 0 {
			stats.Isolated++
		}
	}

	return stats
}
