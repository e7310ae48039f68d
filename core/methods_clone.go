// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Identity:
//   - Clone copies the cursor, so identifiers issued on the clone continue the
//     source sequence independently (a shared AtomicCounter stays shared).
//   - Clear keeps the cursor; identifiers are never reissued.

package core

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/hyperlath/id"
)

// CloneEmpty returns a graph with the same attributes, validation mode,
// logger and a cloned cursor, holding no entities.
// Complexity: O(1).
func (g *Graph[T, N, E]) CloneEmpty() *Graph[T, N, E] {
	return &Graph[T, N, E]{
		attrs:     g.attrs,
		lazy:      g.lazy,
		cur:       g.cur.clone(),
		logger:    g.logger,
		nodes:     make(map[id.VertexID[T]]*Node[T, N]),
		edges:     make(map[id.EdgeID[T]]*Edge[T, E]),
		incidence: make(map[id.VertexID[T]]*roaring64.Bitmap),
	}
}

// Clone returns a deep copy: nodes, hyperedges with their own domains, the
// incidence index and the cursor. Weights are copied by assignment.
// Complexity: O(V + Σ|domain|).
func (g *Graph[T, N, E]) Clone() *Graph[T, N, E] {
	out := g.CloneEmpty()
	for v, n := range g.nodes {
		cp := *n
		out.nodes[v] = &cp
	}
	for eid, e := range g.edges {
		cp := e.clone()
		out.edges[eid] = &cp
	}
	for v, bm := range g.incidence {
		out.incidence[v] = bm.Clone()
	}

	return out
}

// Clear drops every node and hyperedge while keeping attributes and cursor.
// Complexity: O(1) for map reallocation.
func (g *Graph[T, N, E]) Clear() {
	g.nodes = make(map[id.VertexID[T]]*Node[T, N])
	g.edges = make(map[id.EdgeID[T]]*Edge[T, E])
	g.incidence = make(map[id.VertexID[T]]*roaring64.Bitmap)
}
