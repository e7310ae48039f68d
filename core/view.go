// File: view.go
// Role: Non-mutating graph views (copies of the topology with altered content).
// Identity:
//   - Views preserve vertex and edge identifiers and direction.
//   - Views carry a cloned cursor, so new inserts never reuse source ids.

package core

import "github.com/katalvlaran/hyperlath/id"

// UnweightedView returns a copy of g in which every surface has been turned
// back into a plain hyperedge. The input graph is not mutated.
// Complexity: O(V + Σ|domain|).
func UnweightedView[T id.Index, N any, E any](g *Graph[T, N, E]) *Graph[T, N, E] {
	out := g.Clone()
	var zero E
	for _, e := range out.edges {
		e.Weight, e.Weighted = zero, false
	}

	return out
}

// InducedSubgraph returns the sub-hypergraph of g induced by keep: the
// vertices of keep that exist in g, and every hyperedge whose whole domain
// lies in keep. Hyperedges that only partially overlap keep are dropped rather
// than trimmed. The input graph is not mutated.
// Complexity: O(V + Σ|domain|).
func InducedSubgraph[T id.Index, N any, E any](g *Graph[T, N, E], keep VertexSet[T]) *Graph[T, N, E] {
	out := g.CloneEmpty()
	for v, n := range g.nodes {
		if keep.Contains(v) {
			cp := *n
			out.nodes[v] = &cp
		}
	}

	var full bool
	for eid, e := range g.edges {
		full = true
		for _, m := range e.Domain {
			if !keep.Contains(m) {
				full = false

				break
			}
		}
		if !full {
			continue
		}
		cp := e.clone()
		out.edges[eid] = &cp
		out.linkAll(&cp)
	}

	return out
}
