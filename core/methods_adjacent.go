// File: methods_adjacent.go
// Role: Structural queries over the incidence index: incident hyperedges,
//       neighbors, direction-aware successors and degree.
// Determinism:
//   - FindEdgesWithNode and IncidentEdges return identifiers sorted ascending.
//   - Neighbors and Successors return sets; use VertexSet.Sorted for order.

package core

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/id"
)

// FindEdgesWithNode returns the hyperedges whose domain contains v, sorted by
// identifier. The result is empty (never nil) when there are none or when v
// is unknown.
// Complexity: O(d log d), d = Degree(v).
func (g *Graph[T, N, E]) FindEdgesWithNode(v id.VertexID[T]) []id.EdgeID[T] {
	out := g.incidentIDs(v)
	if out == nil {
		out = []id.EdgeID[T]{}
	}

	return out
}

// IncidentEdges is FindEdgesWithNode with explicit failure reasons.
//
// Errors:
//   - ErrNodeNotFound: v is not a vertex.
//   - ErrNoIncidentEdges: v belongs to no hyperedge.
func (g *Graph[T, N, E]) IncidentEdges(v id.VertexID[T]) ([]id.EdgeID[T], error) {
	if _, err := g.node(v); err != nil {
		return nil, err
	}
	out := g.incidentIDs(v)
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrNoIncidentEdges, "vertex %s", v)
	}

	return out, nil
}

// Degree returns the number of hyperedges containing v; 0 for unknown vertices.
// Complexity: O(1).
func (g *Graph[T, N, E]) Degree(v id.VertexID[T]) int { return g.degree(v) }

// Neighbors returns every vertex sharing at least one hyperedge with v,
// excluding v itself. Direction is ignored.
//
// Errors:
//   - ErrNodeNotFound: v is not a vertex, or (lazy validation) a co-member
//     was never inserted.
//
// Complexity: O(Σ_{e∋v} |e|).
func (g *Graph[T, N, E]) Neighbors(v id.VertexID[T]) (VertexSet[T], error) {
	if _, err := g.node(v); err != nil {
		return nil, err
	}
	out := NewVertexSet[T]()
	for _, eid := range g.incidentIDs(v) {
		if err := g.collect(out, v, g.edges[eid].Domain); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Successors returns the vertices reachable from v in one hyperedge step.
//
// Undirected graphs: identical to Neighbors.
// Directed graphs: the targets of every hyperedge whose source is v; edges
// where v is only a target contribute nothing.
//
// Every traversal operator expands vertices through Successors.
// Errors are those of Neighbors.
func (g *Graph[T, N, E]) Successors(v id.VertexID[T]) (VertexSet[T], error) {
	if !g.attrs.IsDirected() {
		return g.Neighbors(v)
	}
	if _, err := g.node(v); err != nil {
		return nil, err
	}
	out := NewVertexSet[T]()
	var e *Edge[T, E]
	for _, eid := range g.incidentIDs(v) {
		e = g.edges[eid]
		if e.Domain[0] != v {
			continue
		}
		if err := g.collect(out, v, e.Domain[1:]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// collect adds members other than self to out, failing on dangling members.
func (g *Graph[T, N, E]) collect(out VertexSet[T], self id.VertexID[T], members []id.VertexID[T]) error {
	for _, m := range members {
		if m == self {
			continue
		}
		if _, ok := g.nodes[m]; !ok {
			return errors.Wrapf(ErrNodeNotFound, "dangling member %s of a hyperedge at %s", m, self)
		}
		out.Add(m)
	}

	return nil
}
