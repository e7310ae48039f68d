// File: methods_edges.go
// Role: Hyperedge lifecycle (AddEdge/AddSurface/RemoveEdge), lookups and
//       edge weight/domain mutators.
// Determinism:
//   - Edges() and EdgeIDs() return entries sorted by identifier ascending.
//   - Undirected domains are stored sorted ascending; directed domains keep
//     first-occurrence order with duplicates collapsed.
// Invariants:
//   - A stored hyperedge never has an empty domain.
//   - The incidence index is updated in the same call as the edge catalog.

package core

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/id"
)

// AddEdge creates an unweighted hyperedge over members.
//
// Steps:
//  1. Reject an empty member list (ErrEmptyHyperedge).
//  2. Collapse duplicates; sort when the graph is undirected.
//  3. Under eager validation, reject unknown members (ErrNodeNotFound).
//  4. Allocate the next edge identifier and store the edge.
//  5. Index every member in the incidence index.
//
// A failed call never consumes an identifier except when the generator
// itself reports ErrDuplicateIndex.
//
// Complexity: O(k log k), k = len(members).
func (g *Graph[T, N, E]) AddEdge(members ...id.VertexID[T]) (id.EdgeID[T], error) {
	var zero E

	return g.addEdge(zero, false, members)
}

// AddSurface creates a weighted hyperedge (a surface) over members.
// Errors are those of AddEdge.
func (g *Graph[T, N, E]) AddSurface(weight E, members ...id.VertexID[T]) (id.EdgeID[T], error) {
	return g.addEdge(weight, true, members)
}

func (g *Graph[T, N, E]) addEdge(weight E, weighted bool, members []id.VertexID[T]) (id.EdgeID[T], error) {
	domain, err := g.normalizeDomain(members)
	if err != nil {
		observe(AddEdgeTotal, err)

		return id.EdgeID[T]{}, err
	}
	raw, err := g.cur.edge.Next()
	if err != nil {
		observe(AddEdgeTotal, err)
		g.logger.Warn("edge generator failed", zap.Error(err))

		return id.EdgeID[T]{}, errors.Wrap(err, "core: AddEdge")
	}
	eid := id.Edge(raw)
	if _, exists := g.edges[eid]; exists {
		err = errors.Wrapf(ErrDuplicateIndex, "edge %s", eid)
		observe(AddEdgeTotal, err)

		return id.EdgeID[T]{}, err
	}
	e := &Edge[T, E]{
		ID:        eid,
		Domain:    domain,
		Weight:    weight,
		Weighted:  weighted,
		Direction: g.attrs.Direction,
	}
	g.edges[eid] = e
	g.linkAll(e)
	observe(AddEdgeTotal, nil)

	return eid, nil
}

// normalizeDomain returns a fresh domain slice built from members:
// duplicates dropped, sorted ascending if undirected, validated if eager.
func (g *Graph[T, N, E]) normalizeDomain(members []id.VertexID[T]) ([]id.VertexID[T], error) {
	if len(members) == 0 {
		return nil, ErrEmptyHyperedge
	}
	seen := make(map[id.VertexID[T]]struct{}, len(members))
	domain := make([]id.VertexID[T], 0, len(members))
	for _, v := range members {
		if _, dup := seen[v]; dup {
			continue
		}
		if !g.lazy {
			if _, ok := g.nodes[v]; !ok {
				return nil, errors.Wrapf(ErrNodeNotFound, "hyperedge member %s", v)
			}
		}
		seen[v] = struct{}{}
		domain = append(domain, v)
	}
	if !g.attrs.IsDirected() {
		slices.SortFunc(domain, id.VertexID[T].Compare)
	}

	return domain, nil
}

// HasEdge reports whether eid names a live hyperedge.
// Complexity: O(1).
func (g *Graph[T, N, E]) HasEdge(eid id.EdgeID[T]) bool {
	_, ok := g.edges[eid]

	return ok
}

// GetEdge returns a copy of the hyperedge stored under eid.
// The returned Domain does not alias engine storage.
// Returns ErrEdgeNotFound if eid is absent.
func (g *Graph[T, N, E]) GetEdge(eid id.EdgeID[T]) (Edge[T, E], error) {
	e, err := g.edge(eid)
	if err != nil {
		return Edge[T, E]{}, err
	}

	return e.clone(), nil
}

func (g *Graph[T, N, E]) edge(eid id.EdgeID[T]) (*Edge[T, E], error) {
	e, ok := g.edges[eid]
	if !ok {
		return nil, errors.Wrapf(ErrEdgeNotFound, "edge %s", eid)
	}

	return e, nil
}

// EdgeIDs returns every hyperedge identifier in ascending order.
// Complexity: O(E log E).
func (g *Graph[T, N, E]) EdgeIDs() []id.EdgeID[T] {
	out := make([]id.EdgeID[T], 0, len(g.edges))
	for eid := range g.edges {
		out = append(out, eid)
	}
	slices.SortFunc(out, id.EdgeID[T].Compare)

	return out
}

// Edges returns copies of every hyperedge, ordered by identifier.
// Complexity: O(E log E + Σ|domain|).
func (g *Graph[T, N, E]) Edges() []Edge[T, E] {
	ids := g.EdgeIDs()
	out := make([]Edge[T, E], len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid].clone()
	}

	return out
}

// RemoveEdge deletes eid and returns the removed hyperedge.
// Member vertices are untouched.
// Complexity: O(k), k = domain size.
func (g *Graph[T, N, E]) RemoveEdge(eid id.EdgeID[T]) (Edge[T, E], error) {
	e, err := g.edge(eid)
	if err != nil {
		observe(RemoveEdgeTotal, err)

		return Edge[T, E]{}, err
	}
	g.unlinkAll(e)
	delete(g.edges, eid)
	observe(RemoveEdgeTotal, nil)

	return *e, nil
}

// SetEdgeWeight stores weight on eid and marks it weighted.
func (g *Graph[T, N, E]) SetEdgeWeight(eid id.EdgeID[T], weight E) error {
	_, _, err := g.ReplaceEdgeWeight(eid, weight)

	return err
}

// ReplaceEdgeWeight stores weight on eid and returns the previous weight
// together with whether the edge was weighted before.
func (g *Graph[T, N, E]) ReplaceEdgeWeight(eid id.EdgeID[T], weight E) (old E, wasWeighted bool, err error) {
	e, err := g.edge(eid)
	if err != nil {
		return old, false, err
	}
	old, wasWeighted = e.Weight, e.Weighted
	e.Weight, e.Weighted = weight, true

	return old, wasWeighted, nil
}

// TakeEdgeWeight removes the weight from eid, turning the surface back into a
// plain hyperedge. The second result reports whether there was a weight.
func (g *Graph[T, N, E]) TakeEdgeWeight(eid id.EdgeID[T]) (E, bool, error) {
	var zero E
	e, err := g.edge(eid)
	if err != nil {
		return zero, false, err
	}
	w, ok := e.Weight, e.Weighted
	e.Weight, e.Weighted = zero, false

	return w, ok, nil
}

// SetEdgeDomain replaces the members of eid, applying the same
// normalization and validation as AddEdge.
// Returns ErrEmptyHyperedge on an empty list; the edge is unchanged on error.
func (g *Graph[T, N, E]) SetEdgeDomain(eid id.EdgeID[T], members ...id.VertexID[T]) error {
	e, err := g.edge(eid)
	if err != nil {
		return err
	}
	domain, err := g.normalizeDomain(members)
	if err != nil {
		return errors.Wrapf(err, "edge %s", eid)
	}
	g.unlinkAll(e)
	e.Domain = domain
	g.linkAll(e)

	return nil
}
