// File: incidence.go
// Role: Vertex → incident-hyperedge index backed by 64-bit roaring bitmaps.
// Determinism:
//   - incidentIDs returns edge identifiers sorted by raw value ascending.
// Invariant:
//   - e.ID ∈ incidence[v]  ⇔  v ∈ e.Domain, for every live edge e.
//   - Empty bitmaps are dropped so len(incidence) stays bounded by the
//     number of referenced vertices.

package core

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/hyperlath/id"
)

// link records that edge eid contains vertex v.
// Complexity: O(log d) amortized.
func (g *Graph[T, N, E]) link(v id.VertexID[T], eid id.EdgeID[T]) {
	bm, ok := g.incidence[v]
	if !ok {
		bm = roaring64.New()
		g.incidence[v] = bm
	}
	bm.Add(uint64(eid.Raw()))
}

// unlink removes the record that edge eid contains vertex v.
// Complexity: O(log d).
func (g *Graph[T, N, E]) unlink(v id.VertexID[T], eid id.EdgeID[T]) {
	bm, ok := g.incidence[v]
	if !ok {
		return
	}
	bm.Remove(uint64(eid.Raw()))
	if bm.IsEmpty() {
		delete(g.incidence, v)
	}
}

// linkAll indexes every member of e.
func (g *Graph[T, N, E]) linkAll(e *Edge[T, E]) {
	for _, v := range e.Domain {
		g.link(v, e.ID)
	}
}

// unlinkAll drops every member of e from the index.
func (g *Graph[T, N, E]) unlinkAll(e *Edge[T, E]) {
	for _, v := range e.Domain {
		g.unlink(v, e.ID)
	}
}

// degree returns the number of hyperedges containing v.
// Complexity: O(1) for roaring cardinality on small containers.
func (g *Graph[T, N, E]) degree(v id.VertexID[T]) int {
	bm, ok := g.incidence[v]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// incidentIDs returns the identifiers of the hyperedges containing v,
// sorted ascending by raw value.
// Complexity: O(d log d); the sort only matters for negative signed indices,
// whose uint64 image orders after the positive ones.
func (g *Graph[T, N, E]) incidentIDs(v id.VertexID[T]) []id.EdgeID[T] {
	bm, ok := g.incidence[v]
	if !ok {
		return nil
	}
	out := make([]id.EdgeID[T], 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, id.Edge(T(it.Next())))
	}
	slices.SortFunc(out, id.EdgeID[T].Compare)

	return out
}
