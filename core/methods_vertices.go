// File: methods_vertices.go
// Role: Vertex lifecycle, weight accessors and the RemoveNode cascade.
//
// Determinism:
//   - Nodes() and NodeIDs() return entries sorted by identifier ascending.
//   - RemoveNode visits incident hyperedges in identifier order.
package core

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/id"
)

// AddNode allocates the next vertex identifier and stores weight under it.
//
// Returns:
//   - id.VertexID[T]: the freshly allocated identifier.
//   - error: id.ErrIndexOutOfBounds when the vertex generator is exhausted,
//     ErrDuplicateIndex when a non-monotonic generator (id.Random) collides.
//
// Complexity: O(1) amortized.
func (g *Graph[T, N, E]) AddNode(weight N) (id.VertexID[T], error) {
	raw, err := g.cur.vertex.Next()
	if err != nil {
		observe(AddNodeTotal, err)
		g.logger.Warn("vertex generator failed", zap.Error(err))

		return id.VertexID[T]{}, errors.Wrap(err, "core: AddNode")
	}
	v := id.Vertex(raw)
	if err = g.insertNode(v, weight); err != nil {
		return id.VertexID[T]{}, err
	}

	return v, nil
}

// InsertNode stores weight under a caller-chosen identifier.
// Counter-like generators are advanced past v so AddNode never reissues it.
// Returns ErrDuplicateIndex if v is already a node.
// Complexity: O(1) amortized.
func (g *Graph[T, N, E]) InsertNode(v id.VertexID[T], weight N) error {
	if err := g.insertNode(v, weight); err != nil {
		return err
	}
	if adv, ok := g.cur.vertex.(id.Advancer[T]); ok {
		adv.AdvancePast(v.Raw())
	}

	return nil
}

func (g *Graph[T, N, E]) insertNode(v id.VertexID[T], weight N) error {
	if _, exists := g.nodes[v]; exists {
		err := errors.Wrapf(ErrDuplicateIndex, "vertex %s", v)
		observe(AddNodeTotal, err)

		return err
	}
	g.nodes[v] = &Node[T, N]{ID: v, Weight: weight}
	observe(AddNodeTotal, nil)

	return nil
}

// HasNode reports whether v is a vertex of the graph.
// Complexity: O(1).
func (g *Graph[T, N, E]) HasNode(v id.VertexID[T]) bool {
	_, ok := g.nodes[v]

	return ok
}

// GetNode returns a copy of the node stored under v.
// Returns ErrNodeNotFound if v is absent.
// Complexity: O(1).
func (g *Graph[T, N, E]) GetNode(v id.VertexID[T]) (Node[T, N], error) {
	n, err := g.node(v)
	if err != nil {
		return Node[T, N]{}, err
	}

	return *n, nil
}

func (g *Graph[T, N, E]) node(v id.VertexID[T]) (*Node[T, N], error) {
	n, ok := g.nodes[v]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "vertex %s", v)
	}

	return n, nil
}

// NodeIDs returns every vertex identifier in ascending order.
// Complexity: O(V log V).
func (g *Graph[T, N, E]) NodeIDs() []id.VertexID[T] {
	out := make([]id.VertexID[T], 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	slices.SortFunc(out, id.VertexID[T].Compare)

	return out
}

// Nodes returns copies of every node, ordered by identifier.
// Complexity: O(V log V).
func (g *Graph[T, N, E]) Nodes() []Node[T, N] {
	ids := g.NodeIDs()
	out := make([]Node[T, N], len(ids))
	for i, v := range ids {
		out[i] = *g.nodes[v]
	}

	return out
}

// SetNodeWeight overwrites the weight of v.
func (g *Graph[T, N, E]) SetNodeWeight(v id.VertexID[T], weight N) error {
	n, err := g.node(v)
	if err != nil {
		return err
	}
	n.Weight = weight

	return nil
}

// ReplaceNodeWeight stores weight and returns the previous weight of v.
func (g *Graph[T, N, E]) ReplaceNodeWeight(v id.VertexID[T], weight N) (N, error) {
	n, err := g.node(v)
	if err != nil {
		var zero N

		return zero, err
	}
	old := n.Weight
	n.Weight = weight

	return old, nil
}

// TakeNodeWeight moves the weight out of v, leaving the zero value behind.
func (g *Graph[T, N, E]) TakeNodeWeight(v id.VertexID[T]) (N, error) {
	var zero N

	return g.ReplaceNodeWeight(v, zero)
}

// SwapNodeWeights exchanges the weights of a and b. Swapping a node with
// itself is a no-op.
func (g *Graph[T, N, E]) SwapNodeWeights(a, b id.VertexID[T]) error {
	na, err := g.node(a)
	if err != nil {
		return err
	}
	nb, err := g.node(b)
	if err != nil {
		return err
	}
	na.Weight, nb.Weight = nb.Weight, na.Weight

	return nil
}

// RemoveNode deletes vertex v and severs it from every hyperedge domain.
//
// Implementation:
//   - Stage 1: Validate presence (ErrNodeNotFound).
//   - Stage 2: For each incident hyperedge (from the incidence index), drop v
//     from its domain; a hyperedge left without members is removed entirely.
//   - Stage 3: Drop v's incidence entry and its catalog entry.
//
// Behavior highlights:
//   - Cascade: emptied hyperedges never survive, so the non-empty domain
//     invariant holds after every call. This is not reported as an error.
//   - Directed edges keep the relative order of the remaining members; if the
//     source is removed, the next member becomes the source.
//
// Returns:
//   - Node[T, N]: the removed node.
//   - error: ErrNodeNotFound if v is absent.
//
// Complexity:
//   - Time O(Σ_{e∋v} |e|), Space O(deg(v)).
func (g *Graph[T, N, E]) RemoveNode(v id.VertexID[T]) (Node[T, N], error) {
	n, err := g.node(v)
	if err != nil {
		observe(RemoveNodeTotal, err)

		return Node[T, N]{}, err
	}

	var (
		eid id.EdgeID[T]
		e   *Edge[T, E]
	)
	for _, eid = range g.incidentIDs(v) {
		e = g.edges[eid]
		e.Domain = slices.DeleteFunc(e.Domain, func(m id.VertexID[T]) bool { return m == v })
		if len(e.Domain) == 0 {
			delete(g.edges, eid)
			CascadeRemovedEdgesTotal.Inc()
			g.logger.Debug("cascade removed hyperedge",
				zap.Stringer("edge", eid),
				zap.Stringer("vertex", v),
			)
		}
	}
	delete(g.incidence, v)
	delete(g.nodes, v)
	observe(RemoveNodeTotal, nil)

	return *n, nil
}
