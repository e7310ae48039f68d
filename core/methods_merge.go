// File: methods_merge.go
// Role: Hyperedge merging: union of two domains under a fresh identifier.

package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperlath/id"
)

// MergeEdgesFunc replaces hyperedges a and b with a single hyperedge whose
// domain is the union of both.
//
// Implementation:
//   - Stage 1: Validate inputs (ErrSelfMerge, ErrEdgeNotFound).
//   - Stage 2: Union the domains; a directed union keeps a's members first so
//     a's source stays the source.
//   - Stage 3: Allocate a fresh identifier and insert the merged edge.
//   - Stage 4: Remove a and b.
//
// Weight rule:
//   - both weighted: combine(a.Weight, b.Weight)
//   - one weighted:  that weight
//   - none:          unweighted
//
// If allocation fails (ErrIndexOutOfBounds, ErrDuplicateIndex) the graph is
// left unchanged.
//
// Complexity: O(|a| + |b|) plus the sort of an undirected union.
func (g *Graph[T, N, E]) MergeEdgesFunc(a, b id.EdgeID[T], combine func(x, y E) E) (id.EdgeID[T], error) {
	merged, err := g.mergeEdges(a, b, combine)
	observe(MergeEdgesTotal, err)

	return merged, err
}

func (g *Graph[T, N, E]) mergeEdges(a, b id.EdgeID[T], combine func(x, y E) E) (id.EdgeID[T], error) {
	if a == b {
		return id.EdgeID[T]{}, errors.Wrapf(ErrSelfMerge, "edge %s", a)
	}
	ea, err := g.edge(a)
	if err != nil {
		return id.EdgeID[T]{}, err
	}
	eb, err := g.edge(b)
	if err != nil {
		return id.EdgeID[T]{}, err
	}

	members := make([]id.VertexID[T], 0, len(ea.Domain)+len(eb.Domain))
	members = append(members, ea.Domain...)
	members = append(members, eb.Domain...)
	domain, err := g.normalizeDomain(members)
	if err != nil {
		return id.EdgeID[T]{}, err
	}

	merged := &Edge[T, E]{Domain: domain, Direction: g.attrs.Direction}
	switch {
	case ea.Weighted && eb.Weighted:
		merged.Weight, merged.Weighted = combine(ea.Weight, eb.Weight), true
	case ea.Weighted:
		merged.Weight, merged.Weighted = ea.Weight, true
	case eb.Weighted:
		merged.Weight, merged.Weighted = eb.Weight, true
	}

	raw, err := g.cur.edge.Next()
	if err != nil {
		g.logger.Warn("edge generator failed", zap.Error(err))

		return id.EdgeID[T]{}, errors.Wrap(err, "core: MergeEdges")
	}
	merged.ID = id.Edge(raw)
	if _, exists := g.edges[merged.ID]; exists {
		return id.EdgeID[T]{}, errors.Wrapf(ErrDuplicateIndex, "edge %s", merged.ID)
	}
	g.edges[merged.ID] = merged
	g.linkAll(merged)

	g.unlinkAll(ea)
	delete(g.edges, a)
	g.unlinkAll(eb)
	delete(g.edges, b)

	g.logger.Debug("merged hyperedges",
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.Stringer("merged", merged.ID),
		zap.Int("members", len(domain)),
	)

	return merged.ID, nil
}

// MergeEdges is MergeEdgesFunc with weights combined by addition.
func MergeEdges[T id.Index, N any, E Number](g *Graph[T, N, E], a, b id.EdgeID[T]) (id.EdgeID[T], error) {
	return g.MergeEdgesFunc(a, b, func(x, y E) E { return x + y })
}
