// SPDX-License-Identifier: MIT

package graphfile

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// Export turns g back into a Document. labels maps document labels to
// vertices; a vertex missing from labels is exported under its identifier
// text ("v3"). Node weights equal to the label are omitted.
//
// Export fails with ErrAliasedVertex when two labels name one vertex, and
// with ErrDuplicateLabel when an unlabelled vertex's identifier text is
// already taken by a label. Nodes and edges
// are written in ascending identifier order, so Build(Export(g)) yields a
// graph with the same structure and weights.
func Export[T id.Index, E core.Number](g *core.Graph[T, string, E], labels map[string]id.VertexID[T]) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	names := make(map[id.VertexID[T]]string, len(labels))
	for label, v := range labels {
		if !g.HasNode(v) {
			return nil, errors.Wrapf(core.ErrNodeNotFound, "label %q -> %s", label, v)
		}
		if prev, ok := names[v]; ok {
			first, second := min(prev, label), max(prev, label)

			return nil, errors.Wrapf(ErrAliasedVertex, "%s labelled %q and %q", v, first, second)
		}
		names[v] = label
	}
	for _, v := range g.NodeIDs() {
		if _, ok := names[v]; ok {
			continue
		}
		fallback := v.String()
		if other, taken := labels[fallback]; taken {
			return nil, errors.Wrapf(ErrDuplicateLabel, "unlabelled %s collides with label %q of %s", v, fallback, other)
		}
		names[v] = fallback
	}
	name := func(v id.VertexID[T]) string { return names[v] }

	doc := &Document{
		Directed: g.Directed(),
		Nodes:    make([]NodeSpec, 0, g.Order()),
		Edges:    make([]EdgeSpec, 0, g.Size()),
	}
	for _, n := range g.Nodes() {
		spec := NodeSpec{Label: name(n.ID)}
		if n.Weight != spec.Label {
			spec.Weight = n.Weight
		}
		doc.Nodes = append(doc.Nodes, spec)
	}
	for _, e := range g.Edges() {
		spec := EdgeSpec{Members: make([]string, len(e.Domain))}
		for k, v := range e.Domain {
			spec.Members[k] = name(v)
		}
		if w, ok := e.WeightValue(); ok {
			f := float64(w)
			spec.Weight = &f
		}
		doc.Edges = append(doc.Edges, spec)
	}

	return doc, nil
}
