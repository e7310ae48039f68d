// SPDX-License-Identifier: MIT

package graphfile

import (
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// Graph is the graph type documents lower into: uint32 identifiers, string
// node weights and float64 edge weights.
type Graph = core.Graph[uint32, string, float64]

// Loaded is a built document: the graph and both directions of the label
// mapping.
type Loaded struct {
	Graph  *Graph
	Labels map[string]id.VertexID[uint32]
	Names  map[id.VertexID[uint32]]string
}

// Vertex resolves a label.
func (l *Loaded) Vertex(label string) (id.VertexID[uint32], error) {
	v, ok := l.Labels[label]
	if !ok {
		return id.VertexID[uint32]{}, errors.Wrapf(ErrUnknownLabel, "%q", label)
	}

	return v, nil
}

// Label returns the document label of v, or v's identifier text when v was
// not declared by the document.
func (l *Loaded) Label(v id.VertexID[uint32]) string {
	if name, ok := l.Names[v]; ok {
		return name
	}

	return v.String()
}

// Load decodes a document from r and builds it. opts are forwarded to
// core.NewGraph; a directed document adds core.WithDirected.
func Load(r io.Reader, f Format, opts ...core.GraphOption) (*Loaded, error) {
	doc, err := Decode(r, f)
	if err != nil {
		return nil, err
	}

	return doc.Build(opts...)
}

// Build lowers the document into a new graph. All nodes are added first, in
// document order, so an edge may name a node declared after it.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel, ErrUnknownLabel, and the core
// sentinels of AddEdge/AddSurface (e.g. core.ErrEmptyHyperedge), each
// wrapped with the offending position.
func (doc *Document) Build(opts ...core.GraphOption) (*Loaded, error) {
	if doc.Directed {
		opts = append(opts, core.WithDirected())
	}
	g := core.NewGraph[uint32, string, float64](opts...)
	l := &Loaded{
		Graph:  g,
		Labels: make(map[string]id.VertexID[uint32], len(doc.Nodes)),
		Names:  make(map[id.VertexID[uint32]]string, len(doc.Nodes)),
	}

	for i, n := range doc.Nodes {
		if n.Label == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "nodes[%d]", i)
		}
		if _, dup := l.Labels[n.Label]; dup {
			return nil, errors.Wrapf(ErrDuplicateLabel, "nodes[%d] %q", i, n.Label)
		}
		w := n.Weight
		if w == "" {
			w = n.Label
		}
		v, err := g.AddNode(w)
		if err != nil {
			return nil, errors.Wrapf(err, "nodes[%d] %q", i, n.Label)
		}
		l.Labels[n.Label] = v
		l.Names[v] = n.Label
	}

	for i, e := range doc.Edges {
		members := make([]id.VertexID[uint32], len(e.Members))
		for k, label := range e.Members {
			v, err := l.Vertex(label)
			if err != nil {
				return nil, errors.Wrapf(err, "edges[%d]", i)
			}
			members[k] = v
		}
		var err error
		if e.Weight != nil {
			_, err = g.AddSurface(*e.Weight, members...)
		} else {
			_, err = g.AddEdge(members...)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "edges[%d]", i)
		}
	}

	return l, nil
}
