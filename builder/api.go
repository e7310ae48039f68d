// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Constructors are index-agnostic closures that emit labelled vertices and
//     hyperedges into a Sink; BuildGraph/Apply lower them into a core.Graph
//     through its public AddNode/AddEdge/AddSurface operations.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// Sink receives the output of constructors. Vertices are addressed by
// label; labels must be added before a hyperedge references them.
type Sink interface {
	// AddVertex adds a vertex labelled label. Re-adding a label is a no-op,
	// so constructors can share vertices (e.g. two Paths over one "Center").
	AddVertex(label string) error

	// AddHyperedge adds a hyperedge over the labelled members, in order.
	// weighted=false emits an unweighted edge and ignores weight.
	AddHyperedge(weight float64, weighted bool, labels ...string) error

	// Directed reports the direction semantics of the target graph.
	Directed() bool
}

// Constructor applies a deterministic topology to a Sink using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors and preserve determinism for the same config and call order.
type Constructor func(s Sink, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Vertex weights are the labels produced by the ID scheme.
//
// Errors: constructor sentinels (ErrTooFewVertices, ErrNeedRandSource, ...)
// wrapped with "BuildGraph", or ErrConstructFailed for a nil constructor.
func BuildGraph[T id.Index, E core.Number](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[T, string, E], error) {
	g := core.NewGraph[T, string, E](gopts...)
	if _, err := Apply(g, bopts, cons...); err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}

	return g, nil
}

// Apply runs constructors against an existing graph and returns the
// label → vertex map of every vertex they added. Each call starts with an
// empty label map, so vertices are never shared across calls.
func Apply[T id.Index, E core.Number](g *core.Graph[T, string, E], bopts []BuilderOption, cons ...Constructor) (map[string]id.VertexID[T], error) {
	if g == nil {
		return nil, errors.Wrap(ErrConstructFailed, "nil graph")
	}
	cfg := newBuilderConfig(bopts...)
	s := newGraphSink(g)
	for i, fn := range cons {
		if fn == nil {
			return s.ids, errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(s, cfg); err != nil {
			return s.ids, err
		}
	}

	return s.ids, nil
}

// graphSink lowers Sink calls into a core.Graph.
type graphSink[T id.Index, E core.Number] struct {
	g   *core.Graph[T, string, E]
	ids map[string]id.VertexID[T]
}

func newGraphSink[T id.Index, E core.Number](g *core.Graph[T, string, E]) *graphSink[T, E] {
	return &graphSink[T, E]{g: g, ids: make(map[string]id.VertexID[T])}
}

func (s *graphSink[T, E]) Directed() bool { return s.g.Directed() }

func (s *graphSink[T, E]) AddVertex(label string) error {
	if _, ok := s.ids[label]; ok {
		return nil
	}
	v, err := s.g.AddNode(label)
	if err != nil {
		return errors.Wrapf(err, "AddVertex(%s)", label)
	}
	s.ids[label] = v

	return nil
}

func (s *graphSink[T, E]) AddHyperedge(weight float64, weighted bool, labels ...string) error {
	members := make([]id.VertexID[T], len(labels))
	for i, l := range labels {
		v, ok := s.ids[l]
		if !ok {
			return errors.Wrapf(ErrUnknownLabel, "%q", l)
		}
		members[i] = v
	}
	var err error
	if weighted {
		_, err = s.g.AddSurface(E(weight), members...)
	} else {
		_, err = s.g.AddEdge(members...)
	}

	return errors.Wrapf(err, "AddHyperedge(%v)", labels)
}
