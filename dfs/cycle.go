// Package dfs implements cycle detection for directed hypergraphs.
// FindCycle uses three-color marking: reaching a Gray vertex again closes a
// cycle, which is read back from the current DFS path.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

type cycleFinder[T id.Index, N any, E any] struct {
	graph *core.Graph[T, N, E]
	state map[id.VertexID[T]]int
	path  []id.VertexID[T]
	cycle []id.VertexID[T]
}

// FindCycle returns one directed cycle of g as the vertex sequence
// c[0] → c[1] → … → c[len-1] → c[0], or nil if g is acyclic.
// The search is deterministic: roots and successors are tried ascending.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, core.ErrNodeNotFound on dangling
// members.
// Complexity: O(V + Σ|e|) plus sorting.
func FindCycle[T id.Index, N any, E any](g *core.Graph[T, N, E]) ([]id.VertexID[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	f := &cycleFinder[T, N, E]{graph: g, state: make(map[id.VertexID[T]]int, g.Order())}
	for _, v := range g.NodeIDs() {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return nil, err
		}
		if f.cycle != nil {
			return f.cycle, nil
		}
	}

	return nil, nil
}

func (f *cycleFinder[T, N, E]) visit(v id.VertexID[T]) error {
	f.state[v] = Gray
	f.path = append(f.path, v)

	succ, err := f.graph.Successors(v)
	if err != nil {
		return errors.Wrapf(err, "dfs: expand %s", v)
	}
	for _, nb := range succ.Sorted() {
		switch f.state[nb] {
		case White:
			if err = f.visit(nb); err != nil {
				return err
			}
			if f.cycle != nil {
				return nil
			}
		case Gray:
			f.cycle = f.closeAt(nb)

			return nil
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return nil
}

// closeAt copies the path suffix starting at v.
func (f *cycleFinder[T, N, E]) closeAt(v id.VertexID[T]) []id.VertexID[T] {
	for i := len(f.path) - 1; i >= 0; i-- {
		if f.path[i] == v {
			return append([]id.VertexID[T](nil), f.path[i:]...)
		}
	}

	return nil
}
