// Package dfs provides ordering algorithms on directed hypergraphs,
// including topological sort.
//
// In a directed hypergraph every hyperedge leads from its source to each of
// its targets, so a topological order places the source of every hyperedge
// before all of its targets.
//
// Complexity:
//
//   - Time:   O(V + Σ|e|) plus sorting each successor set
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T id.Index, N any, E any] struct {
	graph *core.Graph[T, N, E]
	state map[id.VertexID[T]]int // White, Gray, Black
	order []id.VertexID[T]       // post-order
}

// TopologicalSort computes a topological ordering of all vertices of a
// directed hypergraph. Roots are tried in ascending identifier order and
// successors are explored ascending, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil, ErrUndirectedGraph.
//   - ErrCycleDetected if a directed cycle exists.
//   - core.ErrNodeNotFound on dangling members (lazy graphs).
func TopologicalSort[T id.Index, N any, E any](g *core.Graph[T, N, E]) ([]id.VertexID[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	verts := g.NodeIDs()
	sorter := &topoSorter[T, N, E]{
		graph: g,
		state: make(map[id.VertexID[T]]int, len(verts)),
		order: make([]id.VertexID[T], 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting back edges.
func (t *topoSorter[T, N, E]) visit(v id.VertexID[T]) error {
	switch t.state[v] {
	case Gray:
		return errors.Wrapf(ErrCycleDetected, "at %s", v)
	case Black:
		return nil
	}
	t.state[v] = Gray

	succ, err := t.graph.Successors(v)
	if err != nil {
		return errors.Wrapf(err, "dfs: expand %s", v)
	}
	for _, nb := range succ.Sorted() {
		if err = t.visit(nb); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
