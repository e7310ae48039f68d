// Package dfs implements depth-first search (single-source and forest) on a
// hyperlath core.Graph.
//
// The traversal is iterative: an explicit LIFO stack replaces recursion, a
// vertex is marked visited when it is popped, and successors are pushed in
// descending identifier order so the smallest unvisited successor is
// explored first.
package dfs

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// frame is one pending stack entry.
type frame[T id.Index] struct {
	v         id.VertexID[T]
	depth     int
	parent    id.VertexID[T]
	hasParent bool
}

// Walker is a reusable depth-first operator bound to one graph.
//
// Walker implements search.Traversal and search.Searcher[T, *Result[T]].
type Walker[T id.Index, N any, E any] struct {
	search.Marks[T]

	graph *core.Graph[T, N, E]
	opts  Options
	hooks hooks[T]
	err   error

	stack []frame[T]
	res   *Result[T]
}

var _ search.Traversal[uint32] = (*Walker[uint32, struct{}, struct{}])(nil)

// New builds a Walker over g. Option errors are reported by Search.
func New[T id.Index, N any, E any](g *core.Graph[T, N, E], opts ...Option) *Walker[T, N, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Walker[T, N, E]{graph: g, opts: o}
	w.hooks, w.err = resolve[T](o)

	return w
}

// DFS performs depth-first search on g from start.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - core.ErrNodeNotFound: start is missing, or a dangling member was met.
//   - any error returned by OnVisit.
func DFS[T id.Index, N any, E any](g *core.Graph[T, N, E], start id.VertexID[T], opts ...Option) (*Result[T], error) {
	return New(g, opts...).Search(start)
}

// Search runs one traversal from start. With WithFullTraversal it then
// restarts from every unvisited vertex in ascending order.
// On error the partial result is returned alongside it.
//
// Complexity: O(V + Σ|e|) pushes plus sorting each successor set.
func (w *Walker[T, N, E]) Search(start id.VertexID[T]) (*Result[T], error) {
	if w.graph == nil {
		return nil, ErrGraphNil
	}
	if w.err != nil {
		return nil, w.err
	}
	if !w.graph.HasNode(start) {
		return nil, errors.Wrapf(core.ErrNodeNotFound, "dfs: start %s", start)
	}

	n := w.graph.Order()
	w.Reset(n)
	w.stack = w.stack[:0]
	w.res = &Result[T]{
		Order:  make([]id.VertexID[T], 0, n),
		Depth:  make(map[id.VertexID[T]]int, n),
		Parent: make(map[id.VertexID[T]]id.VertexID[T], n),
	}

	if err := w.tree(start); err != nil {
		return w.res, err
	}
	if w.opts.FullTraversal {
		for _, v := range w.graph.NodeIDs() {
			if w.HasVisited(v) {
				continue
			}
			if err := w.tree(v); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// tree explores everything reachable from root.
func (w *Walker[T, N, E]) tree(root id.VertexID[T]) error {
	w.stack = append(w.stack, frame[T]{v: root})
	var f frame[T]
	for len(w.stack) > 0 {
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if !w.Mark(f.v) {
			continue
		}

		w.res.Order = append(w.res.Order, f.v)
		w.res.Depth[f.v] = f.depth
		if f.hasParent {
			w.res.Parent[f.v] = f.parent
		}
		if err := w.hooks.onVisit(f.v, f.depth); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit at %s", f.v)
		}
		if err := w.push(f); err != nil {
			return err
		}
	}

	return nil
}

// push stacks the unvisited successors of f, largest identifier first.
func (w *Walker[T, N, E]) push(f frame[T]) error {
	if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
		return nil
	}
	succ, err := w.graph.Successors(f.v)
	if err != nil {
		return errors.Wrapf(err, "dfs: expand %s", f.v)
	}
	next := succ.Sorted()
	slices.Reverse(next)
	for _, nb := range next {
		if w.HasVisited(nb) {
			continue
		}
		if !w.hooks.filter(f.v, nb) {
			w.res.SkippedNeighbors++

			continue
		}
		w.stack = append(w.stack, frame[T]{v: nb, depth: f.depth + 1, parent: f.v, hasParent: true})
	}

	return nil
}
