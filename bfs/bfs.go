// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional hooks, depth limiting, and neighbor filtering. A hop crosses one
// hyperedge: from a vertex to any of its successors.
package bfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T id.Index] struct {
	v     id.VertexID[T]
	depth int
}

// Walker is a reusable breadth-first operator bound to one graph.
// It owns its queue and visited set; the graph is only read.
//
// Walker implements search.Traversal and search.Searcher[T, *Result[T]].
type Walker[T id.Index, N any, E any] struct {
	search.Marks[T]

	graph *core.Graph[T, N, E]
	opts  Options
	hooks hooks[T]
	err   error // option violation, reported by Search

	queue []queueItem[T]
	res   *Result[T]
}

var _ search.Searcher[uint32, *Result[uint32]] = (*Walker[uint32, struct{}, struct{}])(nil)

// New builds a Walker over g. Invalid options do not fail here; they are
// reported by every Search call.
func New[T id.Index, N any, E any](g *core.Graph[T, N, E], opts ...Option) *Walker[T, N, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Walker[T, N, E]{graph: g, opts: o, err: o.err}
	if w.err == nil {
		w.hooks, w.err = resolve[T](o)
	}

	return w
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrOptionViolation: an option was invalid.
//   - core.ErrNodeNotFound: start is missing, or a dangling member was met.
//   - any error returned by the OnVisit hook.
func BFS[T id.Index, N any, E any](g *core.Graph[T, N, E], start id.VertexID[T], opts ...Option) (*Result[T], error) {
	return New(g, opts...).Search(start)
}

// Search runs one traversal from start. Neighbors are expanded in ascending
// identifier order, so Order is deterministic. On error the partial result
// gathered so far is returned alongside it.
//
// Complexity: O(V + Σ|domain|) plus O(d log d) per expanded vertex.
func (w *Walker[T, N, E]) Search(start id.VertexID[T]) (*Result[T], error) {
	if w.graph == nil {
		return nil, ErrGraphNil
	}
	if w.err != nil {
		return nil, w.err
	}
	if !w.graph.HasNode(start) {
		return nil, errors.Wrapf(core.ErrNodeNotFound, "bfs: start %s", start)
	}

	n := w.graph.Order()
	w.Reset(n)
	w.queue = make([]queueItem[T], 0, n)
	w.res = &Result[T]{
		Start:  start,
		Order:  make([]id.VertexID[T], 0, n),
		Depth:  make(map[id.VertexID[T]]int, n),
		Parent: make(map[id.VertexID[T]]id.VertexID[T], n),
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and appends it to the queue.
func (w *Walker[T, N, E]) enqueue(v id.VertexID[T], d int) {
	w.Mark(v)
	w.res.Depth[v] = d
	w.hooks.onEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty or error.
func (w *Walker[T, N, E]) loop() error {
	var item queueItem[T]
	for len(w.queue) > 0 {
		item = w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.hooks.onVisit(item.v, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at %s", item.v)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues each unseen successor of item that passes the filter and
// the depth limit.
func (w *Walker[T, N, E]) expand(item queueItem[T]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	succ, err := w.graph.Successors(item.v)
	if err != nil {
		return errors.Wrapf(err, "bfs: expand %s", item.v)
	}
	for _, nb := range succ.Sorted() {
		if w.HasVisited(nb) || !w.hooks.filter(item.v, nb) {
			continue
		}
		w.res.Parent[nb] = item.v
		w.enqueue(nb, next)
	}

	return nil
}
