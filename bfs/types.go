// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for another
// index type), it is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
//
// Hooks are stored untyped because options are shared by every index type;
// they are resolved against the walker's T when the walker is built.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	onEnqueue any // func(id.VertexID[T], int)
	onVisit   any // func(id.VertexID[T], int) error
	filter    any // func(curr, next id.VertexID[T]) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and no hooks.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback run when a vertex enters the queue.
func WithOnEnqueue[T id.Index](fn func(v id.VertexID[T], depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a vertex leaves the queue;
// returning an error from it stops the BFS.
func WithOnVisit[T id.Index](fn func(v id.VertexID[T], depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips the step curr → next when fn returns false.
func WithFilterNeighbor[T id.Index](fn func(curr, next id.VertexID[T]) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks are the typed callbacks of one walker; never nil after resolve.
type hooks[T id.Index] struct {
	onEnqueue func(id.VertexID[T], int)
	onVisit   func(id.VertexID[T], int) error
	filter    func(curr, next id.VertexID[T]) bool
}

// resolve asserts the untyped hooks back to T, defaulting absent ones.
func resolve[T id.Index](o Options) (hooks[T], error) {
	h := hooks[T]{
		onEnqueue: func(id.VertexID[T], int) {},
		onVisit:   func(id.VertexID[T], int) error { return nil },
		filter:    func(_, _ id.VertexID[T]) bool { return true },
	}
	var ok bool
	if o.onEnqueue != nil {
		if h.onEnqueue, ok = o.onEnqueue.(func(id.VertexID[T], int)); !ok {
			return h, mismatch[T]("OnEnqueue", o.onEnqueue)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(id.VertexID[T], int) error); !ok {
			return h, mismatch[T]("OnVisit", o.onVisit)
		}
	}
	if o.filter != nil {
		if h.filter, ok = o.filter.(func(curr, next id.VertexID[T]) bool); !ok {
			return h, mismatch[T]("FilterNeighbor", o.filter)
		}
	}

	return h, nil
}

func mismatch[T id.Index](name string, fn any) error {
	return errors.Wrap(ErrOptionViolation, fmt.Sprintf("%s hook %T does not take %s vertices", name, fn, id.Kind[T]()))
}

// Result holds the outcome of a BFS traversal:
//   - Start: the root of the search.
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex → hop distance from Start.
//   - Parent: vertex → predecessor in the BFS tree (Start has none).
type Result[T id.Index] struct {
	Start  id.VertexID[T]
	Order  []id.VertexID[T]
	Depth  map[id.VertexID[T]]int
	Parent map[id.VertexID[T]]id.VertexID[T]
}

// PathTo reconstructs a fewest-hops path from Start to dest.
// Returns search.ErrPathNotFound if dest was not reached.
func (r *Result[T]) PathTo(dest id.VertexID[T]) ([]id.VertexID[T], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(search.ErrPathNotFound, "bfs: no path to %s", dest)
	}

	return search.Reconstruct(r.Parent, r.Start, dest)
}
