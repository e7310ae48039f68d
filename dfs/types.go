// Package dfs defines types and options for depth-first search traversal,
// including hooks, depth limiting, neighbor filtering, full-graph (forest)
// traversal, and basic diagnostics.
package dfs

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/id"
)

// Vertex visitation colors used by TopologicalSort and FindCycle.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an Option hook is typed for another index type.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCycleDetected indicates that a directed cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned by operations defined only on directed hypergraphs.
	ErrUndirectedGraph = errors.New("dfs: operation requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V + Σ|e|) when filters and hooks are O(1).
type Options struct {
	// MaxDepth, if non-negative, limits expansion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, continues from every unvisited vertex after the
	// start vertex's tree is exhausted, covering disconnected components.
	FullTraversal bool

	onVisit any // func(id.VertexID[T], int) error
	filter  any // func(curr, next id.VertexID[T]) bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no filtering
// and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook, called when a vertex is popped
// and marked. Returning an error aborts the traversal.
func WithOnVisit[T id.Index](fn func(v id.VertexID[T], depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth limits traversal depth; negative values mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips the step curr → next when fn returns false.
// Skipped steps are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[T id.Index](fn func(curr, next id.VertexID[T]) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

type hooks[T id.Index] struct {
	onVisit func(id.VertexID[T], int) error
	filter  func(curr, next id.VertexID[T]) bool
}

func resolve[T id.Index](o Options) (hooks[T], error) {
	h := hooks[T]{
		onVisit: func(id.VertexID[T], int) error { return nil },
		filter:  func(_, _ id.VertexID[T]) bool { return true },
	}
	var ok bool
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(id.VertexID[T], int) error); !ok {
			return h, errors.Wrap(ErrOptionViolation, fmt.Sprintf("OnVisit hook %T does not take %s vertices", o.onVisit, id.Kind[T]()))
		}
	}
	if o.filter != nil {
		if h.filter, ok = o.filter.(func(curr, next id.VertexID[T]) bool); !ok {
			return h, errors.Wrap(ErrOptionViolation, fmt.Sprintf("FilterNeighbor hook %T does not take %s vertices", o.filter, id.Kind[T]()))
		}
	}

	return h, nil
}

// Result captures the outcome of a depth-first traversal.
type Result[T id.Index] struct {
	// Order records vertices in the sequence they were popped and marked (pre-order).
	Order []id.VertexID[T]

	// Depth maps each vertex to its depth in the DFS tree.
	Depth map[id.VertexID[T]]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots do not appear in this map.
	Parent map[id.VertexID[T]]id.VertexID[T]

	// SkippedNeighbors counts steps rejected by FilterNeighbor.
	SkippedNeighbors int
}
