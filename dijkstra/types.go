// Package dijkstra defines configuration options, sentinel errors and result
// types for Dijkstra's shortest-path algorithm on weighted hypergraphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are neither settled nor reported.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Thresholds are float64 so that one Options value serves every weight type.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the default configuration: no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance stops exploration once the closest frontier vertex is
// farther than d. A negative or NaN d is recorded as ErrBadMaxDistance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = errors.Wrapf(ErrBadMaxDistance, "got %v", d)

			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold makes every edge weighing t or more impassable.
// A non-positive or NaN t is recorded as ErrBadInfThreshold.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 || math.IsNaN(t) {
			o.err = errors.Wrapf(ErrBadInfThreshold, "got %v", t)

			return
		}
		o.InfEdgeThreshold = t
	}
}

// Result is the outcome of a single-source run.
//
//   - Start: the source of the run.
//   - Dist:  vertex → minimum distance from Start; unreachable vertices are absent.
//   - Prev:  vertex → predecessor on one shortest path (Start has none).
//   - Via:   vertex → hyperedge crossed to reach it from Prev.
type Result[T id.Index, E core.Number] struct {
	Start id.VertexID[T]
	Dist  map[id.VertexID[T]]E
	Prev  map[id.VertexID[T]]id.VertexID[T]
	Via   map[id.VertexID[T]]id.EdgeID[T]
}

// Reached reports whether v has a finite distance from Start.
func (r *Result[T, E]) Reached(v id.VertexID[T]) bool {
	_, ok := r.Dist[v]

	return ok
}

// PathTo rebuilds the shortest path from Start to goal.
// Returns search.ErrPathNotFound if goal was not reached.
func (r *Result[T, E]) PathTo(goal id.VertexID[T]) (search.Path[T, E], error) {
	cost, ok := r.Dist[goal]
	if !ok {
		return search.Path[T, E]{}, errors.Wrapf(search.ErrPathNotFound, "dijkstra: %s unreachable from %s", goal, r.Start)
	}
	vs, err := search.Reconstruct(r.Prev, r.Start, goal)
	if err != nil {
		return search.Path[T, E]{}, err
	}

	return search.Path[T, E]{Vertices: vs, Cost: cost}, nil
}
