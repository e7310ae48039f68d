package astar

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNoGoal indicates that Search was called without WithGoal.
	ErrNoGoal = errors.New("astar: no goal configured")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from v to goal. It must never
// overestimate for the returned path to be optimal. The goal is the one of
// the current run, so one heuristic serves a Solver queried for many goals.
type Heuristic[T id.Index, E core.Number] func(v, goal id.VertexID[T]) E

// Zero is the heuristic that always answers zero; with it A* settles
// vertices exactly like Dijkstra.
func Zero[T id.Index, E core.Number](_, _ id.VertexID[T]) E { return 0 }

// Option configures a Solver.
type Option func(*Options)

// Options holds the A* configuration. The goal is stored untyped because
// options are shared by every index type; it is resolved against the
// solver's T when the solver is built.
type Options struct {
	// MaxExpansions, if > 0, aborts the run with search.ErrPathNotFound after
	// that many vertex expansions.
	MaxExpansions int

	goal any // id.VertexID[T]
	err  error
}

// DefaultOptions returns Options with no goal and no expansion budget.
func DefaultOptions() Options {
	return Options{}
}

// WithGoal sets the goal used by Search.
func WithGoal[T id.Index](goal id.VertexID[T]) Option {
	return func(o *Options) {
		o.goal = goal
	}
}

// WithMaxExpansions bounds the number of expanded vertices.
// n < 0 is recorded as ErrOptionViolation; 0 means no bound.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxExpansions cannot be negative (%d)", n)

			return
		}
		o.MaxExpansions = n
	}
}

// resolveGoal asserts the untyped goal back to T.
func resolveGoal[T id.Index](o Options) (goal id.VertexID[T], ok bool, err error) {
	if o.goal == nil {
		return goal, false, nil
	}
	if goal, ok = o.goal.(id.VertexID[T]); !ok {
		return goal, false, errors.Wrap(ErrOptionViolation,
			fmt.Sprintf("goal %T is not a %s vertex", o.goal, id.Kind[T]()))
	}

	return goal, true, nil
}
