// Package astar finds a cheapest path between two vertices of a hyperlath
// hypergraph using A* search.
//
// Costs follow the dijkstra package: crossing a hyperedge reaches each
// successor member at the edge's full weight, one when unweighted, and on
// directed graphs only from the source toward the targets.
//
// The open set is a min-heap on f = g + h with in-place decrease-key; the
// closed set, came_from, g_score and f_score are kept per run. A vertex
// whose cost improves after it was closed is reopened, so any admissible
// heuristic yields an optimal path. Admissibility is the caller's
// obligation; with astar.Zero the search settles vertices in exactly the
// order Dijkstra does.
//
// Usage:
//
//	p, err := astar.ShortestPath(g, h, start, goal)
//
//	s := astar.New(g, h, astar.WithGoal(goal), astar.WithMaxExpansions(1000))
//	p, err = s.Search(start)
//
// Errors: ErrNilGraph, ErrNilHeuristic, ErrNegativeWeight, ErrNoGoal,
// ErrOptionViolation, core.ErrNodeNotFound and search.ErrPathNotFound.
package astar
