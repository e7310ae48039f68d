// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// hyperlath hypergraphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices using a min-heap with lazy decrease-key.
//   - Crossing a hyperedge from u reaches each successor member at the cost of
//     the edge's full weight. Unweighted edges cost one, so an unweighted
//     graph yields hop counts. On directed graphs only hyperedges whose source
//     is u are crossed, toward their targets.
//   - Equal distances are settled in ascending identifier order.
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Result.Via records which hyperedge each vertex was reached through.
//   - FindPath stops as soon as the goal is settled.
//
// Performance and complexity (A = Σ|e|·(|e|-1) member steps):
//
//   - Time:  O((V + A) log A)
//   - Space: O(V + A) worst-case entries in the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            nil *core.Graph.
//   - ErrNegativeWeight:      any weighted edge below zero (fast pre-scan).
//   - ErrBadMaxDistance:      WithMaxDistance with a negative or NaN value.
//   - ErrBadInfThreshold:     WithInfEdgeThreshold with a non-positive or NaN value.
//   - core.ErrNodeNotFound:   missing start or goal.
//   - search.ErrPathNotFound: goal unreachable or beyond MaxDistance.
//
// Usage:
//
//	s := dijkstra.New(g, dijkstra.WithMaxDistance(100))
//	res, err := s.Search(start)        // distances and predecessors
//	path, err := s.FindPath(start, goal) // search.Path{Vertices, Cost}
//
// Thread safety:
//
//   - A Solver is not safe for concurrent use, and the graph must not be
//     modified while a run is in progress.
package dijkstra
