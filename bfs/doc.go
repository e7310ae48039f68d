// Package bfs provides breadth-first search over a hyperlath core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//     One hop crosses one hyperedge, from a vertex to any of its successors
//     (core.Graph.Successors): every co-member on undirected graphs, the
//     targets of hyperedges the vertex is the source of on directed graphs.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → hop distance from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Supports hooks OnEnqueue and OnVisit (which may abort with an error),
//     neighbor filtering, and a MaxDepth limit.
//   - Components groups vertices into (weakly) connected components.
//
// Determinism
//
//	A vertex is marked visited when it is enqueued, and successors are
//	enqueued in ascending identifier order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = order, Σ|e| = total domain size)
//
//   - Time:   O(V + Σ|e|) plus sorting each successor set
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//
//	w := bfs.New(g,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, next id.VertexID[uint32]) bool { return next != skip }),
//	    bfs.WithOnVisit(func(v id.VertexID[uint32], depth int) error { return nil }),
//	)
//	res, err = w.Search(start)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      for an invalid option (negative MaxDepth, hook of the wrong index type).
//   - core.ErrNodeNotFound    if the start vertex does not exist, or a dangling member is met.
//   - search.ErrPathNotFound  from Result.PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
