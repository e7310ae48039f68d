// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a hyperlath core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. One step crosses one hyperedge, from a
//     vertex to one of its successors (core.Graph.Successors). Supports:
//   - Pre-order hook (OnVisit), which may abort the traversal
//   - Depth limiting
//   - Neighbor filtering with a skipped-steps counter
//   - Forest traversal over every component (WithFullTraversal)
//   - FindCycle: returns one directed cycle of a directed hypergraph, using
//     vertex coloring (White, Gray, Black).
//   - TopologicalSort: orders a directed acyclic hypergraph so that every
//     hyperedge source precedes its targets; ErrCycleDetected otherwise.
//
// Determinism:
//
//	DFS uses an explicit stack. Successors are pushed largest identifier
//	first so the smallest unvisited one pops next; a vertex is marked when
//	popped. FindCycle and TopologicalSort try roots and successors in
//	ascending order.
//
// Complexity:
//
//   - DFS:             Time O(V + Σ|e|), Memory O(V + Σ|e|) for the stack
//   - FindCycle:       Time O(V + Σ|e|), Memory O(V)
//   - TopologicalSort: Time O(V + Σ|e|), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrOptionViolation      hook typed for another index type
//   - ErrUndirectedGraph      FindCycle/TopologicalSort on an undirected graph
//   - ErrCycleDetected        TopologicalSort met a directed cycle
//   - core.ErrNodeNotFound    missing start vertex or dangling member
//   - hook errors             propagated from OnVisit
package dfs
