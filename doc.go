// Package hyperlath is an in-memory hypergraph engine: an edge (a hyperedge)
// joins any non-empty set of vertices, and the same storage and algorithms
// work over any integer identifier type and either direction semantics.
//
// What is in the box?
//
//	• Identifiers: distinct VertexID[T] / EdgeID[T] over any Go integer,
//	  minted by Counter, AtomicCounter or seeded Random generators
//	• Storage: core.Graph with insert/remove/merge, neighbours, degree,
//	  incidence and clone, backed by roaring bitmaps
//	• Traversals: BFS, DFS, components, topological sort, cycle search
//	• Shortest paths: Dijkstra and A*, sharing the search capabilities
//	• Matrix views: incidence, clique-expansion adjacency, Floyd–Warshall
//	• Builders: path, cycle, star, grid, sunflower, k-uniform and random
//	  hypergraphs, plus RandomEdge for fuzzing and benchmarks
//	• Documents: YAML/JSON hypergraph files and the hyperlath CLI
//
// Packages:
//
//	id/: identifier types, generators, marshalling
//	core/: Graph, Node, Edge, Attributes, sentinel errors, metrics
//	search/: Traversal / Searcher capabilities, Path, shared stepping
//	bfs/ dfs/: unweighted traversals
//	dijkstra/: single-source shortest paths
//	astar/: heuristic-guided shortest path
//	matrix/: dense incidence/adjacency/distance matrices
//	builder/: deterministic and random generators
//	graphfile/: declarative document format
//	cmd/hyperlath: command line front end
//
// Quick example, a hyperedge {a, b, c} and a weighted pair {c, d}:
//
//	g := core.NewGraph[uint32, string, int]()
//	a, _ := g.AddNode("a")
//	...
//	_, _ = g.AddEdge(a, b, c)
//	_, _ = g.AddSurface(5, c, d)
//	path, _ := dijkstra.ShortestPath(g, a, d) // [a c d], cost 6
package hyperlath
