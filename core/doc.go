// Package core provides the in-memory hypergraph storage engine of hyperlath.
//
// A hypergraph H = (V, E) generalizes a graph: every hyperedge e ∈ E connects
// an arbitrary non-empty set of vertices, its domain. core.Graph owns both
// catalogs and keeps a vertex → incident-hyperedge index (64-bit roaring
// bitmaps) up to date in the same call as every mutation, so removing a vertex
// touches only the hyperedges that contain it.
//
// Type parameters:
//
//	T  raw identifier type (any Go integer), see package id
//	N  node weight type
//	E  edge weight type; operations that add or compare weights require Number
//
// Semantics:
//
//   - Undirected (default): domains are sets, stored sorted ascending; every
//     co-member is a neighbor and a successor.
//   - Directed (WithDirected): domain order matters. Domain[0] is the source,
//     Domain[1:] are targets; Successors(v) only follows hyperedges whose
//     source is v.
//   - Surfaces: AddSurface attaches a weight E to a hyperedge; AddEdge leaves
//     it unweighted. Shortest-path searches treat unweighted hyperedges as
//     cost 1.
//
// Configuration Options (GraphOption):
//
//	WithDirected()                directed hyperedges
//	WithDirection(d)              explicit Direction
//	WithLazyValidation()          allow members that are not (yet) nodes
//	WithVertexGenerator(gen)      vertex identifier strategy (default id.Counter from 0)
//	WithEdgeGenerator(gen)        edge identifier strategy (default id.Counter from 0)
//	WithLogger(l)                 zap logger (default zap.NewNop)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddNode(w) (VertexID, error)                 // O(1)
//	InsertNode(v, w) error                       // O(1)
//	RemoveNode(v) (Node, error)                  // O(Σ_{e∋v}|e|), cascades empty hyperedges
//
//	// Hyperedge lifecycle
//	AddEdge(members...) (EdgeID, error)          // O(k log k)
//	AddSurface(w, members...) (EdgeID, error)    // O(k log k)
//	RemoveEdge(e) (Edge, error)                  // O(k)
//	MergeEdgesFunc(a, b, combine) (EdgeID, error)
//	MergeEdges(g, a, b) (EdgeID, error)          // additive weights
//
//	// Queries
//	Neighbors(v), Successors(v) (VertexSet, error)
//	FindEdgesWithNode(v) []EdgeID, IncidentEdges(v) ([]EdgeID, error)
//	Degree(v), Order(), Size(), Stats()
//
//	// Copies
//	Clone(), CloneEmpty(), Clear(), InducedSubgraph(g, keep), UnweightedView(g)
//
// Invariants:
//
//   - No stored hyperedge has an empty domain; RemoveNode deletes hyperedges
//     it empties.
//   - Members of a domain are unique.
//   - Identifiers are never reissued by the graph's cursor, even after
//     removal or Clear.
//
// Concurrency:
//
// A Graph holds no locks and must be confined to one goroutine, or guarded by
// the caller. Search operators read it in place.
//
// Observability:
//
// Every mutation increments a hyperlath_core_*_total{status} prometheus
// counter; cascades and merges log at debug level through the injected zap
// logger.
package core
