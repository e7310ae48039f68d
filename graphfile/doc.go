// SPDX-License-Identifier: MIT

// Package graphfile reads and writes hypergraphs as declarative YAML or JSON
// documents.
//
// A document lists labelled nodes and hyperedges over those labels. Build
// lowers it into core.Graph through AddNode, AddEdge and AddSurface only;
// Export is the inverse. Nodes are created before any edge, so edges may
// reference labels declared further down the document.
//
//	l, err := graphfile.Load(r, graphfile.FormatYAML)
//	start, _ := l.Vertex("depot")
//	res, err := dijkstra.Dijkstra(l.Graph, start)
package graphfile
