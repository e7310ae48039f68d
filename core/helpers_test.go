// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// graph is the instantiation used by most tests.
type graph = core.Graph[uint32, string, int]

// V and E shorten identifier literals in assertions.
func V(raw uint32) id.VertexID[uint32] { return id.Vertex(raw) }
func E(raw uint32) id.EdgeID[uint32]   { return id.Edge(raw) }

// addNodes inserts n nodes named "n0".."n<n-1>" and returns their ids.
func addNodes(t *testing.T, g *graph, n int) []id.VertexID[uint32] {
	t.Helper()
	out := make([]id.VertexID[uint32], n)
	for i := range out {
		vid, err := g.AddNode(fmt.Sprintf("n%d", i))
		require.NoError(t, err)
		out[i] = vid
	}

	return out
}

// buildFanGraph builds the reference hypergraph used across tests:
//
//	v0 v1 v2 v3
//	e0 = {v0, v1, v2}
//	e1 = {v1, v2, v3}
//
// Order 4, size 2, degree(v1) = 2, neighbors(v1) = {v0, v2, v3}.
func buildFanGraph(t *testing.T, opts ...core.GraphOption) *graph {
	t.Helper()
	g := core.NewGraph[uint32, string, int](opts...)
	vs := addNodes(t, g, 4)
	_, err := g.AddEdge(vs[0], vs[1], vs[2])
	require.NoError(t, err)
	_, err = g.AddEdge(vs[1], vs[2], vs[3])
	require.NoError(t, err)

	return g
}

// requireDomainsNonEmpty checks that no stored hyperedge is empty and that
// every member's incidence agrees with FindEdgesWithNode.
func requireDomainsNonEmpty(t *testing.T, g *graph) {
	t.Helper()
	for _, edge := range g.Edges() {
		require.NotEmpty(t, edge.Domain, "edge %s", edge.ID)
		for _, m := range edge.Domain {
			require.Contains(t, g.FindEdgesWithNode(m), edge.ID)
		}
	}
}
