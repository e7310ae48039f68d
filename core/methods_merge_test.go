// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

func TestMergeEdges_Union(t *testing.T) {
	g := buildFanGraph(t)

	merged, err := core.MergeEdges(g, E(0), E(1))
	require.NoError(t, err)
	assert.Equal(t, E(2), merged)

	assert.False(t, g.HasEdge(E(0)))
	assert.False(t, g.HasEdge(E(1)))
	assert.Equal(t, 1, g.Size())

	edge, err := g.GetEdge(merged)
	require.NoError(t, err)
	assert.Equal(t, []id.VertexID[uint32]{V(0), V(1), V(2), V(3)}, edge.Domain)
	assert.False(t, edge.Weighted)
	for _, m := range edge.Domain {
		assert.Equal(t, []id.EdgeID[uint32]{merged}, g.FindEdgesWithNode(m))
	}
}

func TestMergeEdges_Weights(t *testing.T) {
	cases := []struct {
		name     string
		wa, wb   *int
		want     int
		weighted bool
	}{
		{name: "both", wa: ptr(2), wb: ptr(5), want: 7, weighted: true},
		{name: "left only", wa: ptr(2), want: 2, weighted: true},
		{name: "right only", wb: ptr(5), want: 5, weighted: true},
		{name: "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildFanGraph(t)
			if tc.wa != nil {
				require.NoError(t, g.SetEdgeWeight(E(0), *tc.wa))
			}
			if tc.wb != nil {
				require.NoError(t, g.SetEdgeWeight(E(1), *tc.wb))
			}

			merged, err := core.MergeEdges(g, E(0), E(1))
			require.NoError(t, err)
			edge, _ := g.GetEdge(merged)
			assert.Equal(t, tc.weighted, edge.Weighted)
			assert.Equal(t, tc.want, edge.Weight)
		})
	}
}

func TestMergeEdgesFunc_CustomCombine(t *testing.T) {
	g := core.NewGraph[uint32, string, string]()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	x, err := g.AddSurface("left", a)
	require.NoError(t, err)
	y, err := g.AddSurface("right", b)
	require.NoError(t, err)

	merged, err := g.MergeEdgesFunc(x, y, func(l, r string) string { return l + "+" + r })
	require.NoError(t, err)
	edge, _ := g.GetEdge(merged)
	assert.Equal(t, "left+right", edge.Weight)
}

func TestMergeEdges_DirectedKeepsSource(t *testing.T) {
	g := core.NewGraph[uint32, string, int](core.WithDirected())
	vs := addNodes(t, g, 4)
	a, err := g.AddEdge(vs[3], vs[1])
	require.NoError(t, err)
	b, err := g.AddEdge(vs[0], vs[1], vs[2])
	require.NoError(t, err)

	merged, err := core.MergeEdges(g, a, b)
	require.NoError(t, err)
	edge, _ := g.GetEdge(merged)
	assert.Equal(t, []id.VertexID[uint32]{vs[3], vs[1], vs[0], vs[2]}, edge.Domain)
	src, _ := edge.Source()
	assert.Equal(t, vs[3], src)
}

func TestMergeEdges_Errors(t *testing.T) {
	g := buildFanGraph(t)

	_, err := core.MergeEdges(g, E(0), E(0))
	assert.ErrorIs(t, err, core.ErrSelfMerge)

	_, err = core.MergeEdges(g, E(0), E(9))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = core.MergeEdges(g, E(9), E(0))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	assert.Equal(t, 2, g.Size())
}

func TestMergeEdges_ExhaustedLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph[uint8, string, int](
		core.WithEdgeGenerator[uint8](id.NewCounter[uint8](254)),
	)
	a, _ := g.AddNode("a")
	x, err := g.AddEdge(a)
	require.NoError(t, err)
	y, err := g.AddEdge(a)
	require.NoError(t, err)

	_, err = core.MergeEdges(g, x, y)
	assert.ErrorIs(t, err, id.ErrIndexOutOfBounds)
	assert.True(t, g.HasEdge(x))
	assert.True(t, g.HasEdge(y))
	assert.Equal(t, 2, g.Degree(a))
}

func ptr[T any](v T) *T { return &v }
