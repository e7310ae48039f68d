// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

func TestClone_Independent(t *testing.T) {
	g := buildFanGraph(t)
	c := g.Clone()

	_, err := c.RemoveNode(V(1))
	require.NoError(t, err)
	require.NoError(t, c.SetNodeWeight(V(0), "changed"))

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Degree(V(1)))
	n, _ := g.GetNode(V(0))
	assert.Equal(t, "n0", n.Weight)
	edge, _ := g.GetEdge(E(0))
	assert.Equal(t, []id.VertexID[uint32]{V(0), V(1), V(2)}, edge.Domain)

	// Both cursors continue from the same point independently.
	a, err := g.AddNode("g")
	require.NoError(t, err)
	b, err := c.AddNode("c")
	require.NoError(t, err)
	assert.Equal(t, V(4), a)
	assert.Equal(t, V(4), b)
}

func TestClone_SharedAtomicCounter(t *testing.T) {
	shared := id.NewAtomicCounter[uint32](0)
	g := core.NewGraph[uint32, string, int](core.WithVertexGenerator[uint32](shared))
	c := g.Clone()

	a, err := g.AddNode("g")
	require.NoError(t, err)
	b, err := c.AddNode("c")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCloneEmpty(t *testing.T) {
	g := buildFanGraph(t, core.WithDirected())
	c := g.CloneEmpty()

	assert.Zero(t, c.Order())
	assert.Zero(t, c.Size())
	assert.True(t, c.Directed())
	assert.Equal(t, g.Attributes(), c.Attributes())
}

func TestClear_KeepsCursor(t *testing.T) {
	g := buildFanGraph(t)
	g.Clear()
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())

	vid, err := g.AddNode("after")
	require.NoError(t, err)
	assert.Equal(t, V(4), vid)
	assert.Zero(t, g.Degree(V(1)))
}

func TestInducedSubgraph(t *testing.T) {
	g := buildFanGraph(t)
	sub := core.InducedSubgraph(g, core.NewVertexSet(V(0), V(1), V(2)))

	assert.Equal(t, 3, sub.Order())
	assert.Equal(t, []id.EdgeID[uint32]{E(0)}, sub.EdgeIDs())
	assert.Equal(t, 1, sub.Degree(V(1)))
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())
}

func TestUnweightedView(t *testing.T) {
	g := buildFanGraph(t)
	require.NoError(t, g.SetEdgeWeight(E(0), 9))

	view := core.UnweightedView(g)
	edge, _ := view.GetEdge(E(0))
	assert.False(t, edge.Weighted)
	assert.Zero(t, edge.Weight)

	orig, _ := g.GetEdge(E(0))
	assert.True(t, orig.Weighted)
}
