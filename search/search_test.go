package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

func TestMarks(t *testing.T) {
	var m search.Marks[uint16]
	assert.False(t, m.HasVisited(id.Vertex[uint16](1)))

	assert.True(t, m.Mark(id.Vertex[uint16](3)))
	assert.True(t, m.Mark(id.Vertex[uint16](1)))
	assert.False(t, m.Mark(id.Vertex[uint16](3)))
	assert.True(t, m.HasVisited(id.Vertex[uint16](1)))
	assert.Equal(t, id.Vertices[uint16](3, 1), m.Visited())

	m.Reset(4)
	assert.Empty(t, m.Visited())
	assert.False(t, m.HasVisited(id.Vertex[uint16](3)))
}

func TestReconstruct(t *testing.T) {
	vs := id.Vertices[uint32](0, 1, 2, 3)
	parent := map[id.VertexID[uint32]]id.VertexID[uint32]{
		vs[1]: vs[0],
		vs[2]: vs[1],
	}

	path, err := search.Reconstruct(parent, vs[0], vs[2])
	require.NoError(t, err)
	assert.Equal(t, vs[:3], path)

	path, err = search.Reconstruct(parent, vs[0], vs[0])
	require.NoError(t, err)
	assert.Equal(t, vs[:1], path)

	_, err = search.Reconstruct(parent, vs[0], vs[3])
	assert.ErrorIs(t, err, search.ErrPathNotFound)
}

type arc struct {
	edge id.EdgeID[uint32]
	next id.VertexID[uint32]
	cost int
}

func collectArcs(t *testing.T, g *core.Graph[uint32, string, int], u id.VertexID[uint32]) []arc {
	t.Helper()
	var out []arc
	err := search.Arcs(g, u, func(e core.Edge[uint32, int], next id.VertexID[uint32]) error {
		out = append(out, arc{e.ID, next, search.StepCost(e)})

		return nil
	})
	require.NoError(t, err)

	return out
}

func TestArcs(t *testing.T) {
	v := id.Vertices[uint32](0, 1, 2, 3)
	E := id.Edge[uint32]

	t.Run("undirected", func(t *testing.T) {
		g := core.NewGraph[uint32, string, int]()
		for i := range v {
			require.NoError(t, g.InsertNode(v[i], ""))
		}
		_, err := g.AddSurface(4, v[2], v[0], v[1])
		require.NoError(t, err)
		_, err = g.AddEdge(v[1], v[3])
		require.NoError(t, err)

		assert.Equal(t, []arc{{E(0), v[0], 4}, {E(0), v[2], 4}, {E(1), v[3], 1}}, collectArcs(t, g, v[1]))
	})

	t.Run("directed", func(t *testing.T) {
		g := core.NewGraph[uint32, string, int](core.WithDirected())
		for i := range v {
			require.NoError(t, g.InsertNode(v[i], ""))
		}
		_, err := g.AddSurface(2, v[1], v[3], v[0])
		require.NoError(t, err)
		_, err = g.AddSurface(5, v[2], v[1])
		require.NoError(t, err)

		assert.Equal(t, []arc{{E(0), v[3], 2}, {E(0), v[0], 2}}, collectArcs(t, g, v[1]))
		assert.Empty(t, collectArcs(t, g, v[3]))
	})

	t.Run("dangling member", func(t *testing.T) {
		g := core.NewGraph[uint32, string, int](core.WithLazyValidation())
		require.NoError(t, g.InsertNode(v[0], ""))
		_, err := g.AddEdge(v[0], v[3])
		require.NoError(t, err)

		err = search.Arcs(g, v[0], func(core.Edge[uint32, int], id.VertexID[uint32]) error { return nil })
		assert.ErrorIs(t, err, core.ErrNodeNotFound)
	})
}

func TestNegativeEdge(t *testing.T) {
	g := core.NewGraph[uint32, string, int]()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	_, bad := search.NegativeEdge(g)
	assert.False(t, bad)

	eid, err := g.AddSurface(-2, a)
	require.NoError(t, err)
	e, bad := search.NegativeEdge(g)
	assert.True(t, bad)
	assert.Equal(t, eid, e.ID)
}

func TestPathLen(t *testing.T) {
	assert.Zero(t, search.Path[uint32, int]{}.Len())
	assert.Equal(t, 2, search.Path[uint32, int]{Vertices: id.Vertices[uint32](4, 1, 7)}.Len())
}
