// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/dijkstra"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

type graph = core.Graph[uint32, string, int]

func vs(raws ...uint32) []id.VertexID[uint32] { return id.Vertices(raws...) }
func V(raw uint32) id.VertexID[uint32]       { return id.Vertex(raw) }

// surface is a weighted hyperedge used to build fixtures.
type surface struct {
	w       int
	members []uint32
}

func build(t testing.TB, n int, opts []core.GraphOption, surfaces ...surface) *graph {
	t.Helper()
	g := core.NewGraph[uint32, string, int](opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddNode(fmt.Sprint(i))
		require.NoError(t, err)
	}
	for _, s := range surfaces {
		_, err := g.AddSurface(s.w, vs(s.members...)...)
		require.NoError(t, err)
	}

	return g
}

// detour: a heavy chain v0-v1-v2-v3 and a light bypass v0-v4-v3.
func detour(t testing.TB, opts ...core.GraphOption) *graph {
	return build(t, 5, opts,
		surface{10, []uint32{0, 1}},
		surface{10, []uint32{1, 2}},
		surface{10, []uint32{2, 3}},
		surface{1, []uint32{0, 4}},
		surface{1, []uint32{4, 3}},
	)
}

func TestFindPath_PrefersLightDetour(t *testing.T) {
	g := detour(t)

	path, err := dijkstra.New(g).FindPath(V(0), V(3))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 4, 3), path.Vertices)
	assert.Equal(t, 2, path.Cost)
	assert.Equal(t, 2, path.Len())
}

func TestSearch_DistancesAndOrder(t *testing.T) {
	g := detour(t)
	s := dijkstra.New(g)

	res, err := s.Search(V(0))
	require.NoError(t, err)
	assert.Equal(t, map[id.VertexID[uint32]]int{
		V(0): 0, V(1): 10, V(2): 12, V(3): 2, V(4): 1,
	}, res.Dist)
	assert.Equal(t, V(3), res.Prev[V(2)])
	assert.Equal(t, vs(0, 4, 3, 1, 2), s.Visited())
	assert.True(t, s.HasVisited(V(2)))

	p, err := res.PathTo(V(2))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 4, 3, 2), p.Vertices)
	assert.Equal(t, 12, p.Cost)
}

func TestSearch_HyperedgeCostPerMember(t *testing.T) {
	// e0 = {v0, v1, v2} costs 3 toward each member; e1 = {v2, v3} is unweighted.
	g := build(t, 4, nil, surface{3, []uint32{0, 1, 2}})
	e1, err := g.AddEdge(V(2), V(3))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, V(0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Dist[V(1)])
	assert.Equal(t, 3, res.Dist[V(2)])
	assert.Equal(t, 4, res.Dist[V(3)])
	assert.Equal(t, e1, res.Via[V(3)])
	assert.Equal(t, id.Edge[uint32](0), res.Via[V(1)])
}

func TestSearch_Directed(t *testing.T) {
	// e0 = v0 -> {v1, v2} (2), e1 = v3 -> {v0} (1)
	g := build(t, 4, []core.GraphOption{core.WithDirected()},
		surface{2, []uint32{0, 1, 2}},
		surface{1, []uint32{3, 0}},
	)
	s := dijkstra.New(g)

	res, err := s.Search(V(0))
	require.NoError(t, err)
	assert.Equal(t, map[id.VertexID[uint32]]int{V(0): 0, V(1): 2, V(2): 2}, res.Dist)
	assert.False(t, res.Reached(V(3)))

	_, err = s.FindPath(V(0), V(3))
	assert.ErrorIs(t, err, search.ErrPathNotFound)

	p, err := s.FindPath(V(3), V(2))
	require.NoError(t, err)
	assert.Equal(t, vs(3, 0, 2), p.Vertices)
	assert.Equal(t, 3, p.Cost)
}

func TestSearch_EqualCostTieBreak(t *testing.T) {
	g := build(t, 4, nil,
		surface{1, []uint32{0, 2}},
		surface{1, []uint32{0, 1}},
		surface{1, []uint32{2, 3}},
		surface{1, []uint32{1, 3}},
	)

	res, err := dijkstra.Dijkstra(g, V(0))
	require.NoError(t, err)
	// v1 settles before v2, so it claims v3 first.
	assert.Equal(t, V(1), res.Prev[V(3)])
	assert.Equal(t, 2, res.Dist[V(3)])
}

func TestFindPath_StartIsGoal(t *testing.T) {
	g := detour(t)
	p, err := dijkstra.ShortestPath(g, V(4), V(4))
	require.NoError(t, err)
	assert.Equal(t, vs(4), p.Vertices)
	assert.Zero(t, p.Cost)
	assert.Zero(t, p.Len())
}

func TestMaxDistance(t *testing.T) {
	g := build(t, 4, nil,
		surface{1, []uint32{0, 1}},
		surface{1, []uint32{1, 2}},
		surface{1, []uint32{2, 3}},
	)

	res, err := dijkstra.Dijkstra(g, V(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 3)
	assert.False(t, res.Reached(V(3)))

	_, err = dijkstra.ShortestPath(g, V(0), V(3), dijkstra.WithMaxDistance(2))
	assert.ErrorIs(t, err, search.ErrPathNotFound)

	res, err = dijkstra.Dijkstra(g, V(0), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, map[id.VertexID[uint32]]int{V(0): 0}, res.Dist)
}

func TestInfEdgeThreshold(t *testing.T) {
	g := detour(t)
	s := dijkstra.New(g, dijkstra.WithInfEdgeThreshold(10))

	res, err := s.Search(V(0))
	require.NoError(t, err)
	assert.False(t, res.Reached(V(1)))
	assert.False(t, res.Reached(V(2)))
	assert.Equal(t, 2, res.Dist[V(3)])

	_, err = s.FindPath(V(0), V(2))
	assert.ErrorIs(t, err, search.ErrPathNotFound)
}

func TestFloatWeights(t *testing.T) {
	g := core.NewGraph[uint16, string, float64]()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	c, _ := g.AddNode("c")
	_, err := g.AddSurface(0.5, a, b, c)
	require.NoError(t, err)
	_, err = g.AddSurface(0.25, a, c)
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, a, c)
	require.NoError(t, err)
	assert.Equal(t, []id.VertexID[uint16]{a, c}, p.Vertices)
	assert.InDelta(t, 0.25, p.Cost, 1e-12)
}

func TestSolver_Reuse(t *testing.T) {
	g := detour(t)
	s := dijkstra.New(g)

	_, err := s.Search(V(0))
	require.NoError(t, err)
	res, err := s.Search(V(2))
	require.NoError(t, err)
	assert.Equal(t, V(2), res.Start)
	assert.Equal(t, 0, res.Dist[V(2)])
	assert.Equal(t, V(2), s.Visited()[0])
	assert.Equal(t, 12, res.Dist[V(0)])
}

func TestErrors(t *testing.T) {
	_, err := dijkstra.Dijkstra[uint32, string, int](nil, V(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := detour(t)
	tests := []struct {
		name string
		opts []dijkstra.Option
		want error
	}{
		{"negative max distance", []dijkstra.Option{dijkstra.WithMaxDistance(-1)}, dijkstra.ErrBadMaxDistance},
		{"zero threshold", []dijkstra.Option{dijkstra.WithInfEdgeThreshold(0)}, dijkstra.ErrBadInfThreshold},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.Dijkstra(g, V(0), tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err = dijkstra.Dijkstra(g, V(9))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = dijkstra.ShortestPath(g, V(0), V(9))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	require.NoError(t, g.SetEdgeWeight(id.Edge[uint32](2), -3))
	_, err = dijkstra.Dijkstra(g, V(0))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
