// SPDX-License-Identifier: MIT

package astar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/astar"
	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/dijkstra"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

type graph = core.Graph[uint32, string, int]

func vs(raws ...uint32) []id.VertexID[uint32] { return id.Vertices(raws...) }
func V(raw uint32) id.VertexID[uint32]       { return id.Vertex(raw) }

var zero = astar.Zero[uint32, int]

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

func detour(t testing.TB) *graph {
	return build(t, 5, nil,
		surface{10, []uint32{0, 1}},
		surface{10, []uint32{1, 2}},
		surface{10, []uint32{2, 3}},
		surface{1, []uint32{0, 4}},
		surface{1, []uint32{4, 3}},
	)
}

// grid builds a rows×cols lattice, vertex r*cols+c, unit-weight 2-member edges.
func grid(t testing.TB, rows, cols int) *graph {
	t.Helper()
	var ss []surface
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := uint32(r*cols + c)
			if c+1 < cols {
				ss = append(ss, surface{1, []uint32{v, v + 1}})
			}
			if r+1 < rows {
				ss = append(ss, surface{1, []uint32{v, v + uint32(cols)}})
			}
		}
	}

	return build(t, rows*cols, nil, ss...)
}

// manhattan is the lattice distance between v and goal on a grid of the
// given width.
func manhattan(cols int) astar.Heuristic[uint32, int] {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}

		return x
	}

	return func(v, goal id.VertexID[uint32]) int {
		r, c := int(v.Raw())/cols, int(v.Raw())%cols
		gr, gc := int(goal.Raw())/cols, int(goal.Raw())%cols

		return abs(r-gr) + abs(c-gc)
	}
}

func TestFindPath_Detour(t *testing.T) {
	g := detour(t)
	p, err := astar.ShortestPath(g, zero, V(0), V(3))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 4, 3), p.Vertices)
	assert.Equal(t, 2, p.Cost)
}

func TestZeroHeuristicMatchesDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		const n = 12
		g := build(t, n, nil)
		for i := 0; i < 18; i++ {
			k := 1 + r.Intn(4)
			members := make([]id.VertexID[uint32], k)
			for j := range members {
				members[j] = V(uint32(r.Intn(n)))
			}
			_, err := g.AddSurface(r.Intn(9), members...)
			require.NoError(t, err)
		}

		ds := dijkstra.New(g)
		as := astar.New(g, zero)
		for _, s := range g.NodeIDs() {
			for _, goal := range g.NodeIDs() {
				want, werr := ds.FindPath(s, goal)
				got, gerr := as.FindPath(s, goal)
				if werr != nil {
					assert.ErrorIs(t, werr, search.ErrPathNotFound)
					assert.ErrorIs(t, gerr, search.ErrPathNotFound, "round %d %s->%s", round, s, goal)

					continue
				}
				require.NoError(t, gerr)
				assert.Equal(t, want, got, "round %d %s->%s", round, s, goal)
				assert.Equal(t, ds.Visited(), as.Visited(), "round %d %s->%s", round, s, goal)
			}
		}
	}
}

func TestManhattanExpandsLess(t *testing.T) {
	g := grid(t, 4, 4)

	as := astar.New(g, manhattan(4))
	p, err := as.FindPath(V(0), V(3))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1, 2, 3), p.Vertices)
	assert.Equal(t, 3, p.Cost)
	assert.Equal(t, vs(0, 1, 2, 3), as.Visited())

	ds := dijkstra.New(g)
	_, err = ds.FindPath(V(0), V(3))
	require.NoError(t, err)
	assert.Greater(t, len(ds.Visited()), len(as.Visited()))

	f, ok := as.FScore(V(4))
	require.True(t, ok)
	assert.Equal(t, 5, f)
	gs, ok := as.GScore(V(2))
	require.True(t, ok)
	assert.Equal(t, 2, gs)
}

func TestSolverReusedAcrossGoals(t *testing.T) {
	g := grid(t, 4, 4)
	s := astar.New(g, manhattan(4))

	p, err := s.FindPath(V(0), V(3))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1, 2, 3), p.Vertices)
	assert.Equal(t, vs(0, 1, 2, 3), s.Visited())

	p, err = s.FindPath(V(0), V(12))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 4, 8, 12), p.Vertices)
	assert.Equal(t, 3, p.Cost)
	assert.Equal(t, vs(0, 4, 8, 12), s.Visited())

	ds := dijkstra.New(g)
	for _, goal := range g.NodeIDs() {
		want, err := ds.FindPath(V(0), goal)
		require.NoError(t, err)
		got, err := s.FindPath(V(0), goal)
		require.NoError(t, err)
		assert.Equal(t, want.Cost, got.Cost, "goal %s", goal)
	}
}

func TestInconsistentHeuristicReopens(t *testing.T) {
	// s=v0 a=v1 b=v2 c=v3 goal=v4; h(a)=4 is admissible but inconsistent,
	// so c is first closed through b at cost 4 and later improved to 2.
	g := build(t, 5, nil,
		surface{1, []uint32{0, 1}},
		surface{1, []uint32{1, 3}},
		surface{1, []uint32{0, 2}},
		surface{3, []uint32{2, 3}},
		surface{3, []uint32{3, 4}},
	)
	h := func(v, _ id.VertexID[uint32]) int {
		if v == V(1) {
			return 4
		}

		return 0
	}

	s := astar.New(g, h)
	p, err := s.FindPath(V(0), V(4))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1, 3, 4), p.Vertices)
	assert.Equal(t, 5, p.Cost)
	assert.Equal(t, vs(0, 2, 3, 1, 4), s.Visited())
}

func TestSearch_UsesConfiguredGoal(t *testing.T) {
	g := detour(t)
	s := astar.New(g, zero, astar.WithGoal(V(2)))
	p, err := s.Search(V(0))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 4, 3, 2), p.Vertices)
	assert.Equal(t, 12, p.Cost)

	_, err = astar.New(g, zero).Search(V(0))
	assert.ErrorIs(t, err, astar.ErrNoGoal)
}

func TestDirectedUnreachable(t *testing.T) {
	g := build(t, 3, []core.GraphOption{core.WithDirected()},
		surface{1, []uint32{0, 1, 2}},
	)
	_, err := astar.ShortestPath(g, zero, V(1), V(0))
	assert.ErrorIs(t, err, search.ErrPathNotFound)

	p, err := astar.ShortestPath(g, zero, V(0), V(2))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 2), p.Vertices)
}

func TestMaxExpansions(t *testing.T) {
	g := detour(t)
	_, err := astar.ShortestPath(g, zero, V(0), V(3), astar.WithMaxExpansions(1))
	assert.ErrorIs(t, err, search.ErrPathNotFound)

	p, err := astar.ShortestPath(g, zero, V(0), V(3), astar.WithMaxExpansions(2))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Cost)
}

func TestErrors(t *testing.T) {
	_, err := astar.ShortestPath[uint32, string, int](nil, zero, V(0), V(1))
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	g := detour(t)
	_, err = astar.ShortestPath(g, nil, V(0), V(1))
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.ShortestPath(g, zero, V(9), V(1))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = astar.ShortestPath(g, zero, V(0), V(9))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = astar.ShortestPath(g, zero, V(0), V(1), astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.New(g, zero, astar.WithGoal(id.Vertex[uint8](1))).Search(V(0))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	require.NoError(t, g.SetEdgeWeight(id.Edge[uint32](0), -1))
	_, err = astar.ShortestPath(g, zero, V(0), V(1))
	assert.ErrorIs(t, err, astar.ErrNegativeWeight)
}
