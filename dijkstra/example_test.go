package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/dijkstra"
)

// ExampleShortestPath routes between two stations where one tram line (a
// hyperedge) serves several stops for a single fare.
func ExampleShortestPath() {
	g := core.NewGraph[uint32, string, int]()
	depot, _ := g.AddNode("depot")
	market, _ := g.AddNode("market")
	museum, _ := g.AddNode("museum")
	harbor, _ := g.AddNode("harbor")

	_, _ = g.AddSurface(3, depot, market, museum, harbor) // tram line
	_, _ = g.AddSurface(1, depot, market)                 // footpath
	_, _ = g.AddSurface(1, market, museum)                // footpath

	p, _ := dijkstra.ShortestPath(g, depot, museum)
	fmt.Println(p.Vertices, p.Cost)

	p, _ = dijkstra.ShortestPath(g, depot, harbor)
	fmt.Println(p.Vertices, p.Cost)

	// Output:
	// [v0 v1 v2] 2
	// [v0 v3] 3
}

// ExampleSolver_Search caps exploration with WithMaxDistance.
func ExampleSolver_Search() {
	g := core.NewGraph[uint32, string, int]()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	c, _ := g.AddNode("c")
	_, _ = g.AddSurface(2, a, b)
	_, _ = g.AddSurface(5, b, c)

	res, _ := dijkstra.New(g, dijkstra.WithMaxDistance(4)).Search(a)
	fmt.Println(res.Dist[b], res.Reached(c))

	// Output:
	// 2 false
}
