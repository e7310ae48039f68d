// Package search declares the capabilities shared by the hyperlath traversal
// and shortest-path operators (bfs, dfs, dijkstra, astar) and the small
// pieces of state they have in common.
//
// An operator is bound to one graph at construction and owns only its
// frontier and visited state; the graph is read in place during a run and is
// never mutated. After a run the operator answers HasVisited/Visited for that
// run until the next one starts.
package search

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// ErrPathNotFound is returned when the goal cannot be reached from the start.
var ErrPathNotFound = errors.New("search: path not found")

// Traversal exposes the visited set of the most recent run.
type Traversal[T id.Index] interface {
	// HasVisited reports whether v was settled during the last run.
	HasVisited(v id.VertexID[T]) bool

	// Visited returns the settled vertices in the order they were settled.
	Visited() []id.VertexID[T]
}

// Searcher runs one search from start and returns an operator-specific
// outcome O.
type Searcher[T id.Index, O any] interface {
	Search(start id.VertexID[T]) (O, error)
}

// Marks is a reusable visited set that remembers insertion order.
// Operators embed it to implement Traversal.
type Marks[T id.Index] struct {
	set   core.VertexSet[T]
	order []id.VertexID[T]
}

// Reset forgets every mark, keeping capacity for roughly n vertices.
func (m *Marks[T]) Reset(n int) {
	m.set = make(core.VertexSet[T], n)
	m.order = make([]id.VertexID[T], 0, n)
}

// Mark records v and reports whether it was unmarked before.
func (m *Marks[T]) Mark(v id.VertexID[T]) bool {
	if m.set == nil {
		m.Reset(0)
	}
	if !m.set.Add(v) {
		return false
	}
	m.order = append(m.order, v)

	return true
}

// HasVisited implements Traversal.
func (m *Marks[T]) HasVisited(v id.VertexID[T]) bool { return m.set.Contains(v) }

// Visited implements Traversal. The returned slice is a copy.
func (m *Marks[T]) Visited() []id.VertexID[T] {
	return append([]id.VertexID[T](nil), m.order...)
}

// Reconstruct walks parent links back from goal to start and returns the
// path start → goal. It fails with ErrPathNotFound if goal is not linked to
// start.
// Complexity: O(L), L = path length.
func Reconstruct[T id.Index](parent map[id.VertexID[T]]id.VertexID[T], start, goal id.VertexID[T]) ([]id.VertexID[T], error) {
	path := []id.VertexID[T]{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, errors.Wrapf(ErrPathNotFound, "%s -> %s", start, goal)
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Path is a route produced by a shortest-path operator together with its
// total cost. Vertices starts at the search start and ends at the goal.
type Path[T id.Index, W core.Number] struct {
	Vertices []id.VertexID[T] `json:"vertices" yaml:"vertices"`
	Cost     W                `json:"cost" yaml:"cost"`
}

// Len returns the number of hops in the path.
func (p Path[T, W]) Len() int {
	if len(p.Vertices) == 0 {
		return 0
	}

	return len(p.Vertices) - 1
}

// StepCost is the price of crossing e toward any one of its members: the
// edge weight, or one for an unweighted edge.
func StepCost[T id.Index, W core.Number](e core.Edge[T, W]) W {
	if w, ok := e.WeightValue(); ok {
		return w
	}

	return 1
}

// Arcs calls fn once per (edge, member) step leaving u. Undirected edges
// lead to every other member; directed edges lead from their source to
// their targets only. Iteration stops at the first error from fn.
//
// Errors: core.ErrNodeNotFound for a member that is not a live node.
func Arcs[T id.Index, N any, W core.Number](
	g *core.Graph[T, N, W],
	u id.VertexID[T],
	fn func(e core.Edge[T, W], next id.VertexID[T]) error,
) error {
	for _, eid := range g.FindEdgesWithNode(u) {
		e, err := g.GetEdge(eid)
		if err != nil {
			return err
		}
		members := e.Domain
		if g.Directed() {
			if src, _ := e.Source(); src != u {
				continue
			}
			members = e.Targets()
		}
		for _, m := range members {
			if m == u {
				continue
			}
			if !g.HasNode(m) {
				return errors.Wrapf(core.ErrNodeNotFound, "member %s of %s", m, e.ID)
			}
			if err = fn(e, m); err != nil {
				return err
			}
		}
	}

	return nil
}

// NegativeEdge returns the first weighted edge whose weight is below zero.
func NegativeEdge[T id.Index, N any, W core.Number](g *core.Graph[T, N, W]) (core.Edge[T, W], bool) {
	for _, e := range g.Edges() {
		if w, ok := e.WeightValue(); ok && w < 0 {
			return e, true
		}
	}

	return core.Edge[T, W]{}, false
}
