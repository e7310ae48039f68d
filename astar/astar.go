// Package astar implements A* shortest-path search on weighted hyperlath
// hypergraphs, guided by a caller-supplied heuristic.
package astar

import (
	"container/heap"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Solver is a reusable A* operator bound to one graph and one heuristic.
// It owns the open and closed sets; the graph is only read.
//
// The embedded Marks are the closed set: each vertex is recorded the first
// time it is expanded, so Visited lists the expansion order of the last run.
//
// Solver implements search.Traversal and search.Searcher[T, search.Path[T, E]].
type Solver[T id.Index, N any, E core.Number] struct {
	search.Marks[T]

	graph *core.Graph[T, N, E]
	h     Heuristic[T, E]
	opts  Options

	goal    id.VertexID[T]
	hasGoal bool
	err     error

	open     openSet[T, E]
	inOpen   map[id.VertexID[T]]*openItem[T, E]
	cameFrom map[id.VertexID[T]]id.VertexID[T]
	gScore   map[id.VertexID[T]]E
	fScore   map[id.VertexID[T]]E
}

var _ search.Searcher[uint32, search.Path[uint32, int]] = (*Solver[uint32, struct{}, int])(nil)

// New builds a Solver over g guided by h. Invalid options are reported by
// every run.
func New[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], h Heuristic[T, E], opts ...Option) *Solver[T, N, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Solver[T, N, E]{graph: g, h: h, opts: o, err: o.err}
	if s.err == nil {
		s.goal, s.hasGoal, s.err = resolveGoal[T](o)
	}

	return s
}

// ShortestPath is a one-shot helper around Solver.FindPath.
func ShortestPath[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], h Heuristic[T, E], start, goal id.VertexID[T], opts ...Option) (search.Path[T, E], error) {
	return New(g, h, opts...).FindPath(start, goal)
}

// Search runs FindPath from start toward the goal set by WithGoal.
func (s *Solver[T, N, E]) Search(start id.VertexID[T]) (search.Path[T, E], error) {
	if s.err == nil && !s.hasGoal {
		return search.Path[T, E]{}, ErrNoGoal
	}

	return s.FindPath(start, s.goal)
}

// FindPath returns a cheapest path from start to goal, provided the
// heuristic never overestimates. Vertices are expanded in order of
// f = g + h, ties broken by lower identifier.
//
// Errors:
//   - ErrNilGraph, ErrNilHeuristic, ErrOptionViolation.
//   - core.ErrNodeNotFound: start or goal missing, or a dangling member met.
//   - ErrNegativeWeight: a weighted edge below zero.
//   - search.ErrPathNotFound: goal unreachable, or MaxExpansions exhausted.
func (s *Solver[T, N, E]) FindPath(start, goal id.VertexID[T]) (search.Path[T, E], error) {
	if err := s.init(start, goal); err != nil {
		return search.Path[T, E]{}, err
	}

	expansions := 0
	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*openItem[T, E])
		delete(s.inOpen, cur.id)
		if cur.id == goal {
			s.Mark(cur.id)

			return s.path(start, goal)
		}
		if s.opts.MaxExpansions > 0 && expansions == s.opts.MaxExpansions {
			break
		}
		expansions++
		s.Mark(cur.id)

		if err := s.expand(cur.id, goal); err != nil {
			return search.Path[T, E]{}, err
		}
	}

	return search.Path[T, E]{}, errors.Wrapf(search.ErrPathNotFound, "astar: %s -> %s", start, goal)
}

// GScore returns the best known cost from the last start to v.
func (s *Solver[T, N, E]) GScore(v id.VertexID[T]) (E, bool) {
	g, ok := s.gScore[v]

	return g, ok
}

// FScore returns the last priority g + h assigned to v.
func (s *Solver[T, N, E]) FScore(v id.VertexID[T]) (E, bool) {
	f, ok := s.fScore[v]

	return f, ok
}

// init validates the run and seeds the open set with start.
func (s *Solver[T, N, E]) init(start, goal id.VertexID[T]) error {
	switch {
	case s.graph == nil:
		return ErrNilGraph
	case s.h == nil:
		return ErrNilHeuristic
	case s.err != nil:
		return s.err
	}
	if !s.graph.HasNode(start) {
		return errors.Wrapf(core.ErrNodeNotFound, "astar: start %s", start)
	}
	if !s.graph.HasNode(goal) {
		return errors.Wrapf(core.ErrNodeNotFound, "astar: goal %s", goal)
	}
	if e, bad := search.NegativeEdge(s.graph); bad {
		return errors.Wrapf(ErrNegativeWeight, "edge %s weight=%v", e.ID, e.Weight)
	}

	n := s.graph.Order()
	s.Reset(n)
	s.open = make(openSet[T, E], 0, n)
	s.inOpen = make(map[id.VertexID[T]]*openItem[T, E], n)
	s.cameFrom = make(map[id.VertexID[T]]id.VertexID[T], n)
	s.gScore = make(map[id.VertexID[T]]E, n)
	s.fScore = make(map[id.VertexID[T]]E, n)

	s.gScore[start] = 0
	s.push(start, s.h(start, goal))

	return nil
}

// expand relaxes every step leaving u, estimating toward goal. A closed
// vertex whose cost improves is reopened, so inconsistent but admissible
// heuristics stay optimal.
func (s *Solver[T, N, E]) expand(u, goal id.VertexID[T]) error {
	gu := s.gScore[u]
	err := search.Arcs(s.graph, u, func(e core.Edge[T, E], v id.VertexID[T]) error {
		tentative := gu + search.StepCost(e)
		if cur, ok := s.gScore[v]; ok && tentative >= cur {
			return nil
		}
		s.cameFrom[v] = u
		s.gScore[v] = tentative
		f := tentative + s.h(v, goal)
		if item, ok := s.inOpen[v]; ok {
			item.f = f
			s.fScore[v] = f
			heap.Fix(&s.open, item.index)

			return nil
		}
		s.push(v, f)

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "astar: expand %s", u)
	}

	return nil
}

func (s *Solver[T, N, E]) push(v id.VertexID[T], f E) {
	item := &openItem[T, E]{id: v, f: f}
	s.fScore[v] = f
	s.inOpen[v] = item
	heap.Push(&s.open, item)
}

func (s *Solver[T, N, E]) path(start, goal id.VertexID[T]) (search.Path[T, E], error) {
	vs, err := search.Reconstruct(s.cameFrom, start, goal)
	if err != nil {
		return search.Path[T, E]{}, err
	}

	return search.Path[T, E]{Vertices: vs, Cost: s.gScore[goal]}, nil
}

// openItem is an entry of the open set. index is maintained by the heap
// methods so that an improved f can be fixed in place.
type openItem[T id.Index, E core.Number] struct {
	id    id.VertexID[T]
	f     E
	index int
}

// openSet is a min-heap of *openItem ordered by f, then by identifier.
type openSet[T id.Index, E core.Number] []*openItem[T, E]

var _ heap.Interface = (*openSet[uint32, int])(nil)

func (o openSet[T, E]) Len() int { return len(o) }

func (o openSet[T, E]) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}

	return o[i].id.Compare(o[j].id) < 0
}

func (o openSet[T, E]) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index, o[j].index = i, j
}

func (o *openSet[T, E]) Push(x any) {
	item := x.(*openItem[T, E])
	item.index = len(*o)
	*o = append(*o, item)
}

func (o *openSet[T, E]) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*o = old[:n-1]

	return item
}
