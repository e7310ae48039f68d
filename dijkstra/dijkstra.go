// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// hypergraphs.
//
// Dijkstra processes vertices in order of increasing distance using a
// min-heap priority queue. Stepping from u through a hyperedge e reaches every
// successor member of e at the cost of e's full weight (one when unweighted).
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Solver is a reusable Dijkstra operator bound to one graph. It owns the
// heap and the settled set; the graph is only read.
//
// Solver implements search.Traversal and search.Searcher[T, *Result[T, E]].
type Solver[T id.Index, N any, E core.Number] struct {
	search.Marks[T]

	graph *core.Graph[T, N, E]
	opts  Options

	res *Result[T, E]
	pq  nodePQ[T, E]
}

var _ search.Searcher[uint32, *Result[uint32, int]] = (*Solver[uint32, struct{}, int])(nil)

// New builds a Solver over g. Invalid options are reported by every run.
func New[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], opts ...Option) *Solver[T, N, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver[T, N, E]{graph: g, opts: o}
}

// Dijkstra computes shortest distances from start to every reachable vertex
// of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain start (core.ErrNodeNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + A) log A), A = Σ over edges of |domain|·(|domain|-1)
//   - Space: O(V + A)
func Dijkstra[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], start id.VertexID[T], opts ...Option) (*Result[T, E], error) {
	return New(g, opts...).Search(start)
}

// ShortestPath is a one-shot helper around Solver.FindPath.
func ShortestPath[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], start, goal id.VertexID[T], opts ...Option) (search.Path[T, E], error) {
	return New(g, opts...).FindPath(start, goal)
}

// Search runs to exhaustion from start and returns final distances and
// predecessors for every vertex within MaxDistance.
func (s *Solver[T, N, E]) Search(start id.VertexID[T]) (*Result[T, E], error) {
	if err := s.init(start); err != nil {
		return nil, err
	}
	if err := s.process(nil); err != nil {
		return s.res, err
	}

	return s.res, nil
}

// FindPath returns a cheapest path from start to goal. The run stops as soon
// as goal is settled.
//
// Errors: those of Search, plus core.ErrNodeNotFound for a missing goal and
// search.ErrPathNotFound when goal is unreachable (or beyond MaxDistance).
func (s *Solver[T, N, E]) FindPath(start, goal id.VertexID[T]) (search.Path[T, E], error) {
	if s.graph != nil && !s.graph.HasNode(goal) {
		return search.Path[T, E]{}, errors.Wrapf(core.ErrNodeNotFound, "dijkstra: goal %s", goal)
	}
	if err := s.init(start); err != nil {
		return search.Path[T, E]{}, err
	}
	if err := s.process(&goal); err != nil {
		return search.Path[T, E]{}, err
	}
	if !s.HasVisited(goal) {
		return search.Path[T, E]{}, errors.Wrapf(search.ErrPathNotFound, "dijkstra: %s -> %s", start, goal)
	}

	return s.res.PathTo(goal)
}

// init validates the run and seeds the heap with start at distance zero.
func (s *Solver[T, N, E]) init(start id.VertexID[T]) error {
	if s.graph == nil {
		return ErrNilGraph
	}
	if s.opts.err != nil {
		return s.opts.err
	}
	if !s.graph.HasNode(start) {
		return errors.Wrapf(core.ErrNodeNotFound, "dijkstra: start %s", start)
	}
	if e, bad := search.NegativeEdge(s.graph); bad {
		return errors.Wrapf(ErrNegativeWeight, "edge %s weight=%v", e.ID, e.Weight)
	}

	n := s.graph.Order()
	s.Reset(n)
	s.res = &Result[T, E]{
		Start: start,
		Dist:  make(map[id.VertexID[T]]E, n),
		Prev:  make(map[id.VertexID[T]]id.VertexID[T], n),
		Via:   make(map[id.VertexID[T]]id.EdgeID[T], n),
	}
	s.res.Dist[start] = 0

	s.pq = make(nodePQ[T, E], 0, n)
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem[T, E]{id: start, dist: 0})

	return nil
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum distance and relaxes its outgoing steps, until the heap empties,
// the frontier passes MaxDistance, or goal (when non-nil) is settled.
func (s *Solver[T, N, E]) process(goal *id.VertexID[T]) error {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*nodeItem[T, E])
		if s.HasVisited(item.id) {
			continue
		}
		if float64(item.dist) > s.opts.MaxDistance {
			break
		}
		s.Mark(item.id)
		if goal != nil && item.id == *goal {
			return nil
		}
		if err := s.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every member reachable from u.
// Only strictly shorter distances replace the current ones.
func (s *Solver[T, N, E]) relax(u id.VertexID[T], du E) error {
	err := search.Arcs(s.graph, u, func(e core.Edge[T, E], v id.VertexID[T]) error {
		w := search.StepCost(e)
		if float64(w) >= s.opts.InfEdgeThreshold || s.HasVisited(v) {
			return nil
		}
		nd := du + w
		if float64(nd) > s.opts.MaxDistance {
			return nil
		}
		if cur, ok := s.res.Dist[v]; ok && nd >= cur {
			return nil
		}
		s.res.Dist[v] = nd
		s.res.Prev[v] = u
		s.res.Via[v] = e.ID
		heap.Push(&s.pq, &nodeItem[T, E]{id: v, dist: nd})

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "dijkstra: relax %s", u)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[T id.Index, E core.Number] struct {
	id   id.VertexID[T]
	dist E
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by vertex
// identifier so that equal-cost frontiers pop deterministically.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[T id.Index, E core.Number] []*nodeItem[T, E]

func (pq nodePQ[T, E]) Len() int { return len(pq) }

func (pq nodePQ[T, E]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Compare(pq[j].id) < 0
}

func (pq nodePQ[T, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ[T, E]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T, E])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ[T, E]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
