// Package core defines the hypergraph storage engine: the Graph container,
// its Node and Edge entities, the graph Attributes, and the sentinel errors
// shared by every package of hyperlath.
//
// This file declares Node, Edge, Graph, Direction, Attributes, GraphOption,
// the sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound      - requested hyperedge does not exist.
//	ErrEmptyHyperedge    - a hyperedge would end up with an empty domain.
//	ErrDuplicateIndex    - an identifier is already taken by a live entity.
//	ErrNoIncidentEdges   - a vertex has no incident hyperedges.
//	ErrSelfMerge         - MergeEdges called with the same edge twice.
package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/hyperlath/id"
)

// Sentinel errors for core hypergraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent vertex.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyHyperedge indicates an attempt to build or leave a hyperedge without members.
	ErrEmptyHyperedge = errors.New("core: hyperedge domain is empty")

	// ErrDuplicateIndex indicates an identifier collision with a live entity.
	ErrDuplicateIndex = errors.New("core: duplicate index")

	// ErrNoIncidentEdges indicates an edge-based query on a vertex without incident hyperedges.
	ErrNoIncidentEdges = errors.New("core: vertex has no incident edges")

	// ErrSelfMerge indicates MergeEdges was asked to merge an edge with itself.
	ErrSelfMerge = errors.New("core: cannot merge an edge with itself")
)

// Number is the capability required from edge weights by operations that add
// or compare them: MergeEdges and the shortest-path searches.
type Number interface {
	constraints.Integer | constraints.Float
}

// Direction selects directed or undirected hyperedge semantics.
// It is fixed when the Graph is constructed and copied into every Edge.
type Direction uint8

const (
	// Undirected hyperedges connect every member with every other member.
	Undirected Direction = iota
	// Directed hyperedges lead from their source (first member) to the remaining members.
	Directed
)

// IsDirected reports whether d is Directed.
func (d Direction) IsDirected() bool { return d == Directed }

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Directed {
		return "directed"
	}

	return "undirected"
}

// MarshalText encodes the direction as "directed" or "undirected".
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts "directed" or "undirected".
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "directed":
		*d = Directed
	case "undirected", "":
		*d = Undirected
	default:
		return fmt.Errorf("core: unknown direction %q", string(b))
	}

	return nil
}

// Attributes pairs the raw index representation of a graph with its
// direction. It carries no per-graph state beyond these two facts.
type Attributes struct {
	// Index names the raw identifier type, e.g. "uint32".
	Index string `json:"index" yaml:"index"`

	// Direction is the hyperedge semantics of the graph.
	Direction Direction `json:"direction" yaml:"direction"`
}

// IsDirected reports whether the attributes describe a directed hypergraph.
func (a Attributes) IsDirected() bool { return a.Direction.IsDirected() }

// Node is a vertex: an identifier plus a payload weight.
// Nodes are returned by value; mutate them through Graph methods.
type Node[T id.Index, N any] struct {
	ID     id.VertexID[T] `json:"id" yaml:"id"`
	Weight N              `json:"weight" yaml:"weight"`
}

// Edge is a hyperedge: an identifier, a non-empty domain of member vertices,
// and an optional weight. A weighted hyperedge is also called a surface.
//
// Domain order: undirected edges keep members sorted ascending; directed edges
// keep insertion order, Domain[0] being the source and Domain[1:] the targets.
type Edge[T id.Index, E any] struct {
	ID        id.EdgeID[T]     `json:"id" yaml:"id"`
	Domain    []id.VertexID[T] `json:"domain" yaml:"domain"`
	Weight    E                `json:"weight,omitempty" yaml:"weight,omitempty"`
	Weighted  bool             `json:"weighted" yaml:"weighted"`
	Direction Direction        `json:"direction" yaml:"direction"`
}

// Len returns the number of members of the hyperedge.
func (e Edge[T, E]) Len() int { return len(e.Domain) }

// Contains reports whether v is a member of the hyperedge.
// Complexity: O(k), k = Len().
func (e Edge[T, E]) Contains(v id.VertexID[T]) bool {
	for _, m := range e.Domain {
		if m == v {
			return true
		}
	}

	return false
}

// WeightValue returns the weight and whether the edge carries one.
func (e Edge[T, E]) WeightValue() (E, bool) { return e.Weight, e.Weighted }

// Lhs returns the first member; for a binary directed edge, its tail.
// It reports false for an edge with an empty domain, such as Edge{}.
func (e Edge[T, E]) Lhs() (id.VertexID[T], bool) {
	if len(e.Domain) == 0 {
		return id.VertexID[T]{}, false
	}

	return e.Domain[0], true
}

// Rhs returns the last member; for a binary directed edge, its head.
// It reports false for an edge with an empty domain.
func (e Edge[T, E]) Rhs() (id.VertexID[T], bool) {
	if len(e.Domain) == 0 {
		return id.VertexID[T]{}, false
	}

	return e.Domain[len(e.Domain)-1], true
}

// Source returns the source of a directed edge and false for undirected ones
// or an empty domain.
func (e Edge[T, E]) Source() (id.VertexID[T], bool) {
	if !e.Direction.IsDirected() || len(e.Domain) == 0 {
		return id.VertexID[T]{}, false
	}

	return e.Domain[0], true
}

// Targets returns a copy of the members reachable through the edge from its
// source. For undirected edges every member is a target.
func (e Edge[T, E]) Targets() []id.VertexID[T] {
	if e.Direction.IsDirected() {
		if len(e.Domain) == 0 {
			return nil
		}

		return append([]id.VertexID[T](nil), e.Domain[1:]...)
	}

	return append([]id.VertexID[T](nil), e.Domain...)
}

// clone returns a copy whose Domain does not share backing storage.
func (e *Edge[T, E]) clone() Edge[T, E] {
	cp := *e
	cp.Domain = append([]id.VertexID[T](nil), e.Domain...)

	return cp
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects option values. Generators are stored untyped because
// options are not generic; NewGraph asserts them back to id.Generator[T].
type graphConfig struct {
	direction Direction
	lazy      bool
	logger    *zap.Logger
	vertexGen any
	edgeGen   any
}

// WithDirected makes every hyperedge of the graph directed.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.direction = Directed }
}

// WithDirection sets the direction explicitly.
func WithDirection(d Direction) GraphOption {
	return func(c *graphConfig) { c.direction = d }
}

// WithLazyValidation lets AddEdge/AddSurface reference vertices that do not
// exist yet. Lookups that need such a member later fail with ErrNodeNotFound.
func WithLazyValidation() GraphOption {
	return func(c *graphConfig) { c.lazy = true }
}

// WithLogger installs a zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithVertexGenerator replaces the vertex identifier strategy.
// The raw type of gen must match the graph's T; NewGraph panics otherwise.
func WithVertexGenerator[T id.Index](gen id.Generator[T]) GraphOption {
	return func(c *graphConfig) {
		if gen != nil {
			c.vertexGen = gen
		}
	}
}

// WithEdgeGenerator replaces the edge identifier strategy.
// The raw type of gen must match the graph's T; NewGraph panics otherwise.
func WithEdgeGenerator[T id.Index](gen id.Generator[T]) GraphOption {
	return func(c *graphConfig) {
		if gen != nil {
			c.edgeGen = gen
		}
	}
}

// cursor allocates the next vertex and edge identifiers of one graph.
type cursor[T id.Index] struct {
	vertex id.Generator[T]
	edge   id.Generator[T]
}

func (c *cursor[T]) clone() *cursor[T] {
	return &cursor[T]{vertex: c.vertex.Clone(), edge: c.edge.Clone()}
}

// Graph is the in-memory hypergraph storage engine.
//
// T is the raw identifier type, N the node weight type and E the edge weight
// type. A Graph is meant for single-goroutine use: it holds no locks, and
// search operators read it without copying.
//
// nodes and edges are the primary catalogs. incidence maps a vertex to the
// bitmap of raw ids of the hyperedges whose domain contains it; it is updated
// in the same call as the catalogs and may hold entries for dangling members
// under lazy validation.
type Graph[T id.Index, N any, E any] struct {
	attrs  Attributes
	lazy   bool
	cur    *cursor[T]
	logger *zap.Logger

	nodes     map[id.VertexID[T]]*Node[T, N]
	edges     map[id.EdgeID[T]]*Edge[T, E]
	incidence map[id.VertexID[T]]*roaring64.Bitmap
}

// NewGraph creates an empty Graph. By default it is undirected, validates
// hyperedge members eagerly, numbers vertices and edges with independent
// counters starting at 0, and logs nowhere.
// Complexity: O(len(opts)).
func NewGraph[T id.Index, N any, E any](opts ...GraphOption) *Graph[T, N, E] {
	cfg := graphConfig{direction: Undirected, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T, N, E]{
		attrs:     Attributes{Index: id.Kind[T](), Direction: cfg.direction},
		lazy:      cfg.lazy,
		cur:       &cursor[T]{vertex: generatorOf[T](cfg.vertexGen), edge: generatorOf[T](cfg.edgeGen)},
		logger:    cfg.logger,
		nodes:     make(map[id.VertexID[T]]*Node[T, N]),
		edges:     make(map[id.EdgeID[T]]*Edge[T, E]),
		incidence: make(map[id.VertexID[T]]*roaring64.Bitmap),
	}
}

// generatorOf resolves an option value into a generator for T.
func generatorOf[T id.Index](gen any) id.Generator[T] {
	if gen == nil {
		return id.NewCounter[T](0)
	}
	g, ok := gen.(id.Generator[T])
	if !ok {
		panic(fmt.Sprintf("core: generator %T does not produce %s indices", gen, id.Kind[T]()))
	}

	return g
}
