// Package builder generates hyperlath hypergraphs for tests, examples and
// benchmarks.
//
// Constructors describe a topology over labelled vertices and are lowered
// into a core.Graph[T, string, E] (vertex weights are the labels) through its
// public AddNode/AddEdge/AddSurface operations:
//
//	g, err := builder.BuildGraph[uint32, int](
//	    []core.GraphOption{core.WithDirected()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//	    builder.Path(5),
//	    builder.RandomUniform(20, 40, 3),
//	)
//
// Topologies: Path, Cycle, Star, Complete, CompleteBipartite, Grid (binary
// hyperedges) and Sunflower, CompleteUniform, RandomUniform (wider
// hyperedges). Apply runs constructors against an existing graph and
// returns the label → vertex map.
//
// RandomEdge inserts a single random hyperedge into any graph and is what
// the benchmarks use to grow fixtures:
//
//	r := rand.New(rand.NewSource(1))
//	eid, err := builder.RandomEdge(g, 4, builder.WithRand(r))
//
// Configuration:
//   - WithIDScheme / WithPrefixIDs / WithExcelColumnIDs: vertex labels.
//   - WithSeed / WithRand: RNG for stochastic constructors.
//   - WithWeightFn / WithConstantWeight / WithIntWeight: weighted hyperedges;
//     without one, constructors emit unweighted hyperedges.
//   - WithPartitionPrefix: CompleteBipartite side labels.
//
// Option constructors panic on meaningless inputs; constructors return
// sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ErrBadSize,
// ErrUnknownLabel, ErrConstructFailed) and never panic.
package builder
